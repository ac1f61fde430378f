package dto

// Report buckets keep first-occurrence insertion order; they feed charts, not
// a stable API contract.

type TeamBucketDTO struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}

type StatusBucketDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type TypeBucketDTO struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type MonthBucketDTO struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type AnalyticsDTO struct {
	TotalRequests int               `json:"total_requests"`
	Completed     int               `json:"completed"`
	InProgress    int               `json:"in_progress"`
	AvgTime       float64           `json:"avg_time"`
	ByTeam        []TeamBucketDTO   `json:"by_team"`
	ByStatus      []StatusBucketDTO `json:"by_status"`
	ByType        []TypeBucketDTO   `json:"by_type"`
	OverTime      []MonthBucketDTO  `json:"over_time"`
}
