package services

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

func analyticsRow(status, requestType, team string, createdAt time.Time, actualHours float64) entities.AnalyticsRow {
	row := entities.AnalyticsRow{
		Status:    status,
		Type:      requestType,
		CreatedAt: createdAt,
	}
	if team != "" {
		row.TeamName = null.StringFrom(team)
	}
	if actualHours > 0 {
		row.ActualHours = null.Float64From(actualHours)
	}
	return row
}

func TestAggregateCountsAndAverage(t *testing.T) {
	jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)

	rows := []entities.AnalyticsRow{
		analyticsRow(constants.RequestStatusRepaired, constants.RequestTypeCorrective, "Mechanics", jan, 2.5),
		analyticsRow(constants.RequestStatusRepaired, constants.RequestTypePreventive, "Mechanics", jan, 3.5),
		analyticsRow(constants.RequestStatusInProgress, constants.RequestTypeCorrective, "", feb, 0),
	}

	res := Aggregate(rows)

	assert.Equal(t, 3, res.TotalRequests)
	assert.Equal(t, 2, res.Completed)
	assert.Equal(t, 1, res.InProgress)
	assert.Equal(t, 3.0, res.AvgTime)
}

func TestAggregateAverageIgnoresMissingHours(t *testing.T) {
	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	rows := []entities.AnalyticsRow{
		analyticsRow(constants.RequestStatusRepaired, constants.RequestTypeCorrective, "Mechanics", jan, 4),
		// repaired but hours never recorded
		analyticsRow(constants.RequestStatusRepaired, constants.RequestTypeCorrective, "Mechanics", jan, 0),
		// in-progress hours must not count
		analyticsRow(constants.RequestStatusInProgress, constants.RequestTypeCorrective, "Mechanics", jan, 99),
	}

	res := Aggregate(rows)
	assert.Equal(t, 4.0, res.AvgTime)
}

func TestAggregateAverageRoundsToOneDecimal(t *testing.T) {
	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	rows := []entities.AnalyticsRow{
		analyticsRow(constants.RequestStatusRepaired, constants.RequestTypeCorrective, "", jan, 1),
		analyticsRow(constants.RequestStatusRepaired, constants.RequestTypeCorrective, "", jan, 2),
		analyticsRow(constants.RequestStatusRepaired, constants.RequestTypeCorrective, "", jan, 2),
	}

	res := Aggregate(rows)
	assert.Equal(t, 1.7, res.AvgTime)
}

func TestAggregateEmpty(t *testing.T) {
	res := Aggregate(nil)

	assert.Zero(t, res.TotalRequests)
	assert.Zero(t, res.Completed)
	assert.Zero(t, res.InProgress)
	assert.Zero(t, res.AvgTime)
	assert.Empty(t, res.ByTeam)
	assert.Empty(t, res.ByStatus)
	assert.Empty(t, res.ByType)
	assert.Empty(t, res.OverTime)
}

func TestAggregateBucketsKeepFirstOccurrenceOrder(t *testing.T) {
	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	rows := []entities.AnalyticsRow{
		analyticsRow(constants.RequestStatusNew, constants.RequestTypeEmergency, "Electricians", jan, 0),
		analyticsRow(constants.RequestStatusRepaired, constants.RequestTypeCorrective, "", mar, 1),
		analyticsRow(constants.RequestStatusNew, constants.RequestTypeEmergency, "Electricians", mar, 0),
	}

	res := Aggregate(rows)

	require.Len(t, res.ByTeam, 2)
	assert.Equal(t, "Electricians", res.ByTeam[0].Team)
	assert.Equal(t, 2, res.ByTeam[0].Count)
	assert.Equal(t, "Unassigned", res.ByTeam[1].Team)
	assert.Equal(t, 1, res.ByTeam[1].Count)

	require.Len(t, res.ByStatus, 2)
	assert.Equal(t, constants.RequestStatusNew, res.ByStatus[0].Status)
	assert.Equal(t, constants.RequestStatusRepaired, res.ByStatus[1].Status)

	require.Len(t, res.OverTime, 2)
	assert.Equal(t, "Jan", res.OverTime[0].Month)
	assert.Equal(t, "Mar", res.OverTime[1].Month)
	assert.Equal(t, 2, res.OverTime[1].Count)
}

func TestAggregateStatusBucketsSumToTotal(t *testing.T) {
	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	rows := []entities.AnalyticsRow{
		analyticsRow(constants.RequestStatusNew, constants.RequestTypeCorrective, "", jan, 0),
		analyticsRow(constants.RequestStatusInProgress, constants.RequestTypePreventive, "", jan, 0),
		analyticsRow(constants.RequestStatusRepaired, constants.RequestTypeCorrective, "", jan, 2),
		analyticsRow(constants.RequestStatusScrap, constants.RequestTypeEmergency, "", jan, 0),
		analyticsRow(constants.RequestStatusCancelled, constants.RequestTypeCorrective, "", jan, 0),
	}

	res := Aggregate(rows)

	sum := 0
	for _, bucket := range res.ByStatus {
		sum += bucket.Count
	}
	assert.Equal(t, res.TotalRequests, sum)
}
