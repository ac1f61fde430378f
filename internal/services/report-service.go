package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

const analyticsCacheTTL = 30 * time.Second

const unassignedTeam = "Unassigned"

type ReportServiceInterface interface {
	GetAnalytics(ctx context.Context) (*dto.AnalyticsDTO, error)
	ExportXLSX(ctx context.Context) (*excelize.File, error)
}

type ReportService struct {
	requests repositories.RequestRepositoryInterface
	cache    repositories.CacheRepositoryInterface
	logger   *zap.Logger
}

func NewReportService(
	requests repositories.RequestRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{requests: requests, cache: cache, logger: logger}
}

// GetAnalytics serves the aggregate snapshot, from cache when a recent one
// exists. The snapshot is whole-system, not per-user, so one cache entry is
// enough.
func (s *ReportService) GetAnalytics(ctx context.Context) (*dto.AnalyticsDTO, error) {
	if s.cache != nil {
		var cached dto.AnalyticsDTO
		err := s.cache.GetAnalytics(ctx, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("failed to read analytics cache", zap.Error(err))
		}
	}

	rows, err := s.requests.GetAnalyticsRows(ctx)
	if err != nil {
		return nil, err
	}

	analytics := Aggregate(rows)

	if s.cache != nil {
		if err := s.cache.SetAnalytics(ctx, analytics, analyticsCacheTTL); err != nil {
			s.logger.Warn("failed to write analytics cache", zap.Error(err))
		}
	}
	return analytics, nil
}

// Aggregate folds the flat request rows into the report buckets. Buckets
// keep first-occurrence order, which matches the rows' created_at ordering.
func Aggregate(rows []entities.AnalyticsRow) *dto.AnalyticsDTO {
	analytics := &dto.AnalyticsDTO{
		TotalRequests: len(rows),
		ByTeam:        make([]dto.TeamBucketDTO, 0),
		ByStatus:      make([]dto.StatusBucketDTO, 0),
		ByType:        make([]dto.TypeBucketDTO, 0),
		OverTime:      make([]dto.MonthBucketDTO, 0),
	}

	teamIndex := make(map[string]int)
	statusIndex := make(map[string]int)
	typeIndex := make(map[string]int)
	monthIndex := make(map[string]int)

	var repairedHours float64
	var repairedCount int

	for _, row := range rows {
		switch row.Status {
		case constants.RequestStatusRepaired:
			analytics.Completed++
		case constants.RequestStatusInProgress:
			analytics.InProgress++
		}

		if row.Status == constants.RequestStatusRepaired && row.ActualHours.Valid {
			repairedHours += row.ActualHours.Float64
			repairedCount++
		}

		team := unassignedTeam
		if row.TeamName.Valid && row.TeamName.String != "" {
			team = row.TeamName.String
		}
		if i, ok := teamIndex[team]; ok {
			analytics.ByTeam[i].Count++
		} else {
			teamIndex[team] = len(analytics.ByTeam)
			analytics.ByTeam = append(analytics.ByTeam, dto.TeamBucketDTO{Team: team, Count: 1})
		}

		if i, ok := statusIndex[row.Status]; ok {
			analytics.ByStatus[i].Count++
		} else {
			statusIndex[row.Status] = len(analytics.ByStatus)
			analytics.ByStatus = append(analytics.ByStatus, dto.StatusBucketDTO{Status: row.Status, Count: 1})
		}

		if i, ok := typeIndex[row.Type]; ok {
			analytics.ByType[i].Count++
		} else {
			typeIndex[row.Type] = len(analytics.ByType)
			analytics.ByType = append(analytics.ByType, dto.TypeBucketDTO{Type: row.Type, Count: 1})
		}

		month := row.CreatedAt.Format("Jan")
		if i, ok := monthIndex[month]; ok {
			analytics.OverTime[i].Count++
		} else {
			monthIndex[month] = len(analytics.OverTime)
			analytics.OverTime = append(analytics.OverTime, dto.MonthBucketDTO{Month: month, Count: 1})
		}
	}

	if repairedCount > 0 {
		analytics.AvgTime = math.Round(repairedHours/float64(repairedCount)*10) / 10
	}
	return analytics
}

// ExportXLSX renders the current snapshot as a workbook: a summary, one
// sheet per bucket, and the raw request rows.
func (s *ReportService) ExportXLSX(ctx context.Context) (*excelize.File, error) {
	analytics, err := s.GetAnalytics(ctx)
	if err != nil {
		return nil, err
	}

	requests, _, err := s.requests.GetRequests(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	const summary = "Summary"
	f.SetSheetName("Sheet1", summary)
	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total requests", analytics.TotalRequests},
		{"Completed", analytics.Completed},
		{"In progress", analytics.InProgress},
		{"Average repair time (h)", analytics.AvgTime},
		{"Generated at", time.Now().UTC().Format(time.RFC3339)},
	}
	if err := writeSheet(f, summary, summaryRows); err != nil {
		return nil, err
	}

	teamRows := [][]interface{}{{"Team", "Requests"}}
	for _, b := range analytics.ByTeam {
		teamRows = append(teamRows, []interface{}{b.Team, b.Count})
	}
	statusRows := [][]interface{}{{"Status", "Requests"}}
	for _, b := range analytics.ByStatus {
		statusRows = append(statusRows, []interface{}{b.Status, b.Count})
	}
	typeRows := [][]interface{}{{"Type", "Requests"}}
	for _, b := range analytics.ByType {
		typeRows = append(typeRows, []interface{}{b.Type, b.Count})
	}
	monthRows := [][]interface{}{{"Month", "Requests"}}
	for _, b := range analytics.OverTime {
		monthRows = append(monthRows, []interface{}{b.Month, b.Count})
	}

	requestRows := [][]interface{}{{
		"Number", "Subject", "Status", "Type", "Priority",
		"Team", "Equipment", "Technician", "Created", "Completed", "Hours",
	}}
	for _, r := range requests {
		team, equipment, technician := "", "", ""
		if r.Team != nil {
			team = r.Team.Name
		}
		if r.Equipment != nil {
			equipment = r.Equipment.Name
		}
		if r.Technician != nil {
			technician = r.Technician.FullName.String
		}
		completed := ""
		if r.CompletedAt.Valid {
			completed = r.CompletedAt.Time.Format(time.RFC3339)
		}
		var hours interface{}
		if r.ActualHours.Valid {
			hours = r.ActualHours.Float64
		}
		requestRows = append(requestRows, []interface{}{
			r.RequestNumber, r.Subject, r.Status, r.Type, r.Priority,
			team, equipment, technician,
			r.CreatedAt.Format(time.RFC3339), completed, hours,
		})
	}

	for _, sheet := range []struct {
		name string
		rows [][]interface{}
	}{
		{"Requests", requestRows},
		{"By Team", teamRows},
		{"By Status", statusRows},
		{"By Type", typeRows},
		{"Over Time", monthRows},
	} {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, err
		}
		if err := writeSheet(f, sheet.name, sheet.rows); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// ExportFileName names the download with the generation date.
func ExportFileName() string {
	return fmt.Sprintf("maintenance-report-%s.xlsx", time.Now().Format("2006-01-02"))
}
