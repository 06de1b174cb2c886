package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/healthtrack/healthtrack-go/internal/model"
	"github.com/healthtrack/healthtrack-go/internal/repository"
)

var ErrBadDate = errors.New("recorded_for must be YYYY-MM-DD")

const dateLayout = "2006-01-02"

// DefaultSummaryDays is the trailing window used when a summary request
// does not specify one.
const DefaultSummaryDays = 30

// MetricService handles metric validation and aggregation business logic.
type MetricService struct {
	repo *repository.MetricRepository
}

// NewMetricService creates a new MetricService.
func NewMetricService(repo *repository.MetricRepository) *MetricService {
	return &MetricService{repo: repo}
}

// Create validates and stores one metric entry. recorded_for defaults to
// the current UTC date when absent; numeric fields default to zero; notes
// are trimmed of surrounding whitespace.
func (s *MetricService) Create(ctx context.Context, userID int64, req model.MetricRequest) error {
	recordedFor := req.RecordedFor
	if recordedFor == "" {
		recordedFor = time.Now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, recordedFor); err != nil {
		return ErrBadDate
	}

	metric := &model.Metric{
		UserID:      userID,
		RecordedFor: recordedFor,
		Steps:       int64OrDefault(req.Steps, 0),
		Calories:    int64OrDefault(req.Calories, 0),
		HeartRate:   int64OrDefault(req.HeartRate, 0),
		SleepHours:  float64OrDefault(req.SleepHours, 0),
		Notes:       strings.TrimSpace(req.Notes),
	}

	return s.repo.Create(ctx, metric)
}

// List returns the user's metrics newest first, optionally bounded by
// inclusive start/end dates. A user with no entries gets an empty list,
// never an error.
func (s *MetricService) List(ctx context.Context, userID int64, start, end string) ([]model.MetricResponse, error) {
	metrics, err := s.repo.List(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]model.MetricResponse, len(metrics))
	for i, m := range metrics {
		result[i] = model.MetricResponse{
			RecordedFor: m.RecordedFor,
			Steps:       m.Steps,
			Calories:    m.Calories,
			HeartRate:   m.HeartRate,
			SleepHours:  m.SleepHours,
			Notes:       m.Notes,
		}
	}

	return result, nil
}

// Summarize aggregates entries recorded for the trailing days window,
// inclusive of today, using calendar arithmetic. days is not validated:
// zero narrows the window to today and negative values push the cutoff
// past today, matching nothing.
func (s *MetricService) Summarize(ctx context.Context, userID int64, days int) (model.Summary, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days).Format(dateLayout)

	summary, err := s.repo.Summarize(ctx, userID, cutoff)
	if err != nil {
		return model.Summary{}, err
	}

	summary.AvgSteps = round2(summary.AvgSteps)
	summary.AvgCalories = round2(summary.AvgCalories)
	summary.AvgHeartRate = round2(summary.AvgHeartRate)
	summary.AvgSleep = round2(summary.AvgSleep)

	return summary, nil
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// int64OrDefault returns the dereferenced pointer value, or the fallback if nil.
func int64OrDefault(p *int64, fallback int64) int64 {
	if p == nil {
		return fallback
	}
	return *p
}

// float64OrDefault returns the dereferenced pointer value, or the fallback if nil.
func float64OrDefault(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}
