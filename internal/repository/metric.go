package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/healthtrack/healthtrack-go/internal/model"
)

// MetricRepository handles daily metric persistence operations.
type MetricRepository struct {
	db *sql.DB
}

// NewMetricRepository creates a new MetricRepository.
func NewMetricRepository(db *sql.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

// Create inserts one metric row. Entries are append-only: there is no
// uniqueness constraint on (user, date) and no update or delete.
func (r *MetricRepository) Create(ctx context.Context, m *model.Metric) error {
	query := `INSERT INTO metrics (user_id, recorded_for, steps, calories, heart_rate, sleep_hours, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		m.UserID, m.RecordedFor, m.Steps, m.Calories, m.HeartRate, m.SleepHours, m.Notes,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	m.ID = id
	return nil
}

// List retrieves a user's metrics, optionally bounded to
// recorded_for >= start and/or <= end (inclusive; lexicographic comparison
// is correct for zero-padded ISO dates). Ordered newest date first, with
// id descending as the tiebreak so same-date entries list deterministically.
func (r *MetricRepository) List(ctx context.Context, userID int64, start, end string) ([]model.Metric, error) {
	query := `SELECT id, user_id, recorded_for, steps, calories, heart_rate, sleep_hours, notes FROM metrics WHERE user_id = ?`
	args := []any{userID}

	if start != "" {
		query += ` AND recorded_for >= ?`
		args = append(args, start)
	}
	if end != "" {
		query += ` AND recorded_for <= ?`
		args = append(args, end)
	}
	query += ` ORDER BY recorded_for DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []model.Metric
	for rows.Next() {
		var m model.Metric
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.RecordedFor, &m.Steps, &m.Calories,
			&m.HeartRate, &m.SleepHours, &m.Notes,
		); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}

	return metrics, rows.Err()
}

// Summarize computes the entry count and per-field averages over rows with
// recorded_for >= cutoff. Averages come back zero, not NULL, when no rows
// match.
func (r *MetricRepository) Summarize(ctx context.Context, userID int64, cutoff string) (model.Summary, error) {
	query := `SELECT
			COUNT(*),
			COALESCE(AVG(steps), 0),
			COALESCE(AVG(calories), 0),
			COALESCE(AVG(heart_rate), 0),
			COALESCE(AVG(sleep_hours), 0)
		FROM metrics
		WHERE user_id = ? AND recorded_for >= ?`

	var s model.Summary
	err := r.db.QueryRowContext(ctx, query, userID, cutoff).Scan(
		&s.Entries, &s.AvgSteps, &s.AvgCalories, &s.AvgHeartRate, &s.AvgSleep,
	)
	if err != nil {
		return model.Summary{}, err
	}

	return s, nil
}

// CountFor returns the total number of metric rows a user has recorded.
func (r *MetricRepository) CountFor(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM metrics WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
