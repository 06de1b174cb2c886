package model

import "time"

// Metric represents one daily metric entry in the database.
// Multiple entries per (user, date) are allowed; the log is append-only.
type Metric struct {
	ID          int64
	UserID      int64
	RecordedFor string
	Steps       int64
	Calories    int64
	HeartRate   int64
	SleepHours  float64
	Notes       string
	CreatedAt   time.Time
}

// MetricRequest represents a metric submission.
// Pointer fields distinguish absent (nil -> default zero) from explicit values.
type MetricRequest struct {
	RecordedFor string   `json:"recorded_for"`
	Steps       *int64   `json:"steps"`
	Calories    *int64   `json:"calories"`
	HeartRate   *int64   `json:"heart_rate"`
	SleepHours  *float64 `json:"sleep_hours"`
	Notes       string   `json:"notes"`
}

// MetricResponse represents a single metric entry in a listing.
type MetricResponse struct {
	RecordedFor string  `json:"recorded_for"`
	Steps       int64   `json:"steps"`
	Calories    int64   `json:"calories"`
	HeartRate   int64   `json:"heart_rate"`
	SleepHours  float64 `json:"sleep_hours"`
	Notes       string  `json:"notes"`
}

// Summary represents aggregate statistics over a trailing window of entries.
// Averages are rounded to two decimal places and report 0 when no rows match.
type Summary struct {
	Entries      int64   `json:"entries"`
	AvgSteps     float64 `json:"avg_steps"`
	AvgCalories  float64 `json:"avg_calories"`
	AvgHeartRate float64 `json:"avg_heart_rate"`
	AvgSleep     float64 `json:"avg_sleep"`
}
