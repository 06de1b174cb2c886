package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/healthtrack/healthtrack-go/internal/model"
)

func registerTestUser(t *testing.T, auth *AuthService) int64 {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, auth.Register(ctx, model.RegisterRequest{
		Name: "Metric Tester", Email: "metrics@x.com", Password: "pw12345",
	}))
	resp, err := auth.Login(ctx, model.LoginRequest{Email: "metrics@x.com", Password: "pw12345"})
	require.NoError(t, err)
	return resp.User.ID
}

func intPtr(v int64) *int64       { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestMetricCreateRejectsBadDate(t *testing.T) {
	auth, metrics := newTestServices(t)
	userID := registerTestUser(t, auth)

	for _, date := range []string{"not-a-date", "2024-13-01", "2024-1-1", "01-01-2024"} {
		err := metrics.Create(context.Background(), userID, model.MetricRequest{RecordedFor: date})
		require.ErrorIs(t, err, ErrBadDate, "date %q", date)
	}
}

func TestMetricCreateDefaults(t *testing.T) {
	auth, metrics := newTestServices(t)
	userID := registerTestUser(t, auth)
	ctx := context.Background()

	// Empty date defaults to the current UTC date; numerics default to zero;
	// notes are trimmed.
	require.NoError(t, metrics.Create(ctx, userID, model.MetricRequest{
		Notes: "  morning walk  ",
	}))

	rows, err := metrics.List(ctx, userID, "", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	today := time.Now().UTC().Format("2006-01-02")
	require.Equal(t, today, rows[0].RecordedFor)
	require.Zero(t, rows[0].Steps)
	require.Zero(t, rows[0].Calories)
	require.Zero(t, rows[0].HeartRate)
	require.Zero(t, rows[0].SleepHours)
	require.Equal(t, "morning walk", rows[0].Notes)
}

func TestMetricCreateExplicitValues(t *testing.T) {
	auth, metrics := newTestServices(t)
	userID := registerTestUser(t, auth)
	ctx := context.Background()

	require.NoError(t, metrics.Create(ctx, userID, model.MetricRequest{
		RecordedFor: "2024-01-01",
		Steps:       intPtr(1000),
		Calories:    intPtr(1800),
		HeartRate:   intPtr(62),
		SleepHours:  floatPtr(7.25),
		Notes:       "rest day",
	}))

	rows, err := metrics.List(ctx, userID, "2024-01-01", "2024-01-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, model.MetricResponse{
		RecordedFor: "2024-01-01",
		Steps:       1000,
		Calories:    1800,
		HeartRate:   62,
		SleepHours:  7.25,
		Notes:       "rest day",
	}, rows[0])
}

func TestMetricListEmptyIsNotNil(t *testing.T) {
	auth, metrics := newTestServices(t)
	userID := registerTestUser(t, auth)

	rows, err := metrics.List(context.Background(), userID, "", "")
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

func TestSummarizeRoundsToTwoDecimals(t *testing.T) {
	auth, metrics := newTestServices(t)
	userID := registerTestUser(t, auth)
	ctx := context.Background()

	today := time.Now().UTC().Format("2006-01-02")
	for _, steps := range []int64{1000, 1001, 1001} {
		require.NoError(t, metrics.Create(ctx, userID, model.MetricRequest{
			RecordedFor: today,
			Steps:       intPtr(steps),
			SleepHours:  floatPtr(7.5),
		}))
	}

	s, err := metrics.Summarize(ctx, userID, DefaultSummaryDays)
	require.NoError(t, err)
	require.Equal(t, int64(3), s.Entries)
	require.Equal(t, 1000.67, s.AvgSteps)
	require.Equal(t, 7.5, s.AvgSleep)
	require.Zero(t, s.AvgCalories)
}

func TestSummarizeZeroRows(t *testing.T) {
	auth, metrics := newTestServices(t)
	userID := registerTestUser(t, auth)

	s, err := metrics.Summarize(context.Background(), userID, DefaultSummaryDays)
	require.NoError(t, err)
	require.Equal(t, model.Summary{}, s)
}

func TestSummarizeWindowEdges(t *testing.T) {
	auth, metrics := newTestServices(t)
	userID := registerTestUser(t, auth)
	ctx := context.Background()

	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	require.NoError(t, metrics.Create(ctx, userID, model.MetricRequest{RecordedFor: today, Steps: intPtr(100)}))
	require.NoError(t, metrics.Create(ctx, userID, model.MetricRequest{RecordedFor: yesterday, Steps: intPtr(200)}))

	// days=0 narrows the window to today only.
	s, err := metrics.Summarize(ctx, userID, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), s.Entries)
	require.Equal(t, float64(100), s.AvgSteps)

	// days=1 includes yesterday's entry.
	s, err = metrics.Summarize(ctx, userID, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), s.Entries)

	// Negative days push the cutoff into the future and match nothing.
	s, err = metrics.Summarize(ctx, userID, -5)
	require.NoError(t, err)
	require.Equal(t, model.Summary{}, s)
}
