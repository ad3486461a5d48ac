package report

import (
	"errors"
	"testing"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCadenceNext(t *testing.T) {
	from := time.Date(2026, 1, 31, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), CadenceDaily.Next(from))
	assert.Equal(t, time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC), CadenceWeekly.Next(from))
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), CadenceMonthly.Next(from))

	dec31 := time.Date(2026, 12, 31, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), CadenceMonthly.Next(dec31))
}

func TestNewSchedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	s, err := NewSchedule(ReportTypeFinancial, CadenceWeekly,
		[]string{"CFO <cfo@example.com>", "cfo@example.com", "ops@example.com"}, FormatSpreadsheet, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"cfo@example.com", "ops@example.com"}, s.Recipients)
	assert.Equal(t, time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC), s.NextRunAt)
	assert.True(t, s.Active)
}

func TestNewSchedule_Invalid(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name       string
		rt         ReportType
		cadence    Cadence
		recipients []string
		format     Format
	}{
		{"chart format", ReportTypeSummary, CadenceDaily, []string{"a@b.co"}, FormatChartSnapshot},
		{"chart report", ReportTypeDashboardCharts, CadenceDaily, []string{"a@b.co"}, FormatTabularDocument},
		{"hourly", ReportTypeSummary, "hourly", []string{"a@b.co"}, FormatTabularDocument},
		{"no recipients", ReportTypeSummary, CadenceDaily, nil, FormatTabularDocument},
		{"bad address", ReportTypeSummary, CadenceDaily, []string{"not-an-email"}, FormatTabularDocument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSchedule(tc.rt, tc.cadence, tc.recipients, tc.format, now)
			assert.ErrorIs(t, err, shared.ErrInvalidInput)
		})
	}
}

func TestScheduleRun(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	s, err := NewSchedule(ReportTypeSummary, CadenceDaily, []string{"a@b.co"}, FormatTabularDocument, now)
	require.NoError(t, err)

	assert.False(t, s.IsDue(now))
	runAt := s.NextRunAt.Add(time.Minute)
	assert.True(t, s.IsDue(runAt))

	s.MarkRun(runAt, errors.New("smtp down"))
	assert.Equal(t, "smtp down", s.LastError)
	assert.False(t, s.IsDue(runAt))

	s.Deactivate()
	assert.False(t, s.IsDue(runAt.AddDate(1, 0, 0)))
}
