package export

import (
	"testing"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Money(t *testing.T) {
	f := NewFormatter("en-US", "$", time.UTC)

	assert.Equal(t, "$1,234,567.50", f.Money(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "$0.00", f.Money(decimal.Zero))
	assert.Equal(t, "-$12.35", f.Money(decimal.RequireFromString("-12.345")))
}

func TestFormatter_MoneyGermanGrouping(t *testing.T) {
	f := NewFormatter("de-DE", "€", time.UTC)

	assert.Equal(t, "€1.234,50", f.Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "€1.234.567.890.123.456,78", f.Money(decimal.RequireFromString("1234567890123456.78")))
}

func TestFormatter_MoneyKeepsCents(t *testing.T) {
	f := NewFormatter("en-US", "$", time.UTC)

	assert.Equal(t, "$1,234,567,890,123,456.78", f.Money(decimal.RequireFromString("1234567890123456.78")))
	assert.Equal(t, "-$90,071,992,547,409.93", f.Money(decimal.RequireFromString("-90071992547409.93")))
}

func TestFormatter_Filename(t *testing.T) {
	f := NewFormatter("en-US", "$", time.FixedZone("EST", -5*3600))

	at := time.Date(2026, 3, 9, 2, 30, 0, 0, time.UTC)
	assert.Equal(t, "summary_2026-03-08.xlsx", f.Filename(report.ReportTypeSummary, report.FormatSpreadsheet, at))
}

func TestFormatter_Number(t *testing.T) {
	f := NewFormatter("en-US", "$", time.UTC)

	assert.Equal(t, "12,345", f.Number(12345))
	assert.Equal(t, "7", f.Number(int64(7)))
	assert.Equal(t, "1,234.57", f.Number(1234.5678))
	assert.Equal(t, "42.5", f.Number(decimal.RequireFromString("42.5")))
	assert.Equal(t, "", f.Number("n/a"))
	assert.Equal(t, "66.67%", f.Percent(decimal.RequireFromString("66.67")))
}

func TestFormatter_DateLayouts(t *testing.T) {
	at := time.Date(2026, 3, 9, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
	}{
		{"en-US", "03/09/2026"},
		{"en-GB", "09/03/2026"},
		{"de-DE", "09.03.2026"},
		{"ja-JP", "2026/03/09"},
		{"not a locale", "03/09/2026"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f := NewFormatter(tt.locale, "", time.UTC)
			assert.Equal(t, tt.want, f.Date(at))
		})
	}
}

func TestFormatter_TimestampUsesLocation(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	f := NewFormatter("en-US", "$", loc)

	at := time.Date(2026, 3, 9, 2, 30, 0, 0, time.UTC)
	assert.Equal(t, "03/08/2026 21:30 EST", f.Timestamp(at))
	assert.Equal(t, "", f.Date(time.Time{}))
}

func TestFormatter_Cell(t *testing.T) {
	f := NewFormatter("en-US", "$", time.UTC)
	due := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	var noDue *time.Time

	assert.Equal(t, "$99.90", f.Cell(report.ColumnMoney, decimal.RequireFromString("99.9")))
	assert.Equal(t, "3", f.Cell(report.ColumnNumber, 3))
	assert.Equal(t, "01/31/2026", f.Cell(report.ColumnDate, &due))
	assert.Equal(t, "", f.Cell(report.ColumnDate, noDue))
	assert.Equal(t, "Acme", f.Cell(report.ColumnText, "Acme"))
	assert.Equal(t, "", f.Cell(report.ColumnText, nil))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Pending Approval", Title("pending_approval"))
	assert.Equal(t, "Revenue Trend", Title("revenue-trend"))
	assert.Equal(t, "", Title(""))
}
