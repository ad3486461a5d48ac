package export

import (
	"strings"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// short date layouts for the locales we recognise; anything else falls back to ISO
var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "01/02/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "02.01.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "02/01/2006"},
	{language.Italian, "02/01/2006"},
	{language.Dutch, "02-01-2006"},
	{language.Japanese, "2006/01/02"},
	{language.Chinese, "2006/01/02"},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLayouts))
	for i, d := range dateLayouts {
		tags[i] = d.tag
	}
	return language.NewMatcher(tags)
}()

// Formatter renders cell values for a locale, currency symbol and time zone
type Formatter struct {
	printer    *message.Printer
	currency   string
	location   *time.Location
	dateLayout string
	decimalSep string
}

// NewFormatter builds a formatter. An unparsable locale means en-US and a
// nil location means UTC.
func NewFormatter(locale, currencySymbol string, location *time.Location) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	if location == nil {
		location = time.UTC
	}

	layout := "2006-01-02"
	if _, idx, conf := dateMatcher.Match(tag); conf != language.No {
		layout = dateLayouts[idx].layout
	}

	printer := message.NewPrinter(tag)
	sep := strings.Trim(printer.Sprintf("%v", number.Decimal(1.5, number.Scale(1))), "0123456789")
	if sep == "" {
		sep = "."
	}

	return &Formatter{
		printer:    printer,
		currency:   currencySymbol,
		location:   location,
		dateLayout: layout,
		decimalSep: sep,
	}
}

// Money formats d with grouping, two decimals and the currency symbol
func (f *Formatter) Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + f.currency + f.fixedPoint(d, true)
}

// fixedPoint groups the integer part through the locale printer and appends
// the two-place fraction from the decimal itself, so no digits pass
// through float64. d must not be negative.
func (f *Formatter) fixedPoint(d decimal.Decimal, fixed bool) string {
	rounded := d.Round(2)
	whole := rounded.Truncate(0)

	var intPart string
	if n := whole.BigInt(); n.IsInt64() {
		intPart = f.printer.Sprintf("%v", number.Decimal(n.Int64()))
	} else {
		intPart = n.String()
	}

	frac := rounded.Sub(whole).StringFixed(2)[2:]
	if !fixed {
		frac = strings.TrimRight(frac, "0")
	}
	if frac == "" {
		return intPart
	}
	return intPart + f.decimalSep + frac
}

// Number formats integers with grouping and decimals with up to two places
func (f *Formatter) Number(v any) string {
	switch n := v.(type) {
	case int:
		return f.printer.Sprintf("%v", number.Decimal(n))
	case int64:
		return f.printer.Sprintf("%v", number.Decimal(n))
	case float64:
		return f.printer.Sprintf("%v", number.Decimal(n, number.MaxFractionDigits(2)))
	case decimal.Decimal:
		if n.IsNegative() {
			return "-" + f.fixedPoint(n.Abs(), false)
		}
		return f.fixedPoint(n, false)
	}
	return ""
}

// Percent formats a 0..100 value followed by a percent sign
func (f *Formatter) Percent(v any) string {
	s := f.Number(v)
	if s == "" {
		return ""
	}
	return s + "%"
}

// Date formats t with the locale's short date layout
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.location).Format(f.dateLayout)
}

// Timestamp formats t for document header blocks
func (f *Formatter) Timestamp(t time.Time) string {
	return t.In(f.location).Format(f.dateLayout + " 15:04 MST")
}

// Filename names an artifact after the export date in the report time zone,
// the same zone the header timestamp is printed in
func (f *Formatter) Filename(rt report.ReportType, format report.Format, at time.Time) string {
	return report.Filename(rt, format, at.In(f.location))
}

// Cell formats v according to kind. Unsupported values print empty.
func (f *Formatter) Cell(kind report.ColumnKind, v any) string {
	if v == nil {
		return ""
	}
	switch kind {
	case report.ColumnMoney:
		if d, ok := asDecimal(v); ok {
			return f.Money(d)
		}
	case report.ColumnNumber:
		return f.Number(v)
	case report.ColumnPercent:
		return f.Percent(v)
	case report.ColumnDate:
		if t, ok := asTime(v); ok {
			return f.Date(t)
		}
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case decimal.Decimal:
		return val.String()
	case int, int64, float64:
		return f.Number(val)
	case time.Time, *time.Time:
		t, _ := asTime(val)
		return f.Date(t)
	case interface{ String() string }:
		return val.String()
	}
	return ""
}

// Title turns snake_case or kebab-case keys into display text
func Title(s string) string {
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func asDecimal(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, true
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero, false
		}
		return *val, true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case float64:
		return decimal.NewFromFloat(val), true
	}
	return decimal.Zero, false
}

func asTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, !val.IsZero()
	case *time.Time:
		if val == nil {
			return time.Time{}, false
		}
		return *val, true
	}
	return time.Time{}, false
}
