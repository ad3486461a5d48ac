package report

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// Cadence is how often a scheduled report is produced
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// IsValid checks if the cadence is known
func (c Cadence) IsValid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
		return true
	}
	return false
}

// Next returns the first run strictly after from, aligned to midnight in
// from's location.
func (c Cadence) Next(from time.Time) time.Time {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	switch c {
	case CadenceWeekly:
		return day.AddDate(0, 0, 7)
	case CadenceMonthly:
		return time.Date(from.Year(), from.Month()+1, 1, 0, 0, 0, 0, from.Location())
	default:
		return day.AddDate(0, 0, 1)
	}
}

// Schedule is a recurring report delivery handed to the delivery collaborator
type Schedule struct {
	shared.BaseEntity
	ReportType ReportType
	Cadence    Cadence
	Recipients []string
	Format     Format
	NextRunAt  time.Time
	LastRunAt  *time.Time
	LastError  string
	Active     bool
	CreatedBy  *uuid.UUID
}

// NewSchedule validates and creates an active schedule whose first run is
// the next cadence boundary after now.
func NewSchedule(rt ReportType, cadence Cadence, recipients []string, format Format, now time.Time) (*Schedule, error) {
	if !rt.IsValid() || rt == ReportTypeDashboardCharts {
		return nil, shared.ErrInvalidInput.WithMessage("report type " + string(rt) + " cannot be scheduled")
	}
	if !cadence.IsValid() {
		return nil, shared.ErrInvalidInput.WithMessage("cadence must be daily, weekly or monthly")
	}
	if !format.Schedulable() {
		return nil, shared.ErrInvalidInput.WithMessage("format must be tabular-document or spreadsheet")
	}
	addrs, err := normalizeRecipients(recipients)
	if err != nil {
		return nil, err
	}

	return &Schedule{
		BaseEntity: shared.NewBaseEntity(),
		ReportType: rt,
		Cadence:    cadence,
		Recipients: addrs,
		Format:     format,
		NextRunAt:  cadence.Next(now),
		Active:     true,
	}, nil
}

func normalizeRecipients(recipients []string) ([]string, error) {
	if len(recipients) == 0 {
		return nil, shared.ErrInvalidInput.WithMessage("at least one recipient is required")
	}
	seen := make(map[string]bool, len(recipients))
	out := make([]string, 0, len(recipients))
	for _, r := range recipients {
		addr, err := mail.ParseAddress(strings.TrimSpace(r))
		if err != nil {
			return nil, shared.ErrInvalidInput.WithMessage("invalid recipient address " + r)
		}
		a := strings.ToLower(addr.Address)
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out, nil
}

// IsDue reports whether the schedule should run at now
func (s *Schedule) IsDue(now time.Time) bool {
	return s.Active && !s.NextRunAt.After(now)
}

// MarkRun records a run at `at` and advances NextRunAt. runErr is kept for
// display only; failed runs are not retried.
func (s *Schedule) MarkRun(at time.Time, runErr error) {
	s.LastRunAt = &at
	s.NextRunAt = s.Cadence.Next(at)
	s.LastError = ""
	if runErr != nil {
		s.LastError = runErr.Error()
	}
	s.Touch()
}

// Deactivate stops further runs
func (s *Schedule) Deactivate() {
	s.Active = false
	s.Touch()
}

// ScheduleRepository persists report schedules
type ScheduleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Schedule, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Schedule, int64, error)
	FindDue(ctx context.Context, now time.Time, limit int) ([]Schedule, error)
	Save(ctx context.Context, schedule *Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error
}
