package models

import (
	"encoding/json"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/google/uuid"
)

// ReportScheduleModel is the persistence model for the report_schedules table.
// Recipients are stored as a JSON array.
type ReportScheduleModel struct {
	BaseModel
	ReportType     report.ReportType `gorm:"type:varchar(50);not null"`
	Cadence        report.Cadence    `gorm:"type:varchar(20);not null"`
	RecipientsJSON string            `gorm:"column:recipients;type:text;not null"`
	Format         report.Format     `gorm:"type:varchar(30);not null"`
	NextRunAt      time.Time         `gorm:"not null;index"`
	LastRunAt      *time.Time
	LastError      string     `gorm:"type:text"`
	Active         bool       `gorm:"not null;index"`
	CreatedBy      *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (ReportScheduleModel) TableName() string {
	return "report_schedules"
}

// ToDomain converts the persistence model to a domain Schedule.
// A malformed recipients column yields an empty recipient list.
func (m *ReportScheduleModel) ToDomain() *report.Schedule {
	recipients := make([]string, 0)
	if m.RecipientsJSON != "" {
		_ = json.Unmarshal([]byte(m.RecipientsJSON), &recipients)
	}
	return &report.Schedule{
		BaseEntity: m.BaseModel.ToDomain(),
		ReportType: m.ReportType,
		Cadence:    m.Cadence,
		Recipients: recipients,
		Format:     m.Format,
		NextRunAt:  m.NextRunAt,
		LastRunAt:  m.LastRunAt,
		LastError:  m.LastError,
		Active:     m.Active,
		CreatedBy:  m.CreatedBy,
	}
}

// ReportScheduleModelFromDomain creates a persistence model from a domain Schedule
func ReportScheduleModelFromDomain(s *report.Schedule) *ReportScheduleModel {
	recipients := s.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	raw, _ := json.Marshal(recipients)

	m := &ReportScheduleModel{
		ReportType:     s.ReportType,
		Cadence:        s.Cadence,
		RecipientsJSON: string(raw),
		Format:         s.Format,
		NextRunAt:      s.NextRunAt,
		LastRunAt:      s.LastRunAt,
		LastError:      s.LastError,
		Active:         s.Active,
		CreatedBy:      s.CreatedBy,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}
