// file: internals/features/school/academics/periods/model/period_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Enum jenis period (map ke DB type: period_type_enum)
   ======================================================= */

type PeriodType string

const (
	PeriodTypeTeaching PeriodType = "teaching"
	PeriodTypeBreak    PeriodType = "break"
	PeriodTypeLunch    PeriodType = "lunch"
	PeriodTypeAssembly PeriodType = "assembly"
)

// Hanya period teaching yang boleh dipakai slot mapel.
func (t PeriodType) IsTeaching() bool { return t == PeriodTypeTeaching }

/* =======================================================
   PeriodModel — map ke tabel periods
   ======================================================= */

type PeriodModel struct {
	// PK
	PeriodID uuid.UUID `json:"period_id" gorm:"type:uuid;primaryKey;column:period_id;default:gen_random_uuid()"`

	// Tenant
	PeriodSchoolID uuid.UUID `json:"period_school_id" gorm:"type:uuid;not null;column:period_school_id;uniqueIndex:uq_periods_school_number"`

	// Identitas & urutan
	PeriodNumber int    `json:"period_number" gorm:"not null;column:period_number;uniqueIndex:uq_periods_school_number"`
	PeriodName   string `json:"period_name"   gorm:"type:varchar(100);not null;column:period_name"`

	// Rentang waktu harian
	PeriodStartTime time.Time `json:"period_start_time" gorm:"type:time;not null;column:period_start_time"`
	PeriodEndTime   time.Time `json:"period_end_time"   gorm:"type:time;not null;column:period_end_time"`

	// Turunan (ditulis backend, bukan dari client)
	PeriodDurationMinutes int `json:"period_duration_minutes" gorm:"not null;column:period_duration_minutes"`

	// Jenis & status
	PeriodType     PeriodType `json:"period_type"      gorm:"type:period_type_enum;not null;default:'teaching';column:period_type"`
	PeriodIsActive bool       `json:"period_is_active" gorm:"not null;default:true;column:period_is_active"`

	// Audit
	PeriodCreatedAt time.Time      `json:"period_created_at" gorm:"column:period_created_at;type:timestamptz;not null;autoCreateTime"`
	PeriodUpdatedAt time.Time      `json:"period_updated_at" gorm:"column:period_updated_at;type:timestamptz;not null;autoUpdateTime"`
	PeriodDeletedAt gorm.DeletedAt `json:"period_deleted_at,omitempty" gorm:"column:period_deleted_at;index"`
}

func (PeriodModel) TableName() string { return "periods" }

// Guard: durasi selalu dihitung ulang dari start/end, wajib > 0.
func (m *PeriodModel) BeforeSave(tx *gorm.DB) error {
	m.PeriodDurationMinutes = DurationMinutes(m.PeriodStartTime, m.PeriodEndTime)
	if m.PeriodDurationMinutes <= 0 {
		return gorm.ErrInvalidData
	}
	return nil
}

// DurationMinutes menghitung selisih menit end − start pada hari yang sama.
func DurationMinutes(start, end time.Time) int {
	return int(end.Sub(start).Minutes())
}
