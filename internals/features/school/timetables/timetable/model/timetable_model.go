// file: internals/features/school/timetables/timetable/model/timetable_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Enum asal timetable (map ke DB type: timetable_generation_enum)
   ======================================================= */

type TimetableGenerationType string

const (
	TimetableGenerationManual TimetableGenerationType = "manual"
	TimetableGenerationAuto   TimetableGenerationType = "auto_generated"
)

/* =========================================================
   MODEL: timetables
   Satu jadwal mingguan per (class, academic_year); slot di tabel
   terpisah. Invariant: maksimal SATU timetable active per
   (school_id, class_id, academic_year) — dicek di controller,
   partial unique index jadi backstop.
   ========================================================= */

type TimetableModel struct {
	// PK
	TimetableID uuid.UUID `json:"timetable_id" gorm:"type:uuid;primaryKey;column:timetable_id;default:gen_random_uuid()"`

	// Tenant
	TimetableSchoolID uuid.UUID `json:"timetable_school_id" gorm:"type:uuid;not null;column:timetable_school_id"`

	// Scope
	TimetableClassID      uuid.UUID `json:"timetable_class_id"      gorm:"type:uuid;not null;column:timetable_class_id;index:idx_timetables_class_year"`
	TimetableAcademicYear string    `json:"timetable_academic_year" gorm:"type:varchar(20);not null;column:timetable_academic_year;index:idx_timetables_class_year"`

	// Asal pembuatan + metadata generator (score, iterasi, dsb → JSONB)
	TimetableGenerationType         TimetableGenerationType `json:"timetable_generation_type" gorm:"type:timetable_generation_enum;not null;default:'manual';column:timetable_generation_type"`
	TimetableAutoGenerationMetadata datatypes.JSONMap       `json:"timetable_auto_generation_metadata,omitempty" gorm:"type:jsonb;column:timetable_auto_generation_metadata"`

	TimetableIsActive bool `json:"timetable_is_active" gorm:"not null;default:true;column:timetable_is_active"`

	// Audit
	TimetableCreatedAt time.Time      `json:"timetable_created_at" gorm:"column:timetable_created_at;type:timestamptz;not null;autoCreateTime"`
	TimetableUpdatedAt time.Time      `json:"timetable_updated_at" gorm:"column:timetable_updated_at;type:timestamptz;not null;autoUpdateTime"`
	TimetableDeletedAt gorm.DeletedAt `json:"timetable_deleted_at,omitempty" gorm:"column:timetable_deleted_at;index"`

	// Relasi (diisi saat Preload)
	Slots []TimetableSlotModel `json:"slots,omitempty" gorm:"foreignKey:TimetableSlotTimetableID;references:TimetableID"`
}

func (TimetableModel) TableName() string { return "timetables" }
