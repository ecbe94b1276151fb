// file: internals/features/school/academics/allocations/model/class_subject_allocation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   Enum status alokasi (map ke DB type: allocation_status_enum)
   ======================================================= */

type AllocationStatus string

const (
	AllocationStatusActive   AllocationStatus = "active"
	AllocationStatusInactive AllocationStatus = "inactive"
)

/* =========================================================
   MODEL: class_subject_allocations
   Binding (kelas, mapel, tahun ajaran) → guru + kuota mingguan.
   Invariant DB: maksimal SATU baris active per
   (school_id, class_id, subject_id, academic_year) — partial unique index.
   ========================================================= */

type ClassSubjectAllocationModel struct {
	// PK
	ClassSubjectAllocationID uuid.UUID `json:"class_subject_allocation_id" gorm:"type:uuid;primaryKey;column:class_subject_allocation_id;default:gen_random_uuid()"`

	// Tenant
	ClassSubjectAllocationSchoolID uuid.UUID `json:"class_subject_allocation_school_id" gorm:"type:uuid;not null;column:class_subject_allocation_school_id"`

	// Relations (IDs)
	ClassSubjectAllocationClassID   uuid.UUID `json:"class_subject_allocation_class_id"   gorm:"type:uuid;not null;column:class_subject_allocation_class_id"`
	ClassSubjectAllocationSubjectID uuid.UUID `json:"class_subject_allocation_subject_id" gorm:"type:uuid;not null;column:class_subject_allocation_subject_id"`
	ClassSubjectAllocationTeacherID uuid.UUID `json:"class_subject_allocation_teacher_id" gorm:"type:uuid;not null;column:class_subject_allocation_teacher_id"`

	// Tahun ajaran, mis. "2026/2027"
	ClassSubjectAllocationAcademicYear string `json:"class_subject_allocation_academic_year" gorm:"type:varchar(20);not null;column:class_subject_allocation_academic_year"`

	// Kuota & hint penjadwalan (advisory, tidak dipaksa saat edit grid)
	ClassSubjectAllocationPeriodsPerWeek     int  `json:"class_subject_allocation_periods_per_week"    gorm:"not null;default:1;column:class_subject_allocation_periods_per_week"`
	ClassSubjectAllocationIsLabSubject       bool `json:"class_subject_allocation_is_lab_subject"      gorm:"not null;default:false;column:class_subject_allocation_is_lab_subject"`
	ClassSubjectAllocationConsecutivePeriods int  `json:"class_subject_allocation_consecutive_periods" gorm:"not null;default:1;column:class_subject_allocation_consecutive_periods"`

	// Status
	ClassSubjectAllocationStatus AllocationStatus `json:"class_subject_allocation_status" gorm:"type:allocation_status_enum;not null;default:'active';column:class_subject_allocation_status"`

	// Audit
	ClassSubjectAllocationCreatedAt time.Time      `json:"class_subject_allocation_created_at" gorm:"column:class_subject_allocation_created_at;type:timestamptz;not null;autoCreateTime"`
	ClassSubjectAllocationUpdatedAt time.Time      `json:"class_subject_allocation_updated_at" gorm:"column:class_subject_allocation_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ClassSubjectAllocationDeletedAt gorm.DeletedAt `json:"class_subject_allocation_deleted_at,omitempty" gorm:"column:class_subject_allocation_deleted_at;index"`
}

func (ClassSubjectAllocationModel) TableName() string { return "class_subject_allocations" }

func (m ClassSubjectAllocationModel) IsActive() bool {
	return m.ClassSubjectAllocationStatus == AllocationStatusActive
}
