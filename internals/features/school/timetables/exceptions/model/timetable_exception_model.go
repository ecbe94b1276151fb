// file: internals/features/school/timetables/exceptions/model/timetable_exception_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   Enum jenis exception (map ke DB type: timetable_exception_type_enum)
   ======================================================= */

type ExceptionType string

const (
	ExceptionTypeSubstitution ExceptionType = "substitution"
	ExceptionTypeCancellation ExceptionType = "cancellation"
	ExceptionTypeReschedule   ExceptionType = "reschedule"
)

func ValidExceptionType(t ExceptionType) bool {
	switch t {
	case ExceptionTypeSubstitution, ExceptionTypeCancellation, ExceptionTypeReschedule:
		return true
	}
	return false
}

/* =========================================================
   MODEL: timetable_exceptions
   Override satu sel timetable untuk SATU tanggal kalender.
   original_* dicapture saat create (snapshot historis), tidak
   di-derive ulang saat timetable berubah.
   Lifecycle: Pending (is_approved=false, mutable) → Approved
   (immutable, efektif untuk tanggal tsb). Approved = terminal.
   ========================================================= */

type TimetableExceptionModel struct {
	// PK
	TimetableExceptionID uuid.UUID `json:"timetable_exception_id" gorm:"type:uuid;primaryKey;column:timetable_exception_id;default:gen_random_uuid()"`

	// Tenant
	TimetableExceptionSchoolID uuid.UUID `json:"timetable_exception_school_id" gorm:"type:uuid;not null;column:timetable_exception_school_id;index"`

	// Referensi timetable + kelas
	TimetableExceptionTimetableID uuid.UUID `json:"timetable_exception_timetable_id" gorm:"type:uuid;not null;column:timetable_exception_timetable_id;index:idx_timetable_exceptions_lookup"`
	TimetableExceptionClassID     uuid.UUID `json:"timetable_exception_class_id"     gorm:"type:uuid;not null;column:timetable_exception_class_id"`

	// Target: tanggal kalender + koordinat sel
	TimetableExceptionDate         time.Time `json:"timetable_exception_date" gorm:"type:date;not null;column:timetable_exception_date;index:idx_timetable_exceptions_lookup"`
	TimetableExceptionDayOfWeek    int       `json:"timetable_exception_day_of_week"    gorm:"not null;column:timetable_exception_day_of_week;check:timetable_exception_day_of_week BETWEEN 0 AND 6"`
	TimetableExceptionPeriodNumber int       `json:"timetable_exception_period_number" gorm:"not null;column:timetable_exception_period_number"`

	// Snapshot slot asal saat create
	TimetableExceptionOriginalTeacherID    uuid.UUID         `json:"timetable_exception_original_teacher_id" gorm:"type:uuid;not null;column:timetable_exception_original_teacher_id"`
	TimetableExceptionOriginalSubjectID    uuid.UUID         `json:"timetable_exception_original_subject_id" gorm:"type:uuid;not null;column:timetable_exception_original_subject_id"`
	TimetableExceptionOriginalSlotSnapshot datatypes.JSONMap `json:"timetable_exception_original_slot_snapshot,omitempty" gorm:"type:jsonb;column:timetable_exception_original_slot_snapshot"`

	// Replacement (substitution wajib teacher; reschedule bebas kombinasi)
	TimetableExceptionReplacementTeacherID *uuid.UUID `json:"timetable_exception_replacement_teacher_id,omitempty" gorm:"type:uuid;column:timetable_exception_replacement_teacher_id"`
	TimetableExceptionReplacementSubjectID *uuid.UUID `json:"timetable_exception_replacement_subject_id,omitempty" gorm:"type:uuid;column:timetable_exception_replacement_subject_id"`
	TimetableExceptionReplacementRoom      *string    `json:"timetable_exception_replacement_room,omitempty"       gorm:"type:varchar(80);column:timetable_exception_replacement_room"`

	// Jenis + alasan
	TimetableExceptionType   ExceptionType `json:"timetable_exception_type"   gorm:"type:timetable_exception_type_enum;not null;column:timetable_exception_type"`
	TimetableExceptionReason string        `json:"timetable_exception_reason" gorm:"type:varchar(255);not null;column:timetable_exception_reason"`
	TimetableExceptionNotes  *string       `json:"timetable_exception_notes,omitempty" gorm:"type:text;column:timetable_exception_notes"`

	// Approval
	TimetableExceptionIsApproved bool       `json:"timetable_exception_is_approved" gorm:"not null;default:false;column:timetable_exception_is_approved"`
	TimetableExceptionApprovedBy *uuid.UUID `json:"timetable_exception_approved_by,omitempty" gorm:"type:uuid;column:timetable_exception_approved_by"`
	TimetableExceptionApprovedAt *time.Time `json:"timetable_exception_approved_at,omitempty" gorm:"type:timestamptz;column:timetable_exception_approved_at"`

	// Pembuat
	TimetableExceptionCreatedBy uuid.UUID `json:"timetable_exception_created_by" gorm:"type:uuid;not null;column:timetable_exception_created_by"`

	// Audit
	TimetableExceptionCreatedAt time.Time      `json:"timetable_exception_created_at" gorm:"column:timetable_exception_created_at;type:timestamptz;not null;autoCreateTime"`
	TimetableExceptionUpdatedAt time.Time      `json:"timetable_exception_updated_at" gorm:"column:timetable_exception_updated_at;type:timestamptz;not null;autoUpdateTime"`
	TimetableExceptionDeletedAt gorm.DeletedAt `json:"timetable_exception_deleted_at,omitempty" gorm:"column:timetable_exception_deleted_at;index"`
}

func (TimetableExceptionModel) TableName() string { return "timetable_exceptions" }

// CanModify: hanya exception Pending yang boleh di-edit.
func (m TimetableExceptionModel) CanModify() bool { return !m.TimetableExceptionIsApproved }

// CanDelete: Approved bersifat terminal, tidak boleh dihapus.
func (m TimetableExceptionModel) CanDelete() bool { return !m.TimetableExceptionIsApproved }

// Approve menandai approved. Error bila sudah approved (terminal).
func (m *TimetableExceptionModel) Approve(approverID uuid.UUID, at time.Time) error {
	if m.TimetableExceptionIsApproved {
		return ErrAlreadyApproved
	}
	m.TimetableExceptionIsApproved = true
	m.TimetableExceptionApprovedBy = &approverID
	m.TimetableExceptionApprovedAt = &at
	return nil
}

type exceptionErr string

func (e exceptionErr) Error() string { return string(e) }

const (
	ErrAlreadyApproved exceptionErr = "exception sudah approved dan bersifat final"
)
