// file: internals/features/school/timetables/exceptions/dto/timetable_exception_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/timetables/exceptions/model"
)

/* =========================================================
   Errors (sentinel ringan)
   ========================================================= */

type fmtErr string

func (e fmtErr) Error() string { return string(e) }

const (
	ErrInvalidDate               fmtErr = "exception_date harus berformat YYYY-MM-DD"
	ErrInvalidExceptionType      fmtErr = "exception_type harus substitution/cancellation/reschedule"
	ErrSubstitutionNeedsTeacher  fmtErr = "substitution wajib menyertakan replacement_teacher_id"
	ErrRescheduleNeedsChange     fmtErr = "reschedule wajib menyertakan minimal satu field replacement"
)

/* =========================================================
   1) REQUEST — create
   Field original_* TIDAK diterima dari client; backend meng-
   capture dari slot live saat create. day_of_week diturunkan
   dari exception_date (timezone school).
   ========================================================= */

type CreateTimetableExceptionRequest struct {
	TimetableExceptionClassID      uuid.UUID `json:"timetable_exception_class_id"      validate:"required"`
	TimetableExceptionAcademicYear string    `json:"timetable_exception_academic_year" validate:"required,min=4,max=20"`
	TimetableExceptionDate         string    `json:"timetable_exception_date"          validate:"required"`
	TimetableExceptionPeriodNumber int       `json:"timetable_exception_period_number" validate:"required,min=1"`

	TimetableExceptionType   string  `json:"timetable_exception_type"   validate:"required"`
	TimetableExceptionReason string  `json:"timetable_exception_reason" validate:"required,min=3,max=255"`
	TimetableExceptionNotes  *string `json:"timetable_exception_notes"  validate:"omitempty"`

	TimetableExceptionReplacementTeacherID *uuid.UUID `json:"timetable_exception_replacement_teacher_id" validate:"omitempty"`
	TimetableExceptionReplacementSubjectID *uuid.UUID `json:"timetable_exception_replacement_subject_id" validate:"omitempty"`
	TimetableExceptionReplacementRoom      *string    `json:"timetable_exception_replacement_room"       validate:"omitempty,max=80"`
}

// ParseDate memvalidasi & mem-parse exception_date pada timezone school.
func (r CreateTimetableExceptionRequest) ParseDate(loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(r.TimetableExceptionDate), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// ParseType menormalkan & memvalidasi jenis exception berikut aturan
// field replacement per jenis.
func (r CreateTimetableExceptionRequest) ParseType() (model.ExceptionType, error) {
	t := model.ExceptionType(strings.ToLower(strings.TrimSpace(r.TimetableExceptionType)))
	if !model.ValidExceptionType(t) {
		return "", ErrInvalidExceptionType
	}
	switch t {
	case model.ExceptionTypeSubstitution:
		if r.TimetableExceptionReplacementTeacherID == nil {
			return "", ErrSubstitutionNeedsTeacher
		}
	case model.ExceptionTypeReschedule:
		if r.TimetableExceptionReplacementTeacherID == nil &&
			r.TimetableExceptionReplacementSubjectID == nil &&
			r.TimetableExceptionReplacementRoom == nil {
			return "", ErrRescheduleNeedsChange
		}
	}
	return t, nil
}

/* =========================================================
   2) REQUEST — update (Pending-only, pointer-based partial)
   ========================================================= */

type UpdateTimetableExceptionRequest struct {
	TimetableExceptionReason *string `json:"timetable_exception_reason" validate:"omitempty,min=3,max=255"`
	TimetableExceptionNotes  *string `json:"timetable_exception_notes"  validate:"omitempty"`

	TimetableExceptionReplacementTeacherID *uuid.UUID `json:"timetable_exception_replacement_teacher_id" validate:"omitempty"`
	TimetableExceptionReplacementSubjectID *uuid.UUID `json:"timetable_exception_replacement_subject_id" validate:"omitempty"`
	TimetableExceptionReplacementRoom      *string    `json:"timetable_exception_replacement_room"       validate:"omitempty,max=80"`
}

// Apply menyalin field terisi ke model. Aturan per jenis tetap dijaga:
// substitution tidak boleh kehilangan replacement teacher.
func (r UpdateTimetableExceptionRequest) Apply(m *model.TimetableExceptionModel) error {
	if r.TimetableExceptionReason != nil {
		m.TimetableExceptionReason = strings.TrimSpace(*r.TimetableExceptionReason)
	}
	if r.TimetableExceptionNotes != nil {
		m.TimetableExceptionNotes = r.TimetableExceptionNotes
	}
	if r.TimetableExceptionReplacementTeacherID != nil {
		m.TimetableExceptionReplacementTeacherID = r.TimetableExceptionReplacementTeacherID
	}
	if r.TimetableExceptionReplacementSubjectID != nil {
		m.TimetableExceptionReplacementSubjectID = r.TimetableExceptionReplacementSubjectID
	}
	if r.TimetableExceptionReplacementRoom != nil {
		m.TimetableExceptionReplacementRoom = r.TimetableExceptionReplacementRoom
	}

	if m.TimetableExceptionType == model.ExceptionTypeSubstitution &&
		m.TimetableExceptionReplacementTeacherID == nil {
		return ErrSubstitutionNeedsTeacher
	}
	return nil
}

/* =========================================================
   3) QUERY — list
   ========================================================= */

type ListTimetableExceptionQuery struct {
	TimetableID *uuid.UUID `query:"timetable_id" validate:"omitempty"`
	ClassID     *uuid.UUID `query:"class_id"     validate:"omitempty"`
	DateFrom    *string    `query:"date_from"    validate:"omitempty"`
	DateTo      *string    `query:"date_to"      validate:"omitempty"`
	IsApproved  *bool      `query:"is_approved"  validate:"omitempty"`
	Type        *string    `query:"type"         validate:"omitempty"`
}

/* =========================================================
   4) RESPONSE + MAPPERS
   ========================================================= */

type TimetableExceptionResponse struct {
	TimetableExceptionID          uuid.UUID `json:"timetable_exception_id"`
	TimetableExceptionSchoolID    uuid.UUID `json:"timetable_exception_school_id"`
	TimetableExceptionTimetableID uuid.UUID `json:"timetable_exception_timetable_id"`
	TimetableExceptionClassID     uuid.UUID `json:"timetable_exception_class_id"`

	TimetableExceptionDate         string `json:"timetable_exception_date"`
	TimetableExceptionDayOfWeek    int    `json:"timetable_exception_day_of_week"`
	TimetableExceptionPeriodNumber int    `json:"timetable_exception_period_number"`

	TimetableExceptionOriginalTeacherID uuid.UUID `json:"timetable_exception_original_teacher_id"`
	TimetableExceptionOriginalSubjectID uuid.UUID `json:"timetable_exception_original_subject_id"`

	TimetableExceptionReplacementTeacherID *uuid.UUID `json:"timetable_exception_replacement_teacher_id,omitempty"`
	TimetableExceptionReplacementSubjectID *uuid.UUID `json:"timetable_exception_replacement_subject_id,omitempty"`
	TimetableExceptionReplacementRoom      *string    `json:"timetable_exception_replacement_room,omitempty"`

	TimetableExceptionType   string  `json:"timetable_exception_type"`
	TimetableExceptionReason string  `json:"timetable_exception_reason"`
	TimetableExceptionNotes  *string `json:"timetable_exception_notes,omitempty"`

	TimetableExceptionIsApproved bool       `json:"timetable_exception_is_approved"`
	TimetableExceptionApprovedBy *uuid.UUID `json:"timetable_exception_approved_by,omitempty"`
	TimetableExceptionApprovedAt *time.Time `json:"timetable_exception_approved_at,omitempty"`

	TimetableExceptionCreatedBy uuid.UUID `json:"timetable_exception_created_by"`
	TimetableExceptionCreatedAt time.Time `json:"timetable_exception_created_at"`
	TimetableExceptionUpdatedAt time.Time `json:"timetable_exception_updated_at"`
}

func FromModel(m model.TimetableExceptionModel) TimetableExceptionResponse {
	return TimetableExceptionResponse{
		TimetableExceptionID:          m.TimetableExceptionID,
		TimetableExceptionSchoolID:    m.TimetableExceptionSchoolID,
		TimetableExceptionTimetableID: m.TimetableExceptionTimetableID,
		TimetableExceptionClassID:     m.TimetableExceptionClassID,

		TimetableExceptionDate:         m.TimetableExceptionDate.Format("2006-01-02"),
		TimetableExceptionDayOfWeek:    m.TimetableExceptionDayOfWeek,
		TimetableExceptionPeriodNumber: m.TimetableExceptionPeriodNumber,

		TimetableExceptionOriginalTeacherID: m.TimetableExceptionOriginalTeacherID,
		TimetableExceptionOriginalSubjectID: m.TimetableExceptionOriginalSubjectID,

		TimetableExceptionReplacementTeacherID: m.TimetableExceptionReplacementTeacherID,
		TimetableExceptionReplacementSubjectID: m.TimetableExceptionReplacementSubjectID,
		TimetableExceptionReplacementRoom:      m.TimetableExceptionReplacementRoom,

		TimetableExceptionType:   string(m.TimetableExceptionType),
		TimetableExceptionReason: m.TimetableExceptionReason,
		TimetableExceptionNotes:  m.TimetableExceptionNotes,

		TimetableExceptionIsApproved: m.TimetableExceptionIsApproved,
		TimetableExceptionApprovedBy: m.TimetableExceptionApprovedBy,
		TimetableExceptionApprovedAt: m.TimetableExceptionApprovedAt,

		TimetableExceptionCreatedBy: m.TimetableExceptionCreatedBy,
		TimetableExceptionCreatedAt: m.TimetableExceptionCreatedAt,
		TimetableExceptionUpdatedAt: m.TimetableExceptionUpdatedAt,
	}
}

func FromModels(rows []model.TimetableExceptionModel) []TimetableExceptionResponse {
	out := make([]TimetableExceptionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
