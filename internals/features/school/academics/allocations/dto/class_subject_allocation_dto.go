// file: internals/features/school/academics/allocations/dto/class_subject_allocation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/academics/allocations/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateClassSubjectAllocationRequest struct {
	// wajib
	ClassSubjectAllocationClassID      uuid.UUID `json:"class_subject_allocation_class_id"      validate:"required"`
	ClassSubjectAllocationSubjectID    uuid.UUID `json:"class_subject_allocation_subject_id"    validate:"required"`
	ClassSubjectAllocationTeacherID    uuid.UUID `json:"class_subject_allocation_teacher_id"    validate:"required"`
	ClassSubjectAllocationAcademicYear string    `json:"class_subject_allocation_academic_year" validate:"required,max=20"`

	// opsional (defaults: 1, false, 1, "active")
	ClassSubjectAllocationPeriodsPerWeek     *int    `json:"class_subject_allocation_periods_per_week"    validate:"omitempty,min=1"`
	ClassSubjectAllocationIsLabSubject       *bool   `json:"class_subject_allocation_is_lab_subject"      validate:"omitempty"`
	ClassSubjectAllocationConsecutivePeriods *int    `json:"class_subject_allocation_consecutive_periods" validate:"omitempty,min=1"`
	ClassSubjectAllocationStatus             *string `json:"class_subject_allocation_status"              validate:"omitempty,oneof=active inactive"`
}

// schoolID dipaksa dari token di controller.
func (r CreateClassSubjectAllocationRequest) ToModel(schoolID uuid.UUID) (model.ClassSubjectAllocationModel, error) {
	perWeek := 1
	if r.ClassSubjectAllocationPeriodsPerWeek != nil {
		perWeek = *r.ClassSubjectAllocationPeriodsPerWeek
	}
	consecutive := 1
	if r.ClassSubjectAllocationConsecutivePeriods != nil {
		consecutive = *r.ClassSubjectAllocationConsecutivePeriods
	}
	// Cross-field: blok lab tidak boleh melebihi kuota mingguan.
	if consecutive > perWeek {
		return model.ClassSubjectAllocationModel{}, ErrConsecutiveExceedsQuota
	}

	isLab := false
	if r.ClassSubjectAllocationIsLabSubject != nil {
		isLab = *r.ClassSubjectAllocationIsLabSubject
	}

	status := model.AllocationStatusActive
	if r.ClassSubjectAllocationStatus != nil &&
		strings.EqualFold(strings.TrimSpace(*r.ClassSubjectAllocationStatus), "inactive") {
		status = model.AllocationStatusInactive
	}

	return model.ClassSubjectAllocationModel{
		ClassSubjectAllocationSchoolID:           schoolID,
		ClassSubjectAllocationClassID:            r.ClassSubjectAllocationClassID,
		ClassSubjectAllocationSubjectID:          r.ClassSubjectAllocationSubjectID,
		ClassSubjectAllocationTeacherID:          r.ClassSubjectAllocationTeacherID,
		ClassSubjectAllocationAcademicYear:       strings.TrimSpace(r.ClassSubjectAllocationAcademicYear),
		ClassSubjectAllocationPeriodsPerWeek:     perWeek,
		ClassSubjectAllocationIsLabSubject:       isLab,
		ClassSubjectAllocationConsecutivePeriods: consecutive,
		ClassSubjectAllocationStatus:             status,
	}, nil
}

type UpdateClassSubjectAllocationRequest struct {
	ClassSubjectAllocationTeacherID          *uuid.UUID `json:"class_subject_allocation_teacher_id"          validate:"omitempty"`
	ClassSubjectAllocationPeriodsPerWeek     *int       `json:"class_subject_allocation_periods_per_week"    validate:"omitempty,min=1"`
	ClassSubjectAllocationIsLabSubject       *bool      `json:"class_subject_allocation_is_lab_subject"      validate:"omitempty"`
	ClassSubjectAllocationConsecutivePeriods *int       `json:"class_subject_allocation_consecutive_periods" validate:"omitempty,min=1"`
	ClassSubjectAllocationStatus             *string    `json:"class_subject_allocation_status"              validate:"omitempty,oneof=active inactive"`
}

func (r UpdateClassSubjectAllocationRequest) Apply(m *model.ClassSubjectAllocationModel) error {
	if r.ClassSubjectAllocationTeacherID != nil {
		m.ClassSubjectAllocationTeacherID = *r.ClassSubjectAllocationTeacherID
	}
	if r.ClassSubjectAllocationPeriodsPerWeek != nil {
		m.ClassSubjectAllocationPeriodsPerWeek = *r.ClassSubjectAllocationPeriodsPerWeek
	}
	if r.ClassSubjectAllocationIsLabSubject != nil {
		m.ClassSubjectAllocationIsLabSubject = *r.ClassSubjectAllocationIsLabSubject
	}
	if r.ClassSubjectAllocationConsecutivePeriods != nil {
		m.ClassSubjectAllocationConsecutivePeriods = *r.ClassSubjectAllocationConsecutivePeriods
	}
	if m.ClassSubjectAllocationConsecutivePeriods > m.ClassSubjectAllocationPeriodsPerWeek {
		return ErrConsecutiveExceedsQuota
	}
	if r.ClassSubjectAllocationStatus != nil {
		if strings.EqualFold(strings.TrimSpace(*r.ClassSubjectAllocationStatus), "inactive") {
			m.ClassSubjectAllocationStatus = model.AllocationStatusInactive
		} else {
			m.ClassSubjectAllocationStatus = model.AllocationStatusActive
		}
	}
	return nil
}

/* =========================================================
   2) LIST QUERY
   ========================================================= */

type ListClassSubjectAllocationQuery struct {
	ClassID      *uuid.UUID `query:"class_id"      validate:"omitempty"`
	SubjectID    *uuid.UUID `query:"subject_id"    validate:"omitempty"`
	TeacherID    *uuid.UUID `query:"teacher_id"    validate:"omitempty"`
	AcademicYear *string    `query:"academic_year" validate:"omitempty,max=20"`
	Status       *string    `query:"status"        validate:"omitempty,oneof=active inactive"`
}

/* =========================================================
   3) RESPONSES + MAPPERS
   ========================================================= */

type ClassSubjectAllocationResponse struct {
	ClassSubjectAllocationID       uuid.UUID `json:"class_subject_allocation_id"`
	ClassSubjectAllocationSchoolID uuid.UUID `json:"class_subject_allocation_school_id"`

	ClassSubjectAllocationClassID      uuid.UUID `json:"class_subject_allocation_class_id"`
	ClassSubjectAllocationSubjectID    uuid.UUID `json:"class_subject_allocation_subject_id"`
	ClassSubjectAllocationTeacherID    uuid.UUID `json:"class_subject_allocation_teacher_id"`
	ClassSubjectAllocationAcademicYear string    `json:"class_subject_allocation_academic_year"`

	ClassSubjectAllocationPeriodsPerWeek     int  `json:"class_subject_allocation_periods_per_week"`
	ClassSubjectAllocationIsLabSubject       bool `json:"class_subject_allocation_is_lab_subject"`
	ClassSubjectAllocationConsecutivePeriods int  `json:"class_subject_allocation_consecutive_periods"`

	ClassSubjectAllocationStatus string `json:"class_subject_allocation_status"`

	ClassSubjectAllocationCreatedAt time.Time `json:"class_subject_allocation_created_at"`
	ClassSubjectAllocationUpdatedAt time.Time `json:"class_subject_allocation_updated_at"`
}

func FromModel(m model.ClassSubjectAllocationModel) ClassSubjectAllocationResponse {
	return ClassSubjectAllocationResponse{
		ClassSubjectAllocationID:                 m.ClassSubjectAllocationID,
		ClassSubjectAllocationSchoolID:           m.ClassSubjectAllocationSchoolID,
		ClassSubjectAllocationClassID:            m.ClassSubjectAllocationClassID,
		ClassSubjectAllocationSubjectID:          m.ClassSubjectAllocationSubjectID,
		ClassSubjectAllocationTeacherID:          m.ClassSubjectAllocationTeacherID,
		ClassSubjectAllocationAcademicYear:       m.ClassSubjectAllocationAcademicYear,
		ClassSubjectAllocationPeriodsPerWeek:     m.ClassSubjectAllocationPeriodsPerWeek,
		ClassSubjectAllocationIsLabSubject:       m.ClassSubjectAllocationIsLabSubject,
		ClassSubjectAllocationConsecutivePeriods: m.ClassSubjectAllocationConsecutivePeriods,
		ClassSubjectAllocationStatus:             string(m.ClassSubjectAllocationStatus),
		ClassSubjectAllocationCreatedAt:          m.ClassSubjectAllocationCreatedAt,
		ClassSubjectAllocationUpdatedAt:          m.ClassSubjectAllocationUpdatedAt,
	}
}

func FromModels(list []model.ClassSubjectAllocationModel) []ClassSubjectAllocationResponse {
	out := make([]ClassSubjectAllocationResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(list[i]))
	}
	return out
}

/* =========================================================
   4) Errors (ringan)
   ========================================================= */

var ErrConsecutiveExceedsQuota = fmtErr("consecutive_periods tidak boleh melebihi periods_per_week")

type fmtErr string

func (e fmtErr) Error() string { return string(e) }
