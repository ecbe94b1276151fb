// file: internals/features/school/academics/periods/dto/period_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/academics/periods/model"
)

/* =========================================================
   Helpers
   ========================================================= */

func parseTimeOfDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func formatTOD(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04:05")
}

func parsePeriodType(s string) (model.PeriodType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "teaching":
		return model.PeriodTypeTeaching, true
	case "break":
		return model.PeriodTypeBreak, true
	case "lunch":
		return model.PeriodTypeLunch, true
	case "assembly":
		return model.PeriodTypeAssembly, true
	}
	return "", false
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreatePeriodRequest struct {
	PeriodNumber    int    `json:"period_number"     validate:"required,min=1"`
	PeriodName      string `json:"period_name"       validate:"required,max=100"`
	PeriodStartTime string `json:"period_start_time" validate:"required"` // "HH:mm" / "HH:mm:ss"
	PeriodEndTime   string `json:"period_end_time"   validate:"required"` // "HH:mm" / "HH:mm:ss"
	PeriodType      string `json:"period_type"       validate:"required,oneof=teaching break lunch assembly"`

	// opsional (default true)
	PeriodIsActive *bool `json:"period_is_active" validate:"omitempty"`
}

// schoolID dipaksa dari token di controller, bukan dari body.
func (r CreatePeriodRequest) ToModel(schoolID uuid.UUID) (model.PeriodModel, error) {
	st, ok := parseTimeOfDay(r.PeriodStartTime)
	if !ok {
		return model.PeriodModel{}, ErrInvalidStartTime
	}
	et, ok := parseTimeOfDay(r.PeriodEndTime)
	if !ok {
		return model.PeriodModel{}, ErrInvalidEndTime
	}
	if model.DurationMinutes(st, et) <= 0 {
		return model.PeriodModel{}, ErrEndNotAfterStart
	}

	ptype, _ := parsePeriodType(r.PeriodType)

	active := true
	if r.PeriodIsActive != nil {
		active = *r.PeriodIsActive
	}

	return model.PeriodModel{
		PeriodSchoolID:        schoolID,
		PeriodNumber:          r.PeriodNumber,
		PeriodName:            strings.TrimSpace(r.PeriodName),
		PeriodStartTime:       st,
		PeriodEndTime:         et,
		PeriodDurationMinutes: model.DurationMinutes(st, et),
		PeriodType:            ptype,
		PeriodIsActive:        active,
	}, nil
}

type UpdatePeriodRequest struct {
	PeriodNumber    *int    `json:"period_number"     validate:"omitempty,min=1"`
	PeriodName      *string `json:"period_name"       validate:"omitempty,max=100"`
	PeriodStartTime *string `json:"period_start_time" validate:"omitempty"`
	PeriodEndTime   *string `json:"period_end_time"   validate:"omitempty"`
	PeriodType      *string `json:"period_type"       validate:"omitempty,oneof=teaching break lunch assembly"`
	PeriodIsActive  *bool   `json:"period_is_active"  validate:"omitempty"`
}

func (r UpdatePeriodRequest) Apply(m *model.PeriodModel) error {
	if r.PeriodNumber != nil {
		m.PeriodNumber = *r.PeriodNumber
	}
	if r.PeriodName != nil {
		m.PeriodName = strings.TrimSpace(*r.PeriodName)
	}
	if r.PeriodStartTime != nil {
		t, ok := parseTimeOfDay(*r.PeriodStartTime)
		if !ok {
			return ErrInvalidStartTime
		}
		m.PeriodStartTime = t
	}
	if r.PeriodEndTime != nil {
		t, ok := parseTimeOfDay(*r.PeriodEndTime)
		if !ok {
			return ErrInvalidEndTime
		}
		m.PeriodEndTime = t
	}
	if model.DurationMinutes(m.PeriodStartTime, m.PeriodEndTime) <= 0 {
		return ErrEndNotAfterStart
	}
	m.PeriodDurationMinutes = model.DurationMinutes(m.PeriodStartTime, m.PeriodEndTime)
	if r.PeriodType != nil {
		if pt, ok := parsePeriodType(*r.PeriodType); ok {
			m.PeriodType = pt
		}
	}
	if r.PeriodIsActive != nil {
		m.PeriodIsActive = *r.PeriodIsActive
	}
	return nil
}

/* =========================================================
   2) LIST QUERY
   ========================================================= */

type ListPeriodQuery struct {
	PeriodType *string `query:"type"      validate:"omitempty,oneof=teaching break lunch assembly"`
	IsActive   *bool   `query:"is_active" validate:"omitempty"`
}

/* =========================================================
   3) RESPONSES + MAPPERS
   ========================================================= */

type PeriodResponse struct {
	PeriodID       uuid.UUID `json:"period_id"`
	PeriodSchoolID uuid.UUID `json:"period_school_id"`

	PeriodNumber int    `json:"period_number"`
	PeriodName   string `json:"period_name"`

	PeriodStartTime       string `json:"period_start_time"` // "HH:mm:ss"
	PeriodEndTime         string `json:"period_end_time"`   // "HH:mm:ss"
	PeriodDurationMinutes int    `json:"period_duration_minutes"`

	PeriodType     string `json:"period_type"`
	PeriodIsActive bool   `json:"period_is_active"`

	PeriodCreatedAt time.Time `json:"period_created_at"`
	PeriodUpdatedAt time.Time `json:"period_updated_at"`
}

func FromModel(m model.PeriodModel) PeriodResponse {
	return PeriodResponse{
		PeriodID:              m.PeriodID,
		PeriodSchoolID:        m.PeriodSchoolID,
		PeriodNumber:          m.PeriodNumber,
		PeriodName:            m.PeriodName,
		PeriodStartTime:       formatTOD(m.PeriodStartTime),
		PeriodEndTime:         formatTOD(m.PeriodEndTime),
		PeriodDurationMinutes: m.PeriodDurationMinutes,
		PeriodType:            string(m.PeriodType),
		PeriodIsActive:        m.PeriodIsActive,
		PeriodCreatedAt:       m.PeriodCreatedAt,
		PeriodUpdatedAt:       m.PeriodUpdatedAt,
	}
}

func FromModels(list []model.PeriodModel) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(list[i]))
	}
	return out
}

/* =========================================================
   4) Errors (ringan)
   ========================================================= */

var (
	ErrInvalidStartTime = fmtErr("invalid period_start_time (use HH:mm or HH:mm:ss)")
	ErrInvalidEndTime   = fmtErr("invalid period_end_time (use HH:mm or HH:mm:ss)")
	ErrEndNotAfterStart = fmtErr("period_end_time harus setelah period_start_time")
)

type fmtErr string

func (e fmtErr) Error() string { return string(e) }
