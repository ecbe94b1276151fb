// file: internals/features/school/settings/dto/school_setting_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sekolahku_backend/internals/features/school/settings/model"
)

/* =========================================================
   1) REQUEST (upsert)
   ========================================================= */

type UpsertSchoolSettingRequest struct {
	SchoolSettingWeeklyOffDays []int   `json:"school_setting_weekly_off_days" validate:"required,dive,min=0,max=6"`
	SchoolSettingTimezone      *string `json:"school_setting_timezone"        validate:"omitempty,max=50"`
}

func (r UpsertSchoolSettingRequest) Apply(m *model.SchoolSettingModel) {
	days := make(pq.Int64Array, 0, len(r.SchoolSettingWeeklyOffDays))
	seen := map[int]bool{}
	for _, d := range r.SchoolSettingWeeklyOffDays {
		if !seen[d] {
			seen[d] = true
			days = append(days, int64(d))
		}
	}
	m.SchoolSettingWeeklyOffDays = days

	if r.SchoolSettingTimezone != nil {
		if tz := strings.TrimSpace(*r.SchoolSettingTimezone); tz != "" {
			m.SchoolSettingTimezone = tz
		}
	}
}

/* =========================================================
   2) RESPONSE + MAPPER
   ========================================================= */

type SchoolSettingResponse struct {
	SchoolSettingID            uuid.UUID `json:"school_setting_id"`
	SchoolSettingSchoolID      uuid.UUID `json:"school_setting_school_id"`
	SchoolSettingWeeklyOffDays []int     `json:"school_setting_weekly_off_days"`
	SchoolSettingTimezone      string    `json:"school_setting_timezone"`
	SchoolSettingCreatedAt     time.Time `json:"school_setting_created_at"`
	SchoolSettingUpdatedAt     time.Time `json:"school_setting_updated_at"`
}

func FromModel(m model.SchoolSettingModel) SchoolSettingResponse {
	return SchoolSettingResponse{
		SchoolSettingID:            m.SchoolSettingID,
		SchoolSettingSchoolID:      m.SchoolSettingSchoolID,
		SchoolSettingWeeklyOffDays: m.WeeklyOffDays(),
		SchoolSettingTimezone:      m.SchoolSettingTimezone,
		SchoolSettingCreatedAt:     m.SchoolSettingCreatedAt,
		SchoolSettingUpdatedAt:     m.SchoolSettingUpdatedAt,
	}
}
