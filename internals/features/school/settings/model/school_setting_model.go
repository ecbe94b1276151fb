// file: internals/features/school/settings/model/school_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: school_settings
   Satu baris per school; sumber weekly off-days untuk grid.
   ========================================================= */

type SchoolSettingModel struct {
	// PK
	SchoolSettingID uuid.UUID `json:"school_setting_id" gorm:"type:uuid;primaryKey;column:school_setting_id;default:gen_random_uuid()"`

	// Tenant (unique → singleton per school)
	SchoolSettingSchoolID uuid.UUID `json:"school_setting_school_id" gorm:"type:uuid;not null;uniqueIndex;column:school_setting_school_id"`

	// Hari libur mingguan, 0=Minggu .. 6=Sabtu
	SchoolSettingWeeklyOffDays pq.Int64Array `json:"school_setting_weekly_off_days" gorm:"type:int[];not null;default:'{0}';column:school_setting_weekly_off_days"`

	// Zona waktu sekolah (dipakai derivasi day-of-week tanggal exception)
	SchoolSettingTimezone string `json:"school_setting_timezone" gorm:"type:varchar(50);not null;default:'Asia/Jakarta';column:school_setting_timezone"`

	// Audit
	SchoolSettingCreatedAt time.Time      `json:"school_setting_created_at" gorm:"column:school_setting_created_at;type:timestamptz;not null;autoCreateTime"`
	SchoolSettingUpdatedAt time.Time      `json:"school_setting_updated_at" gorm:"column:school_setting_updated_at;type:timestamptz;not null;autoUpdateTime"`
	SchoolSettingDeletedAt gorm.DeletedAt `json:"school_setting_deleted_at,omitempty" gorm:"column:school_setting_deleted_at;index"`
}

func (SchoolSettingModel) TableName() string { return "school_settings" }

// DefaultSetting dipakai saat school belum pernah menyimpan setting.
func DefaultSetting(schoolID uuid.UUID) SchoolSettingModel {
	return SchoolSettingModel{
		SchoolSettingSchoolID:      schoolID,
		SchoolSettingWeeklyOffDays: pq.Int64Array{0}, // Minggu
		SchoolSettingTimezone:      "Asia/Jakarta",
	}
}

// WeeklyOffDays mengembalikan off-days sebagai []int biasa.
func (m SchoolSettingModel) WeeklyOffDays() []int {
	out := make([]int, 0, len(m.SchoolSettingWeeklyOffDays))
	for _, v := range m.SchoolSettingWeeklyOffDays {
		out = append(out, int(v))
	}
	return out
}

// Location memuat *time.Location setting; fallback UTC bila invalid.
func (m SchoolSettingModel) Location() *time.Location {
	loc, err := time.LoadLocation(m.SchoolSettingTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
