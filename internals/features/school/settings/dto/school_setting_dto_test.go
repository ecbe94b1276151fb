// file: internals/features/school/settings/dto/school_setting_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/settings/model"
)

func TestUpsertSettingApplyDedupesOffDays(t *testing.T) {
	row := model.DefaultSetting(uuid.New())

	tz := "Asia/Makassar"
	req := UpsertSchoolSettingRequest{
		SchoolSettingWeeklyOffDays: []int{6, 0, 6, 0},
		SchoolSettingTimezone:      &tz,
	}
	req.Apply(&row)

	got := row.WeeklyOffDays()
	if len(got) != 2 || got[0] != 6 || got[1] != 0 {
		t.Errorf("off days = %v, want [6 0] (dedupe, urutan input)", got)
	}
	if row.SchoolSettingTimezone != "Asia/Makassar" {
		t.Errorf("timezone = %s", row.SchoolSettingTimezone)
	}
}

func TestUpsertSettingApplyIgnoresBlankTimezone(t *testing.T) {
	row := model.DefaultSetting(uuid.New())

	blank := "   "
	UpsertSchoolSettingRequest{
		SchoolSettingWeeklyOffDays: []int{5},
		SchoolSettingTimezone:      &blank,
	}.Apply(&row)

	if row.SchoolSettingTimezone != "Asia/Jakarta" {
		t.Errorf("timezone kosong tidak boleh menimpa default, got %s", row.SchoolSettingTimezone)
	}
	if days := row.WeeklyOffDays(); len(days) != 1 || days[0] != 5 {
		t.Errorf("off days = %v, want [5]", days)
	}
}

func TestDefaultSettingLocation(t *testing.T) {
	row := model.DefaultSetting(uuid.New())
	if loc := row.Location(); loc == nil || loc.String() != "Asia/Jakarta" {
		t.Errorf("Location() = %v", row.Location())
	}

	row.SchoolSettingTimezone = "Mars/Olympus"
	if loc := row.Location(); loc.String() != "UTC" {
		t.Errorf("timezone invalid harus fallback UTC, got %s", loc)
	}
}
