// file: internals/features/school/timetables/timetable/controller/timetable_grid_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	perModel "sekolahku_backend/internals/features/school/academics/periods/model"
	settingModel "sekolahku_backend/internals/features/school/settings/model"
	excModel "sekolahku_backend/internals/features/school/timetables/exceptions/model"
	d "sekolahku_backend/internals/features/school/timetables/timetable/dto"
	"sekolahku_backend/internals/features/school/timetables/timetable/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* =========================
   Grid — resolusi minggu penuh
   GET /timetables/by-class/:class_id/grid?academic_year=&date=YYYY-MM-DD
   Tanpa date → grid steady-state; dengan date → overlay exception
   APPROVED milik tanggal tsb.
   ========================= */

type gridResponse struct {
	Timetable d.TimetableResponse `json:"timetable"`
	Grid      service.WeekGrid    `json:"grid"`
	Date      *string             `json:"date,omitempty"`
}

func (ctl *TimetableController) Grid(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tt, err := ctl.findActiveTimetable(c, schoolID, classID, strings.TrimSpace(c.Query("academic_year")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Tidak ada timetable ACTIVE untuk kelas & tahun ajaran ini.")
		}
		return writePGError(c, err)
	}

	// Period aktif (semua tipe — baris grid)
	var periods []perModel.PeriodModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("period_school_id = ? AND period_is_active = TRUE", schoolID).
		Find(&periods).Error; err != nil {
		return writePGError(c, err)
	}

	// Weekly off-days dari school setting (default: Minggu)
	setting := settingModel.DefaultSetting(schoolID)
	if err := ctl.DB.WithContext(c.Context()).
		Where("school_setting_school_id = ?", schoolID).
		First(&setting).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return writePGError(c, err)
	}

	grid := service.BuildWeekGrid(periods, tt.Slots, setting.WeeklyOffDays())

	resp := gridResponse{Timetable: d.FromModel(*tt), Grid: grid}

	if dateStr := strings.TrimSpace(c.Query("date")); dateStr != "" {
		date, perr := time.ParseInLocation("2006-01-02", dateStr, setting.Location())
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "date harus berformat YYYY-MM-DD")
		}

		overlays, lerr := ctl.loadApprovedOverlays(c, tt.TimetableID, date)
		if lerr != nil {
			return writePGError(c, lerr)
		}
		resp.Grid = service.OverlayExceptions(grid, date, overlays)
		resp.Date = &dateStr
	}

	return helper.JsonOK(c, "ok", resp)
}

// loadApprovedOverlays memproyeksikan exception APPROVED pada tanggal
// tertentu ke bentuk input overlay grid.
func (ctl *TimetableController) loadApprovedOverlays(c *fiber.Ctx, timetableID uuid.UUID, date time.Time) ([]service.ExceptionOverlay, error) {
	var rows []excModel.TimetableExceptionModel
	if err := ctl.DB.WithContext(c.Context()).
		Where(`
			timetable_exception_timetable_id = ?
			AND timetable_exception_date = ?
			AND timetable_exception_is_approved = TRUE
		`, timetableID, date.Format("2006-01-02")).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]service.ExceptionOverlay, 0, len(rows))
	for _, r := range rows {
		out = append(out, service.ExceptionOverlay{
			ExceptionID:          r.TimetableExceptionID,
			DayOfWeek:            r.TimetableExceptionDayOfWeek,
			PeriodNumber:         r.TimetableExceptionPeriodNumber,
			Type:                 service.ExceptionType(r.TimetableExceptionType),
			ReplacementTeacherID: r.TimetableExceptionReplacementTeacherID,
			ReplacementSubjectID: r.TimetableExceptionReplacementSubjectID,
			ReplacementRoom:      r.TimetableExceptionReplacementRoom,
			Reason:               r.TimetableExceptionReason,
		})
	}
	return out, nil
}
