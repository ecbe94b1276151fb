// file: internals/features/school/timetables/exceptions/controller/timetable_exception_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	settingModel "sekolahku_backend/internals/features/school/settings/model"
	d "sekolahku_backend/internals/features/school/timetables/exceptions/dto"
	m "sekolahku_backend/internals/features/school/timetables/exceptions/model"
	ttModel "sekolahku_backend/internals/features/school/timetables/timetable/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimetableExceptionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TimetableExceptionController {
	return &TimetableExceptionController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
		default:
			return helper.JsonError(c, http.StatusInternalServerError, pgxErr.Message)
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
		default:
			return helper.JsonError(c, http.StatusInternalServerError, pqErr.Error())
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func loadSetting(tx *gorm.DB, schoolID uuid.UUID) settingModel.SchoolSettingModel {
	setting := settingModel.DefaultSetting(schoolID)
	_ = tx.Where("school_setting_school_id = ?", schoolID).First(&setting).Error
	return setting
}

/* =========================
   Create
   Snapshot slot live dicapture ke original_* SAAT create;
   edit timetable setelahnya tidak mengubah exception.
   ========================= */

func (ctl *TimetableExceptionController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	// 🔐 Admin ATAU guru boleh mengajukan exception
	if err := helperAuth.EnsureAdminOrTeacherSchool(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateTimetableExceptionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Exception.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	excType, err := req.ParseType()
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"timetable_exception_type": {err.Error()},
		})
	}

	setting := loadSetting(ctl.DB.WithContext(c.Context()), schoolID)
	date, err := req.ParseDate(setting.Location())
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"timetable_exception_date": {err.Error()},
		})
	}
	dayOfWeek := int(date.Weekday()) // 0=Minggu

	var row m.TimetableExceptionModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// Timetable otoritatif untuk (class, year)
		var tt ttModel.TimetableModel
		if er := tx.
			Where(`
				timetable_school_id = ?
				AND timetable_class_id = ?
				AND timetable_academic_year = ?
				AND timetable_is_active = TRUE
			`, schoolID, req.TimetableExceptionClassID, strings.TrimSpace(req.TimetableExceptionAcademicYear)).
			Order("timetable_created_at DESC").
			First(&tt).Error; er != nil {
			if errors.Is(er, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnprocessableEntity,
					"Tidak ada timetable ACTIVE untuk kelas & tahun ajaran ini.")
			}
			return er
		}

		// Slot asal harus ada di sel (day, period)
		var slot ttModel.TimetableSlotModel
		if er := tx.
			Where(`
				timetable_slot_timetable_id = ?
				AND timetable_slot_day_of_week = ?
				AND timetable_slot_period_number = ?
			`, tt.TimetableID, dayOfWeek, req.TimetableExceptionPeriodNumber).
			First(&slot).Error; er != nil {
			if errors.Is(er, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnprocessableEntity,
					"Jadwal asal tidak ditemukan pada hari & period tsb.")
			}
			return er
		}

		snapshot := datatypes.JSONMap{
			"slot_id":    slot.TimetableSlotID.String(),
			"subject_id": slot.TimetableSlotSubjectID.String(),
			"teacher_id": slot.TimetableSlotTeacherID.String(),
		}
		if slot.TimetableSlotRoom != nil {
			snapshot["room"] = *slot.TimetableSlotRoom
		}

		row = m.TimetableExceptionModel{
			TimetableExceptionSchoolID:    schoolID,
			TimetableExceptionTimetableID: tt.TimetableID,
			TimetableExceptionClassID:     req.TimetableExceptionClassID,

			TimetableExceptionDate:         date,
			TimetableExceptionDayOfWeek:    dayOfWeek,
			TimetableExceptionPeriodNumber: req.TimetableExceptionPeriodNumber,

			TimetableExceptionOriginalTeacherID:    slot.TimetableSlotTeacherID,
			TimetableExceptionOriginalSubjectID:    slot.TimetableSlotSubjectID,
			TimetableExceptionOriginalSlotSnapshot: snapshot,

			TimetableExceptionReplacementTeacherID: req.TimetableExceptionReplacementTeacherID,
			TimetableExceptionReplacementSubjectID: req.TimetableExceptionReplacementSubjectID,
			TimetableExceptionReplacementRoom:      req.TimetableExceptionReplacementRoom,

			TimetableExceptionType:   excType,
			TimetableExceptionReason: strings.TrimSpace(req.TimetableExceptionReason),
			TimetableExceptionNotes:  req.TimetableExceptionNotes,

			TimetableExceptionCreatedBy: userID,
		}
		return tx.Create(&row).Error
	}); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return writePGError(c, err)
	}

	return helper.JsonCreated(c, "Exception created", d.FromModel(row))
}

/* =========================
   Patch — Pending-only
   ========================= */

func (ctl *TimetableExceptionController) Patch(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureAdminOrTeacherSchool(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TimetableExceptionModel
	if err := ctl.DB.
		Where("timetable_exception_id = ? AND timetable_exception_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "exception not found")
		}
		return writePGError(c, err)
	}
	if !existing.CanModify() {
		return helper.JsonError(c, http.StatusConflict, "Exception sudah approved dan tidak bisa diubah.")
	}

	var req d.UpdateTimetableExceptionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}
	if err := req.Apply(&existing); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"timetable_exception_replacement_teacher_id": {err.Error()},
		})
	}

	// WHERE mengulang guard approved: tahan balapan dengan Approve
	res := ctl.DB.WithContext(c.Context()).
		Model(&m.TimetableExceptionModel{}).
		Where("timetable_exception_id = ? AND timetable_exception_is_approved = FALSE", existing.TimetableExceptionID).
		Updates(map[string]interface{}{
			"timetable_exception_reason":                 existing.TimetableExceptionReason,
			"timetable_exception_notes":                  existing.TimetableExceptionNotes,
			"timetable_exception_replacement_teacher_id": existing.TimetableExceptionReplacementTeacherID,
			"timetable_exception_replacement_subject_id": existing.TimetableExceptionReplacementSubjectID,
			"timetable_exception_replacement_room":       existing.TimetableExceptionReplacementRoom,
		})
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusConflict, "Exception sudah approved dan tidak bisa diubah.")
	}

	return helper.JsonUpdated(c, "Exception updated", d.FromModel(existing))
}

/* =========================
   Approve — Pending → Approved (terminal, admin-only)
   ========================= */

func (ctl *TimetableExceptionController) Approve(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak (hanya admin)")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	approverID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TimetableExceptionModel
	if err := ctl.DB.
		Where("timetable_exception_id = ? AND timetable_exception_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "exception not found")
		}
		return writePGError(c, err)
	}

	now := time.Now()
	if err := existing.Approve(approverID, now); err != nil {
		return helper.JsonError(c, http.StatusConflict, err.Error())
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&m.TimetableExceptionModel{}).
		Where("timetable_exception_id = ? AND timetable_exception_is_approved = FALSE", existing.TimetableExceptionID).
		Updates(map[string]interface{}{
			"timetable_exception_is_approved": true,
			"timetable_exception_approved_by": approverID,
			"timetable_exception_approved_at": now,
		})
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusConflict, m.ErrAlreadyApproved.Error())
	}

	return helper.JsonUpdated(c, "Exception approved", d.FromModel(existing))
}

/* =========================
   Delete — Pending-only (Approved = 409, enforced di WHERE)
   ========================= */

func (ctl *TimetableExceptionController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := helperAuth.EnsureAdminOrTeacherSchool(c, schoolID); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TimetableExceptionModel
	if err := ctl.DB.
		Where("timetable_exception_id = ? AND timetable_exception_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "exception not found")
		}
		return writePGError(c, err)
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("timetable_exception_id = ? AND timetable_exception_is_approved = FALSE", existing.TimetableExceptionID).
		Delete(&m.TimetableExceptionModel{})
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusConflict, "Exception sudah approved dan tidak bisa dihapus.")
	}

	return helper.JsonDeleted(c, "Exception deleted", d.FromModel(existing))
}

/* =========================
   List & Detail
   ========================= */

func (ctl *TimetableExceptionController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q d.ListTimetableExceptionQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(q); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	p := helper.ParseFiber(c, "date", "desc", helper.DefaultOpts)
	order, ok := p.SafeOrderClause(map[string]string{
		"date":       "timetable_exception_date",
		"created_at": "timetable_exception_created_at",
		"updated_at": "timetable_exception_updated_at",
	}, "date")
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "sort_by tidak dikenal")
	}

	tx := ctl.DB.WithContext(c.Context()).
		Model(&m.TimetableExceptionModel{}).
		Where("timetable_exception_school_id = ?", schoolID)
	if q.TimetableID != nil {
		tx = tx.Where("timetable_exception_timetable_id = ?", *q.TimetableID)
	}
	if q.ClassID != nil {
		tx = tx.Where("timetable_exception_class_id = ?", *q.ClassID)
	}
	if q.DateFrom != nil {
		tx = tx.Where("timetable_exception_date >= ?", strings.TrimSpace(*q.DateFrom))
	}
	if q.DateTo != nil {
		tx = tx.Where("timetable_exception_date <= ?", strings.TrimSpace(*q.DateTo))
	}
	if q.IsApproved != nil {
		tx = tx.Where("timetable_exception_is_approved = ?", *q.IsApproved)
	}
	if q.Type != nil {
		tx = tx.Where("timetable_exception_type = ?", strings.ToLower(strings.TrimSpace(*q.Type)))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.TimetableExceptionModel
	if err := tx.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", d.FromModels(rows), &pg)
}

func (ctl *TimetableExceptionController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.TimetableExceptionModel
	if err := ctl.DB.
		Where("timetable_exception_id = ? AND timetable_exception_school_id = ?", id, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "exception not found")
		}
		return writePGError(c, err)
	}

	return helper.JsonOK(c, "ok", d.FromModel(row))
}
