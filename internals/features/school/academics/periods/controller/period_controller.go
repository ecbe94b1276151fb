// file: internals/features/school/academics/periods/controller/period_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/academics/periods/dto"
	m "sekolahku_backend/internals/features/school/academics/periods/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type PeriodController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *PeriodController {
	return &PeriodController{DB: db, Validate: v}
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

// --- PG error mapping (pgx/libpq) ---
func mapPGError(err error) (int, string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case "23505":
			return http.StatusConflict, "Nomor period sudah dipakai (unique violation)."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		default:
			return http.StatusInternalServerError, pgxErr.Message
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "23505":
			return http.StatusConflict, "Nomor period sudah dipakai (unique violation)."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		default:
			return http.StatusInternalServerError, pqErr.Error()
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

/* =========================
   Create
   ========================= */

func (ctl *PeriodController) Create(c *fiber.Ctx) error {
	// 🔐 Guard role: hanya admin
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak (hanya admin)")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreatePeriodRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Period.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	row, err := req.ToModel(schoolID)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"period_end_time": {err.Error()},
		})
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonCreated(c, "Period created", d.FromModel(row))
}

/* =========================
   Patch (Partial) — pointer-based DTO
   ========================= */

func (ctl *PeriodController) Patch(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak (hanya admin)")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.PeriodModel
	if err := ctl.DB.
		Where("period_id = ? AND period_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "period not found")
		}
		return writePGError(c, err)
	}

	var req d.UpdatePeriodRequest
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
			"period_end_time": {err.Error()},
		})
	}

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Period updated", d.FromModel(existing))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *PeriodController) Delete(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak (hanya admin)")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.PeriodModel
	if err := ctl.DB.
		Where("period_id = ? AND period_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "period not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonDeleted(c, "Period deleted", d.FromModel(existing))
}

/* =========================
   List & Detail
   ========================= */

func (ctl *PeriodController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q d.ListPeriodQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(q); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	p := helper.ParseFiber(c, "period_number", "asc", helper.DefaultOpts)
	order, ok := p.SafeOrderClause(map[string]string{
		"period_number": "period_number",
		"start_time":    "period_start_time",
		"created_at":    "period_created_at",
	}, "period_number")
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "sort_by tidak dikenal")
	}

	tx := ctl.DB.WithContext(c.Context()).
		Model(&m.PeriodModel{}).
		Where("period_school_id = ?", schoolID)
	if q.PeriodType != nil {
		tx = tx.Where("period_type = ?", strings.ToLower(*q.PeriodType))
	}
	if q.IsActive != nil {
		tx = tx.Where("period_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.PeriodModel
	if err := tx.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", d.FromModels(rows), &pg)
}

func (ctl *PeriodController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.PeriodModel
	if err := ctl.DB.
		Where("period_id = ? AND period_school_id = ?", id, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "period not found")
		}
		return writePGError(c, err)
	}

	return helper.JsonOK(c, "ok", d.FromModel(row))
}
