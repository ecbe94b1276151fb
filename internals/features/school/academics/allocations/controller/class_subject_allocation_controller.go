// file: internals/features/school/academics/allocations/controller/class_subject_allocation_controller.go
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

	d "sekolahku_backend/internals/features/school/academics/allocations/dto"
	m "sekolahku_backend/internals/features/school/academics/allocations/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassSubjectAllocationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassSubjectAllocationController {
	return &ClassSubjectAllocationController{DB: db, Validate: v}
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
			return http.StatusConflict, "Sudah ada alokasi ACTIVE untuk kombinasi kelas/mapel/tahun ini."
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
			return http.StatusConflict, "Sudah ada alokasi ACTIVE untuk kombinasi kelas/mapel/tahun ini."
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

// Guard invariant: maksimal satu alokasi ACTIVE per (class, subject, year).
// Dicek di dalam transaksi; DB partial unique index tetap jadi backstop.
func ensureNoActiveDuplicate(tx *gorm.DB, row m.ClassSubjectAllocationModel, excludeID uuid.UUID) error {
	q := tx.Model(&m.ClassSubjectAllocationModel{}).
		Where(`
			class_subject_allocation_school_id = ?
			AND class_subject_allocation_class_id = ?
			AND class_subject_allocation_subject_id = ?
			AND class_subject_allocation_academic_year = ?
			AND class_subject_allocation_status = 'active'
		`,
			row.ClassSubjectAllocationSchoolID,
			row.ClassSubjectAllocationClassID,
			row.ClassSubjectAllocationSubjectID,
			row.ClassSubjectAllocationAcademicYear,
		)
	if excludeID != uuid.Nil {
		q = q.Where("class_subject_allocation_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Sudah ada alokasi ACTIVE untuk kombinasi kelas/mapel/tahun ini.")
	}
	return nil
}

/* =========================
   Create
   ========================= */

func (ctl *ClassSubjectAllocationController) Create(c *fiber.Ctx) error {
	// 🔐 Guard role: hanya admin
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak (hanya admin)")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateClassSubjectAllocationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Allocation.Create] BodyParser error: %v", err)
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
			"class_subject_allocation_consecutive_periods": {err.Error()},
		})
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if row.IsActive() {
			if er := ensureNoActiveDuplicate(tx, row, uuid.Nil); er != nil {
				return er
			}
		}
		return tx.Create(&row).Error
	}); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return writePGError(c, err)
	}

	return helper.JsonCreated(c, "Allocation created", d.FromModel(row))
}

/* =========================
   Patch (Partial) — pointer-based DTO
   ========================= */

func (ctl *ClassSubjectAllocationController) Patch(c *fiber.Ctx) error {
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

	var existing m.ClassSubjectAllocationModel
	if err := ctl.DB.
		Where("class_subject_allocation_id = ? AND class_subject_allocation_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "allocation not found")
		}
		return writePGError(c, err)
	}

	var req d.UpdateClassSubjectAllocationRequest
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
			"class_subject_allocation_consecutive_periods": {err.Error()},
		})
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if existing.IsActive() {
			if er := ensureNoActiveDuplicate(tx, existing, existing.ClassSubjectAllocationID); er != nil {
				return er
			}
		}
		return tx.Save(&existing).Error
	}); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Allocation updated", d.FromModel(existing))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *ClassSubjectAllocationController) Delete(c *fiber.Ctx) error {
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

	var existing m.ClassSubjectAllocationModel
	if err := ctl.DB.
		Where("class_subject_allocation_id = ? AND class_subject_allocation_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "allocation not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonDeleted(c, "Allocation deleted", d.FromModel(existing))
}

/* =========================
   List & Detail
   ========================= */

func (ctl *ClassSubjectAllocationController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var q d.ListClassSubjectAllocationQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(q); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	order, ok := p.SafeOrderClause(map[string]string{
		"created_at":    "class_subject_allocation_created_at",
		"updated_at":    "class_subject_allocation_updated_at",
		"academic_year": "class_subject_allocation_academic_year",
	}, "created_at")
	if !ok {
		return helper.JsonError(c, http.StatusBadRequest, "sort_by tidak dikenal")
	}

	tx := ctl.DB.WithContext(c.Context()).
		Model(&m.ClassSubjectAllocationModel{}).
		Where("class_subject_allocation_school_id = ?", schoolID)
	if q.ClassID != nil {
		tx = tx.Where("class_subject_allocation_class_id = ?", *q.ClassID)
	}
	if q.SubjectID != nil {
		tx = tx.Where("class_subject_allocation_subject_id = ?", *q.SubjectID)
	}
	if q.TeacherID != nil {
		tx = tx.Where("class_subject_allocation_teacher_id = ?", *q.TeacherID)
	}
	if q.AcademicYear != nil {
		tx = tx.Where("class_subject_allocation_academic_year = ?", strings.TrimSpace(*q.AcademicYear))
	}
	if q.Status != nil {
		tx = tx.Where("class_subject_allocation_status = ?", strings.ToLower(*q.Status))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.ClassSubjectAllocationModel
	if err := tx.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "ok", d.FromModels(rows), &pg)
}

func (ctl *ClassSubjectAllocationController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.ClassSubjectAllocationModel
	if err := ctl.DB.
		Where("class_subject_allocation_id = ? AND class_subject_allocation_school_id = ?", id, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "allocation not found")
		}
		return writePGError(c, err)
	}

	return helper.JsonOK(c, "ok", d.FromModel(row))
}
