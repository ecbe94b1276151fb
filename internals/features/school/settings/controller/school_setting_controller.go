// file: internals/features/school/settings/controller/school_setting_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/settings/dto"
	m "sekolahku_backend/internals/features/school/settings/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SchoolSettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SchoolSettingController {
	return &SchoolSettingController{DB: db, Validate: v}
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) && pgxErr.Code == "23505" {
		return helper.JsonError(c, http.StatusConflict, "Setting untuk school ini sudah ada.")
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == "23505" {
		return helper.JsonError(c, http.StatusConflict, "Setting untuk school ini sudah ada.")
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

/* =========================
   Get (read, default bila belum ada)
   ========================= */

func (ctl *SchoolSettingController) Get(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var row m.SchoolSettingModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("school_setting_school_id = ?", schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Belum pernah disimpan → kembalikan default (tanpa insert)
			return helper.JsonOK(c, "ok", d.FromModel(m.DefaultSetting(schoolID)))
		}
		return writePGError(c, err)
	}

	return helper.JsonOK(c, "ok", d.FromModel(row))
}

/* =========================
   Upsert (admin)
   ========================= */

func (ctl *SchoolSettingController) Upsert(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak (hanya admin)")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.UpsertSchoolSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	var row m.SchoolSettingModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("school_setting_school_id = ?", schoolID).First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = m.DefaultSetting(schoolID)
			req.Apply(&row)
			return tx.Create(&row).Error
		case err != nil:
			return err
		default:
			req.Apply(&row)
			return tx.Save(&row).Error
		}
	}); err != nil {
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "School setting saved", d.FromModel(row))
}
