// file: internals/features/school/timetables/timetable/controller/timetable_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	allocModel "sekolahku_backend/internals/features/school/academics/allocations/model"
	perModel "sekolahku_backend/internals/features/school/academics/periods/model"
	d "sekolahku_backend/internals/features/school/timetables/timetable/dto"
	m "sekolahku_backend/internals/features/school/timetables/timetable/model"
	"sekolahku_backend/internals/features/school/timetables/timetable/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TimetableController {
	return &TimetableController{DB: db, Validate: v}
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

func mapPGError(err error) (int, string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case "23505":
			return http.StatusConflict, "Sel timetable (hari, period) sudah terisi."
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
			return http.StatusConflict, "Sel timetable (hari, period) sudah terisi."
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

// loadActiveAllocations mengambil semua alokasi ACTIVE milik (class, year).
func loadActiveAllocations(tx *gorm.DB, schoolID, classID uuid.UUID, year string) ([]allocModel.ClassSubjectAllocationModel, error) {
	var rows []allocModel.ClassSubjectAllocationModel
	err := tx.
		Where(`
			class_subject_allocation_school_id = ?
			AND class_subject_allocation_class_id = ?
			AND class_subject_allocation_academic_year = ?
			AND class_subject_allocation_status = 'active'
		`, schoolID, classID, year).
		Find(&rows).Error
	return rows, err
}

// loadTeachingPeriods mengambil period teaching aktif, keyed by number.
func loadTeachingPeriods(tx *gorm.DB, schoolID uuid.UUID) (map[int]perModel.PeriodModel, error) {
	var rows []perModel.PeriodModel
	if err := tx.
		Where("period_school_id = ? AND period_is_active = TRUE", schoolID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[int]perModel.PeriodModel, len(rows))
	for _, p := range rows {
		if p.PeriodType.IsTeaching() {
			out[p.PeriodNumber] = p
		}
	}
	return out, nil
}

// Guard invariant: maksimal satu timetable active per (class, year).
func ensureNoActiveTimetable(tx *gorm.DB, row m.TimetableModel, excludeID uuid.UUID) error {
	q := tx.Model(&m.TimetableModel{}).
		Where(`
			timetable_school_id = ?
			AND timetable_class_id = ?
			AND timetable_academic_year = ?
			AND timetable_is_active = TRUE
		`, row.TimetableSchoolID, row.TimetableClassID, row.TimetableAcademicYear)
	if excludeID != uuid.Nil {
		q = q.Where("timetable_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "Sudah ada timetable ACTIVE untuk kelas & tahun ajaran ini.")
	}
	return nil
}

/* =========================
   Create (manual, tanpa slot)
   ========================= */

func (ctl *TimetableController) Create(c *fiber.Ctx) error {
	// 🔐 Guard role: hanya admin
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak (hanya admin)")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Timetable.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	row := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if row.TimetableIsActive {
			if er := ensureNoActiveTimetable(tx, row, uuid.Nil); er != nil {
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

	return helper.JsonCreated(c, "Timetable created", d.FromModel(row))
}

/* =========================
   CreateGenerated — ingest hasil auto-generator
   Satu transaksi: header + semua slot. Setiap slot direvalidasi
   terhadap period teaching & alokasi ACTIVE (guru diturunkan di sini,
   output generator tidak dipercaya membawa teacher_id).
   ========================= */

func (ctl *TimetableController) CreateGenerated(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak (hanya admin)")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.CreateGeneratedTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	header := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := ensureNoActiveTimetable(tx, header, uuid.Nil); er != nil {
			return er
		}

		teaching, er := loadTeachingPeriods(tx, schoolID)
		if er != nil {
			return er
		}
		allocs, er := loadActiveAllocations(tx, schoolID, header.TimetableClassID, header.TimetableAcademicYear)
		if er != nil {
			return er
		}

		if er := tx.Create(&header).Error; er != nil {
			return er
		}

		seen := map[[2]int]bool{}
		for i, in := range req.Slots {
			key := [2]int{in.DayOfWeek, in.PeriodNumber}
			if seen[key] {
				return fiber.NewError(fiber.StatusUnprocessableEntity,
					fmt.Sprintf("slot #%d: sel (day %d, period %d) ganda di payload", i, in.DayOfWeek, in.PeriodNumber))
			}
			seen[key] = true

			if _, ok := teaching[in.PeriodNumber]; !ok {
				return fiber.NewError(fiber.StatusUnprocessableEntity,
					fmt.Sprintf("slot #%d: period %d bukan period teaching aktif", i, in.PeriodNumber))
			}
			alloc, ok := service.ResolveAllocation(allocs, in.SubjectID)
			if !ok {
				return fiber.NewError(fiber.StatusUnprocessableEntity,
					fmt.Sprintf("slot #%d: tidak ada alokasi ACTIVE untuk subject %s", i, in.SubjectID))
			}

			slot := m.TimetableSlotModel{
				TimetableSlotSchoolID:     schoolID,
				TimetableSlotTimetableID:  header.TimetableID,
				TimetableSlotDayOfWeek:    in.DayOfWeek,
				TimetableSlotPeriodNumber: in.PeriodNumber,
				TimetableSlotSubjectID:    in.SubjectID,
				TimetableSlotTeacherID:    alloc.ClassSubjectAllocationTeacherID,
				TimetableSlotRoom:         in.Room,
				TimetableSlotNotes:        in.Notes,
			}
			if er := tx.Create(&slot).Error; er != nil {
				return er
			}
			header.Slots = append(header.Slots, slot)
		}
		return nil
	}); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return writePGError(c, err)
	}

	return helper.JsonCreated(c, "Generated timetable ingested", d.FromModel(header))
}

/* =========================
   GetByClass — timetable aktif (+slot) untuk satu kelas
   ========================= */

func (ctl *TimetableController) GetByClass(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	classID, err := parseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	row, err := ctl.findActiveTimetable(c, schoolID, classID, strings.TrimSpace(c.Query("academic_year")))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Tidak ada timetable ACTIVE untuk kelas & tahun ajaran ini.")
		}
		return writePGError(c, err)
	}

	return helper.JsonOK(c, "ok", d.FromModel(*row))
}

func (ctl *TimetableController) findActiveTimetable(c *fiber.Ctx, schoolID, classID uuid.UUID, year string) (*m.TimetableModel, error) {
	q := ctl.DB.WithContext(c.Context()).
		Preload("Slots").
		Where(`
			timetable_school_id = ?
			AND timetable_class_id = ?
			AND timetable_is_active = TRUE
		`, schoolID, classID)
	if year != "" {
		q = q.Where("timetable_academic_year = ?", year)
	}

	var row m.TimetableModel
	if err := q.Order("timetable_created_at DESC").First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

/* =========================
   UpsertSlot — edit satu sel grid
   Guru diturunkan dari alokasi ACTIVE; tanpa alokasi → 422
   dan tidak ada slot yang ditulis.
   ========================= */

func (ctl *TimetableController) UpsertSlot(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak (hanya admin)")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	timetableID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.UpsertTimetableSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	var slot m.TimetableSlotModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var tt m.TimetableModel
		if er := tx.
			Where("timetable_id = ? AND timetable_school_id = ?", timetableID, schoolID).
			First(&tt).Error; er != nil {
			if errors.Is(er, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "timetable not found")
			}
			return er
		}

		teaching, er := loadTeachingPeriods(tx, schoolID)
		if er != nil {
			return er
		}
		if _, ok := teaching[req.PeriodNumber]; !ok {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				fmt.Sprintf("period %d bukan period teaching aktif", req.PeriodNumber))
		}

		allocs, er := loadActiveAllocations(tx, schoolID, tt.TimetableClassID, tt.TimetableAcademicYear)
		if er != nil {
			return er
		}
		alloc, ok := service.ResolveAllocation(allocs, req.SubjectID)
		if !ok {
			return fiber.NewError(fiber.StatusUnprocessableEntity,
				"Tidak ada alokasi ACTIVE untuk mapel ini di kelas & tahun ajaran tsb.")
		}

		// Upsert by sel (timetable, day, period)
		er = tx.
			Where(`
				timetable_slot_timetable_id = ?
				AND timetable_slot_day_of_week = ?
				AND timetable_slot_period_number = ?
			`, tt.TimetableID, req.DayOfWeek, req.PeriodNumber).
			First(&slot).Error
		switch {
		case errors.Is(er, gorm.ErrRecordNotFound):
			slot = m.TimetableSlotModel{
				TimetableSlotSchoolID:     schoolID,
				TimetableSlotTimetableID:  tt.TimetableID,
				TimetableSlotDayOfWeek:    req.DayOfWeek,
				TimetableSlotPeriodNumber: req.PeriodNumber,
				TimetableSlotSubjectID:    req.SubjectID,
				TimetableSlotTeacherID:    alloc.ClassSubjectAllocationTeacherID,
				TimetableSlotRoom:         req.Room,
				TimetableSlotNotes:        req.Notes,
			}
			return tx.Create(&slot).Error
		case er != nil:
			return er
		default:
			slot.TimetableSlotSubjectID = req.SubjectID
			slot.TimetableSlotTeacherID = alloc.ClassSubjectAllocationTeacherID
			slot.TimetableSlotRoom = req.Room
			slot.TimetableSlotNotes = req.Notes
			return tx.Save(&slot).Error
		}
	}); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return writePGError(c, err)
	}

	return helper.JsonUpdated(c, "Slot saved", d.FromSlotModel(slot))
}

/* =========================
   DeleteSlot — kosongkan satu sel
   ========================= */

func (ctl *TimetableController) DeleteSlot(c *fiber.Ctx) error {
	if !helperAuth.IsAdmin(c) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak (hanya admin)")
	}

	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	timetableID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	day, err := strconv.Atoi(c.Query("day_of_week", "-1"))
	if err != nil || !m.ValidDayOfWeek(day) {
		return helper.JsonError(c, http.StatusBadRequest, "day_of_week harus 0..6")
	}
	periodNumber, err := strconv.Atoi(c.Query("period_number", "0"))
	if err != nil || periodNumber < 1 {
		return helper.JsonError(c, http.StatusBadRequest, "period_number tidak valid")
	}

	var slot m.TimetableSlotModel
	if err := ctl.DB.WithContext(c.Context()).
		Where(`
			timetable_slot_timetable_id = ?
			AND timetable_slot_school_id = ?
			AND timetable_slot_day_of_week = ?
			AND timetable_slot_period_number = ?
		`, timetableID, schoolID, day, periodNumber).
		First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "slot not found")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.Delete(&slot).Error; err != nil {
		return writePGError(c, err)
	}

	return helper.JsonDeleted(c, "Slot deleted", d.FromSlotModel(slot))
}
