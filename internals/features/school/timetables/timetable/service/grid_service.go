// file: internals/features/school/timetables/timetable/service/grid_service.go
//
// Fungsi murni untuk resolusi grid mingguan: gabungkan periods + slots +
// weekly off-days jadi struktur siap render, lalu overlay exception yang
// sudah approved untuk satu tanggal. Tidak menyentuh DB sama sekali
// supaya gampang dites.
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	allocModel "sekolahku_backend/internals/features/school/academics/allocations/model"
	perModel "sekolahku_backend/internals/features/school/academics/periods/model"
	ttModel "sekolahku_backend/internals/features/school/timetables/timetable/model"
)

/* =========================================================
   Output types
   ========================================================= */

// EntryStatus menandai asal isi sel setelah overlay.
type EntryStatus string

const (
	EntryStatusScheduled   EntryStatus = "scheduled"
	EntryStatusSubstituted EntryStatus = "substituted"
	EntryStatusCancelled   EntryStatus = "cancelled"
	EntryStatusRescheduled EntryStatus = "rescheduled"
)

// GridEntry adalah isi satu sel (nil bila kosong).
type GridEntry struct {
	SlotID    uuid.UUID   `json:"slot_id"`
	SubjectID uuid.UUID   `json:"subject_id"`
	TeacherID uuid.UUID   `json:"teacher_id"`
	Room      *string     `json:"room,omitempty"`
	Status    EntryStatus `json:"status"`

	// Terisi hanya saat Status != scheduled
	ExceptionID     *uuid.UUID `json:"exception_id,omitempty"`
	ExceptionReason *string    `json:"exception_reason,omitempty"`
}

// GridCell = satu baris period (selalu teaching) dalam satu kolom hari.
type GridCell struct {
	PeriodNumber int    `json:"period_number"`
	PeriodName   string `json:"period_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`

	Entry *GridEntry `json:"entry,omitempty"`
}

// GridDay = satu kolom hari (0=Minggu .. 6=Sabtu).
type GridDay struct {
	DayOfWeek int        `json:"day_of_week"`
	Cells     []GridCell `json:"cells"`
}

// WeekGrid berisi hanya hari sekolah: weekly off-days tidak punya kolom,
// period non-teaching tidak punya baris.
type WeekGrid struct {
	Days []GridDay `json:"days"`
}

// CellAt mengembalikan pointer sel (day, periodNumber); nil bila hari
// libur atau period tidak dikenal.
func (g *WeekGrid) CellAt(dayOfWeek, periodNumber int) *GridCell {
	for di := range g.Days {
		if g.Days[di].DayOfWeek != dayOfWeek {
			continue
		}
		cells := g.Days[di].Cells
		for i := range cells {
			if cells[i].PeriodNumber == periodNumber {
				return &cells[i]
			}
		}
		return nil
	}
	return nil
}

/* =========================================================
   BuildWeekGrid
   ========================================================= */

// BuildWeekGrid menyusun grid steady-state dari period aktif + slot.
// Aturan:
//   - kolom = hari 0..6 MINUS weekly off-days;
//   - baris = period teaching aktif saja, urut period_number;
//   - slot yang menunjuk hari libur / period non-teaching diabaikan.
func BuildWeekGrid(periods []perModel.PeriodModel, slots []ttModel.TimetableSlotModel, offDays []int) WeekGrid {
	teaching := make([]perModel.PeriodModel, 0, len(periods))
	for _, p := range periods {
		if p.PeriodIsActive && p.PeriodType.IsTeaching() {
			teaching = append(teaching, p)
		}
	}
	sort.Slice(teaching, func(i, j int) bool { return teaching[i].PeriodNumber < teaching[j].PeriodNumber })

	validPeriod := make(map[int]bool, len(teaching))
	for _, p := range teaching {
		validPeriod[p.PeriodNumber] = true
	}

	off := make(map[int]bool, len(offDays))
	for _, d := range offDays {
		off[d] = true
	}

	// index slot per (day, period); satu sel satu slot
	type cellKey struct{ day, period int }
	byCell := make(map[cellKey]ttModel.TimetableSlotModel, len(slots))
	for _, s := range slots {
		if !ttModel.ValidDayOfWeek(s.TimetableSlotDayOfWeek) ||
			off[s.TimetableSlotDayOfWeek] ||
			!validPeriod[s.TimetableSlotPeriodNumber] {
			continue
		}
		byCell[cellKey{s.TimetableSlotDayOfWeek, s.TimetableSlotPeriodNumber}] = s
	}

	grid := WeekGrid{Days: make([]GridDay, 0, 7)}
	for day := 0; day < 7; day++ {
		if off[day] {
			continue
		}
		col := GridDay{DayOfWeek: day, Cells: make([]GridCell, 0, len(teaching))}
		for _, p := range teaching {
			cell := GridCell{
				PeriodNumber: p.PeriodNumber,
				PeriodName:   p.PeriodName,
				StartTime:    p.PeriodStartTime.Format("15:04"),
				EndTime:      p.PeriodEndTime.Format("15:04"),
			}
			if s, ok := byCell[cellKey{day, p.PeriodNumber}]; ok {
				cell.Entry = &GridEntry{
					SlotID:    s.TimetableSlotID,
					SubjectID: s.TimetableSlotSubjectID,
					TeacherID: s.TimetableSlotTeacherID,
					Room:      s.TimetableSlotRoom,
					Status:    EntryStatusScheduled,
				}
			}
			col.Cells = append(col.Cells, cell)
		}
		grid.Days = append(grid.Days, col)
	}
	return grid
}

/* =========================================================
   OverlayExceptions
   ========================================================= */

// ExceptionType mirror dari exception ledger (input netral supaya
// package ini tetap bebas dependensi fitur lain).
type ExceptionType string

const (
	ExceptionSubstitution ExceptionType = "substitution"
	ExceptionCancellation ExceptionType = "cancellation"
	ExceptionReschedule   ExceptionType = "reschedule"
)

// ExceptionOverlay adalah proyeksi exception APPROVED yang relevan
// untuk satu tanggal.
type ExceptionOverlay struct {
	ExceptionID          uuid.UUID
	DayOfWeek            int
	PeriodNumber         int
	Type                 ExceptionType
	ReplacementTeacherID *uuid.UUID
	ReplacementSubjectID *uuid.UUID
	ReplacementRoom      *string
	Reason               string
}

// OverlayExceptions menerapkan exception APPROVED milik `date` ke grid.
// Hanya kolom hari yang sama dengan date.Weekday() yang tersentuh;
// exception pada hari lain diabaikan. Grid dimodifikasi in place dan
// dikembalikan untuk chaining.
//
//   - cancellation  → entry ditandai cancelled (tetap dirender, dicoret di UI)
//   - substitution  → teacher diganti replacement_teacher_id
//   - reschedule    → subject/teacher/room diganti sesuai replacement
//
// Exception pada sel kosong diabaikan (slot asal sudah dihapus setelah
// exception dibuat; snapshot tetap tersimpan di ledger).
func OverlayExceptions(grid WeekGrid, date time.Time, exceptions []ExceptionOverlay) WeekGrid {
	targetDay := int(date.Weekday()) // 0=Minggu, cocok dengan konvensi grid

	for _, ex := range exceptions {
		if ex.DayOfWeek != targetDay {
			continue
		}
		cell := grid.CellAt(ex.DayOfWeek, ex.PeriodNumber)
		if cell == nil || cell.Entry == nil {
			continue
		}

		exID := ex.ExceptionID
		reason := ex.Reason
		cell.Entry.ExceptionID = &exID
		cell.Entry.ExceptionReason = &reason

		switch ex.Type {
		case ExceptionCancellation:
			cell.Entry.Status = EntryStatusCancelled
		case ExceptionSubstitution:
			if ex.ReplacementTeacherID != nil {
				cell.Entry.TeacherID = *ex.ReplacementTeacherID
			}
			cell.Entry.Status = EntryStatusSubstituted
		case ExceptionReschedule:
			if ex.ReplacementSubjectID != nil {
				cell.Entry.SubjectID = *ex.ReplacementSubjectID
			}
			if ex.ReplacementTeacherID != nil {
				cell.Entry.TeacherID = *ex.ReplacementTeacherID
			}
			if ex.ReplacementRoom != nil {
				cell.Entry.Room = ex.ReplacementRoom
			}
			cell.Entry.Status = EntryStatusRescheduled
		}
	}
	return grid
}

/* =========================================================
   ResolveAllocation
   ========================================================= */

// ResolveAllocation mencari alokasi ACTIVE untuk subject tertentu.
// Guru pada slot SELALU diturunkan dari sini, bukan dipilih bebas.
func ResolveAllocation(allocs []allocModel.ClassSubjectAllocationModel, subjectID uuid.UUID) (allocModel.ClassSubjectAllocationModel, bool) {
	for _, a := range allocs {
		if a.ClassSubjectAllocationSubjectID == subjectID && a.IsActive() {
			return a, true
		}
	}
	return allocModel.ClassSubjectAllocationModel{}, false
}
