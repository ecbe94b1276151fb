// file: internals/features/school/timetables/timetable/service/grid_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	allocModel "sekolahku_backend/internals/features/school/academics/allocations/model"
	perModel "sekolahku_backend/internals/features/school/academics/periods/model"
	ttModel "sekolahku_backend/internals/features/school/timetables/timetable/model"
)

func tod(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("15:04", s)
	if err != nil {
		t.Fatalf("bad time literal %q: %v", s, err)
	}
	return v
}

func period(t *testing.T, number int, ptype perModel.PeriodType, start, end string) perModel.PeriodModel {
	return perModel.PeriodModel{
		PeriodID:        uuid.New(),
		PeriodNumber:    number,
		PeriodName:      "Jam",
		PeriodStartTime: tod(t, start),
		PeriodEndTime:   tod(t, end),
		PeriodType:      ptype,
		PeriodIsActive:  true,
	}
}

func slot(timetableID uuid.UUID, day, periodNumber int, subjectID, teacherID uuid.UUID) ttModel.TimetableSlotModel {
	return ttModel.TimetableSlotModel{
		TimetableSlotID:           uuid.New(),
		TimetableSlotTimetableID:  timetableID,
		TimetableSlotDayOfWeek:    day,
		TimetableSlotPeriodNumber: periodNumber,
		TimetableSlotSubjectID:    subjectID,
		TimetableSlotTeacherID:    teacherID,
	}
}

func TestBuildWeekGridExcludesOffDaysAndNonTeaching(t *testing.T) {
	periods := []perModel.PeriodModel{
		period(t, 2, perModel.PeriodTypeBreak, "08:45", "09:00"),
		period(t, 1, perModel.PeriodTypeTeaching, "08:00", "08:45"),
		period(t, 3, perModel.PeriodTypeTeaching, "09:00", "09:45"),
	}
	ttID := uuid.New()
	subj, teacher := uuid.New(), uuid.New()
	slots := []ttModel.TimetableSlotModel{
		slot(ttID, 1, 1, subj, teacher), // Senin jam 1
		slot(ttID, 6, 1, subj, teacher), // Sabtu (libur) → dibuang
	}

	grid := BuildWeekGrid(periods, slots, []int{0, 6}) // Minggu + Sabtu libur

	if len(grid.Days) != 5 {
		t.Fatalf("days = %d, want 5 (Senin..Jumat)", len(grid.Days))
	}
	for _, d := range grid.Days {
		if d.DayOfWeek == 0 || d.DayOfWeek == 6 {
			t.Fatalf("off-day %d masih punya kolom", d.DayOfWeek)
		}
		if len(d.Cells) != 2 {
			t.Fatalf("day %d cells = %d, want 2 (hanya teaching)", d.DayOfWeek, len(d.Cells))
		}
		for _, cell := range d.Cells {
			if cell.PeriodNumber == 2 {
				t.Fatalf("period break ikut dirender")
			}
		}
	}

	// Urutan baris naik by period_number meski input acak
	if grid.Days[0].Cells[0].PeriodNumber != 1 || grid.Days[0].Cells[1].PeriodNumber != 3 {
		t.Errorf("cell order = %d,%d want 1,3",
			grid.Days[0].Cells[0].PeriodNumber, grid.Days[0].Cells[1].PeriodNumber)
	}

	if c := grid.CellAt(1, 1); c == nil || c.Entry == nil {
		t.Fatalf("slot Senin jam 1 tidak terpasang")
	} else if c.Entry.Status != EntryStatusScheduled {
		t.Errorf("status = %s, want scheduled", c.Entry.Status)
	}
	if c := grid.CellAt(6, 1); c != nil {
		t.Errorf("CellAt hari libur harus nil")
	}
	if c := grid.CellAt(2, 1); c == nil || c.Entry != nil {
		t.Errorf("sel kosong harus ada tanpa entry")
	}
}

func TestBuildWeekGridIgnoresSlotOnNonTeachingPeriod(t *testing.T) {
	periods := []perModel.PeriodModel{
		period(t, 1, perModel.PeriodTypeTeaching, "08:00", "08:45"),
		period(t, 2, perModel.PeriodTypeLunch, "12:00", "12:30"),
	}
	ttID := uuid.New()
	slots := []ttModel.TimetableSlotModel{
		slot(ttID, 1, 2, uuid.New(), uuid.New()), // menunjuk period lunch
	}

	grid := BuildWeekGrid(periods, slots, []int{0})
	if c := grid.CellAt(1, 2); c != nil {
		t.Errorf("period lunch tidak boleh jadi baris grid")
	}
}

func TestOverlayExceptions(t *testing.T) {
	periods := []perModel.PeriodModel{
		period(t, 1, perModel.PeriodTypeTeaching, "08:00", "08:45"),
		period(t, 2, perModel.PeriodTypeTeaching, "08:45", "09:30"),
	}
	ttID := uuid.New()
	subj, teacher := uuid.New(), uuid.New()
	slots := []ttModel.TimetableSlotModel{
		slot(ttID, 1, 1, subj, teacher),
		slot(ttID, 1, 2, subj, teacher),
		slot(ttID, 2, 1, subj, teacher),
	}

	// 2026-08-31 = Senin (day 1)
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	replacement := uuid.New()

	grid := BuildWeekGrid(periods, slots, []int{0})
	grid = OverlayExceptions(grid, monday, []ExceptionOverlay{
		{
			ExceptionID:          uuid.New(),
			DayOfWeek:            1,
			PeriodNumber:         1,
			Type:                 ExceptionSubstitution,
			ReplacementTeacherID: &replacement,
			Reason:               "guru sakit",
		},
		{
			ExceptionID:  uuid.New(),
			DayOfWeek:    1,
			PeriodNumber: 2,
			Type:         ExceptionCancellation,
			Reason:       "rapat dinas",
		},
		{
			// Selasa — bukan hari target, harus diabaikan
			ExceptionID:  uuid.New(),
			DayOfWeek:    2,
			PeriodNumber: 1,
			Type:         ExceptionCancellation,
			Reason:       "salah hari",
		},
	})

	sub := grid.CellAt(1, 1)
	if sub == nil || sub.Entry == nil {
		t.Fatalf("sel substitusi hilang")
	}
	if sub.Entry.Status != EntryStatusSubstituted {
		t.Errorf("status = %s, want substituted", sub.Entry.Status)
	}
	if sub.Entry.TeacherID != replacement {
		t.Errorf("teacher tidak diganti replacement")
	}
	if sub.Entry.SubjectID != subj {
		t.Errorf("subject tidak boleh berubah pada substitution")
	}
	if sub.Entry.ExceptionReason == nil || *sub.Entry.ExceptionReason != "guru sakit" {
		t.Errorf("reason tidak terbawa")
	}

	can := grid.CellAt(1, 2)
	if can == nil || can.Entry == nil || can.Entry.Status != EntryStatusCancelled {
		t.Fatalf("cancellation tidak diterapkan")
	}

	// Selasa tidak tersentuh
	tue := grid.CellAt(2, 1)
	if tue == nil || tue.Entry == nil || tue.Entry.Status != EntryStatusScheduled {
		t.Errorf("exception hari lain bocor ke grid")
	}
}

func TestOverlayReschedule(t *testing.T) {
	periods := []perModel.PeriodModel{
		period(t, 1, perModel.PeriodTypeTeaching, "08:00", "08:45"),
	}
	ttID := uuid.New()
	subj, teacher := uuid.New(), uuid.New()
	grid := BuildWeekGrid(periods, []ttModel.TimetableSlotModel{
		slot(ttID, 1, 1, subj, teacher),
	}, []int{0})

	newSubj := uuid.New()
	room := "Lab IPA"
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	grid = OverlayExceptions(grid, monday, []ExceptionOverlay{{
		ExceptionID:          uuid.New(),
		DayOfWeek:            1,
		PeriodNumber:         1,
		Type:                 ExceptionReschedule,
		ReplacementSubjectID: &newSubj,
		ReplacementRoom:      &room,
		Reason:               "tukar jam",
	}})

	c := grid.CellAt(1, 1)
	if c == nil || c.Entry == nil || c.Entry.Status != EntryStatusRescheduled {
		t.Fatalf("reschedule tidak diterapkan")
	}
	if c.Entry.SubjectID != newSubj {
		t.Errorf("subject tidak diganti")
	}
	if c.Entry.TeacherID != teacher {
		t.Errorf("teacher harus tetap saat replacement teacher kosong")
	}
	if c.Entry.Room == nil || *c.Entry.Room != room {
		t.Errorf("room tidak diganti")
	}
}

func TestResolveAllocation(t *testing.T) {
	classID := uuid.New()
	math, science := uuid.New(), uuid.New()
	mathTeacher := uuid.New()

	allocs := []allocModel.ClassSubjectAllocationModel{
		{
			ClassSubjectAllocationID:        uuid.New(),
			ClassSubjectAllocationClassID:   classID,
			ClassSubjectAllocationSubjectID: math,
			ClassSubjectAllocationTeacherID: mathTeacher,
			ClassSubjectAllocationStatus:    allocModel.AllocationStatusActive,
		},
		{
			// science hanya punya alokasi INACTIVE
			ClassSubjectAllocationID:        uuid.New(),
			ClassSubjectAllocationClassID:   classID,
			ClassSubjectAllocationSubjectID: science,
			ClassSubjectAllocationTeacherID: uuid.New(),
			ClassSubjectAllocationStatus:    allocModel.AllocationStatusInactive,
		},
	}

	got, ok := ResolveAllocation(allocs, math)
	if !ok {
		t.Fatalf("alokasi math ACTIVE tidak ketemu")
	}
	if got.ClassSubjectAllocationTeacherID != mathTeacher {
		t.Errorf("teacher = %s, want %s", got.ClassSubjectAllocationTeacherID, mathTeacher)
	}

	if _, ok := ResolveAllocation(allocs, science); ok {
		t.Errorf("alokasi inactive tidak boleh dipakai")
	}
	if _, ok := ResolveAllocation(allocs, uuid.New()); ok {
		t.Errorf("subject tanpa alokasi harus gagal resolve")
	}
}
