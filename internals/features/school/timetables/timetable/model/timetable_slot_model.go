// file: internals/features/school/timetables/timetable/model/timetable_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: timetable_slots
   Satu sel grid = (day_of_week, period_number) dalam sebuah
   timetable. Sparse: sel kosong tidak punya baris.
   day_of_week: 0=Minggu .. 6=Sabtu.
   ========================================================= */

type TimetableSlotModel struct {
	// PK
	TimetableSlotID uuid.UUID `json:"timetable_slot_id" gorm:"type:uuid;primaryKey;column:timetable_slot_id;default:gen_random_uuid()"`

	// Tenant (denormalized untuk query lintas timetable per school)
	TimetableSlotSchoolID uuid.UUID `json:"timetable_slot_school_id" gorm:"type:uuid;not null;column:timetable_slot_school_id;index"`

	// Parent
	TimetableSlotTimetableID uuid.UUID `json:"timetable_slot_timetable_id" gorm:"type:uuid;not null;column:timetable_slot_timetable_id;uniqueIndex:uq_timetable_slots_cell"`

	// Kunci sel (stabil terhadap perubahan daftar period)
	TimetableSlotDayOfWeek    int `json:"timetable_slot_day_of_week"    gorm:"not null;column:timetable_slot_day_of_week;uniqueIndex:uq_timetable_slots_cell;check:timetable_slot_day_of_week BETWEEN 0 AND 6"`
	TimetableSlotPeriodNumber int `json:"timetable_slot_period_number" gorm:"not null;column:timetable_slot_period_number;uniqueIndex:uq_timetable_slots_cell"`

	// Isi sel
	TimetableSlotSubjectID uuid.UUID `json:"timetable_slot_subject_id" gorm:"type:uuid;not null;column:timetable_slot_subject_id"`
	TimetableSlotTeacherID uuid.UUID `json:"timetable_slot_teacher_id" gorm:"type:uuid;not null;column:timetable_slot_teacher_id;index"`
	TimetableSlotRoom      *string   `json:"timetable_slot_room,omitempty"  gorm:"type:varchar(80);column:timetable_slot_room"`
	TimetableSlotNotes     *string   `json:"timetable_slot_notes,omitempty" gorm:"type:text;column:timetable_slot_notes"`

	// Audit
	TimetableSlotCreatedAt time.Time      `json:"timetable_slot_created_at" gorm:"column:timetable_slot_created_at;type:timestamptz;not null;autoCreateTime"`
	TimetableSlotUpdatedAt time.Time      `json:"timetable_slot_updated_at" gorm:"column:timetable_slot_updated_at;type:timestamptz;not null;autoUpdateTime"`
	TimetableSlotDeletedAt gorm.DeletedAt `json:"timetable_slot_deleted_at,omitempty" gorm:"column:timetable_slot_deleted_at;index"`
}

func (TimetableSlotModel) TableName() string { return "timetable_slots" }

// ValidDayOfWeek: 0=Minggu .. 6=Sabtu.
func ValidDayOfWeek(d int) bool { return d >= 0 && d <= 6 }
