// file: internals/features/school/timetables/timetable/dto/timetable_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/school/timetables/timetable/model"
)

/* =========================================================
   1) REQUEST — create manual
   ========================================================= */

type CreateTimetableRequest struct {
	TimetableClassID      uuid.UUID `json:"timetable_class_id"      validate:"required"`
	TimetableAcademicYear string    `json:"timetable_academic_year" validate:"required,min=4,max=20"`
	TimetableIsActive     *bool     `json:"timetable_is_active"     validate:"omitempty"`
}

func (r CreateTimetableRequest) ToModel(schoolID uuid.UUID) model.TimetableModel {
	isActive := true
	if r.TimetableIsActive != nil {
		isActive = *r.TimetableIsActive
	}
	return model.TimetableModel{
		TimetableSchoolID:       schoolID,
		TimetableClassID:        r.TimetableClassID,
		TimetableAcademicYear:   strings.TrimSpace(r.TimetableAcademicYear),
		TimetableGenerationType: model.TimetableGenerationManual,
		TimetableIsActive:       isActive,
	}
}

/* =========================================================
   2) REQUEST — ingest hasil auto-generator (satu tx)
   ========================================================= */

type GeneratedSlotInput struct {
	DayOfWeek    int       `json:"day_of_week"   validate:"min=0,max=6"`
	PeriodNumber int       `json:"period_number" validate:"required,min=1"`
	SubjectID    uuid.UUID `json:"subject_id"    validate:"required"`
	Room         *string   `json:"room"          validate:"omitempty,max=80"`
	Notes        *string   `json:"notes"         validate:"omitempty"`
}

type CreateGeneratedTimetableRequest struct {
	TimetableClassID      uuid.UUID              `json:"timetable_class_id"      validate:"required"`
	TimetableAcademicYear string                 `json:"timetable_academic_year" validate:"required,min=4,max=20"`
	GenerationMetadata    map[string]interface{} `json:"generation_metadata"     validate:"omitempty"`
	Slots                 []GeneratedSlotInput   `json:"slots"                   validate:"required,min=1,dive"`
}

func (r CreateGeneratedTimetableRequest) ToModel(schoolID uuid.UUID) model.TimetableModel {
	return model.TimetableModel{
		TimetableSchoolID:               schoolID,
		TimetableClassID:                r.TimetableClassID,
		TimetableAcademicYear:           strings.TrimSpace(r.TimetableAcademicYear),
		TimetableGenerationType:         model.TimetableGenerationAuto,
		TimetableAutoGenerationMetadata: datatypes.JSONMap(r.GenerationMetadata),
		TimetableIsActive:               true,
	}
}

/* =========================================================
   3) REQUEST — edit satu sel
   Guru TIDAK dikirim client; backend menurunkannya dari
   alokasi ACTIVE (subject → teacher).
   ========================================================= */

type UpsertTimetableSlotRequest struct {
	DayOfWeek    int       `json:"day_of_week"   validate:"min=0,max=6"`
	PeriodNumber int       `json:"period_number" validate:"required,min=1"`
	SubjectID    uuid.UUID `json:"subject_id"    validate:"required"`
	Room         *string   `json:"room"          validate:"omitempty,max=80"`
	Notes        *string   `json:"notes"         validate:"omitempty"`
}

/* =========================================================
   4) RESPONSE + MAPPERS
   ========================================================= */

type TimetableSlotResponse struct {
	TimetableSlotID           uuid.UUID `json:"timetable_slot_id"`
	TimetableSlotTimetableID  uuid.UUID `json:"timetable_slot_timetable_id"`
	TimetableSlotDayOfWeek    int       `json:"timetable_slot_day_of_week"`
	TimetableSlotPeriodNumber int       `json:"timetable_slot_period_number"`
	TimetableSlotSubjectID    uuid.UUID `json:"timetable_slot_subject_id"`
	TimetableSlotTeacherID    uuid.UUID `json:"timetable_slot_teacher_id"`
	TimetableSlotRoom         *string   `json:"timetable_slot_room,omitempty"`
	TimetableSlotNotes        *string   `json:"timetable_slot_notes,omitempty"`
	TimetableSlotCreatedAt    time.Time `json:"timetable_slot_created_at"`
	TimetableSlotUpdatedAt    time.Time `json:"timetable_slot_updated_at"`
}

func FromSlotModel(m model.TimetableSlotModel) TimetableSlotResponse {
	return TimetableSlotResponse{
		TimetableSlotID:           m.TimetableSlotID,
		TimetableSlotTimetableID:  m.TimetableSlotTimetableID,
		TimetableSlotDayOfWeek:    m.TimetableSlotDayOfWeek,
		TimetableSlotPeriodNumber: m.TimetableSlotPeriodNumber,
		TimetableSlotSubjectID:    m.TimetableSlotSubjectID,
		TimetableSlotTeacherID:    m.TimetableSlotTeacherID,
		TimetableSlotRoom:         m.TimetableSlotRoom,
		TimetableSlotNotes:        m.TimetableSlotNotes,
		TimetableSlotCreatedAt:    m.TimetableSlotCreatedAt,
		TimetableSlotUpdatedAt:    m.TimetableSlotUpdatedAt,
	}
}

func FromSlotModels(rows []model.TimetableSlotModel) []TimetableSlotResponse {
	out := make([]TimetableSlotResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromSlotModel(r))
	}
	return out
}

type TimetableResponse struct {
	TimetableID                     uuid.UUID               `json:"timetable_id"`
	TimetableSchoolID               uuid.UUID               `json:"timetable_school_id"`
	TimetableClassID                uuid.UUID               `json:"timetable_class_id"`
	TimetableAcademicYear           string                  `json:"timetable_academic_year"`
	TimetableGenerationType         string                  `json:"timetable_generation_type"`
	TimetableAutoGenerationMetadata map[string]interface{}  `json:"timetable_auto_generation_metadata,omitempty"`
	TimetableIsActive               bool                    `json:"timetable_is_active"`
	TimetableCreatedAt              time.Time               `json:"timetable_created_at"`
	TimetableUpdatedAt              time.Time               `json:"timetable_updated_at"`
	Slots                           []TimetableSlotResponse `json:"slots,omitempty"`
}

func FromModel(m model.TimetableModel) TimetableResponse {
	return TimetableResponse{
		TimetableID:                     m.TimetableID,
		TimetableSchoolID:               m.TimetableSchoolID,
		TimetableClassID:                m.TimetableClassID,
		TimetableAcademicYear:           m.TimetableAcademicYear,
		TimetableGenerationType:         string(m.TimetableGenerationType),
		TimetableAutoGenerationMetadata: map[string]interface{}(m.TimetableAutoGenerationMetadata),
		TimetableIsActive:               m.TimetableIsActive,
		TimetableCreatedAt:              m.TimetableCreatedAt,
		TimetableUpdatedAt:              m.TimetableUpdatedAt,
		Slots:                           FromSlotModels(m.Slots),
	}
}
