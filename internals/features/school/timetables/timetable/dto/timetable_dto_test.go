// file: internals/features/school/timetables/timetable/dto/timetable_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/timetables/timetable/model"
)

func TestCreateTimetableRequestToModel(t *testing.T) {
	schoolID := uuid.New()
	classID := uuid.New()

	row := CreateTimetableRequest{
		TimetableClassID:      classID,
		TimetableAcademicYear: " 2026/2027 ",
	}.ToModel(schoolID)

	if row.TimetableGenerationType != model.TimetableGenerationManual {
		t.Errorf("generation type = %s, want manual", row.TimetableGenerationType)
	}
	if !row.TimetableIsActive {
		t.Errorf("is_active default harus true")
	}
	if row.TimetableAcademicYear != "2026/2027" {
		t.Errorf("academic year tidak di-trim: %q", row.TimetableAcademicYear)
	}
	if row.TimetableSchoolID != schoolID || row.TimetableClassID != classID {
		t.Errorf("scope tidak terbawa")
	}

	inactive := false
	row = CreateTimetableRequest{
		TimetableClassID:      classID,
		TimetableAcademicYear: "2026/2027",
		TimetableIsActive:     &inactive,
	}.ToModel(schoolID)
	if row.TimetableIsActive {
		t.Errorf("is_active eksplisit false diabaikan")
	}
}

func TestCreateGeneratedTimetableRequestToModel(t *testing.T) {
	row := CreateGeneratedTimetableRequest{
		TimetableClassID:      uuid.New(),
		TimetableAcademicYear: "2026/2027",
		GenerationMetadata: map[string]interface{}{
			"algorithm":          "greedy-v2",
			"execution_ms":       1374,
			"conflicts_resolved": 3,
		},
	}.ToModel(uuid.New())

	if row.TimetableGenerationType != model.TimetableGenerationAuto {
		t.Errorf("generation type = %s, want auto_generated", row.TimetableGenerationType)
	}
	if row.TimetableAutoGenerationMetadata["algorithm"] != "greedy-v2" {
		t.Errorf("metadata generator tidak terbawa: %v", row.TimetableAutoGenerationMetadata)
	}
	if !row.TimetableIsActive {
		t.Errorf("hasil generator langsung active")
	}
}
