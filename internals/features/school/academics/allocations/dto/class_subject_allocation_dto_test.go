// file: internals/features/school/academics/allocations/dto/class_subject_allocation_dto_test.go
package dto

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/academics/allocations/model"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func validCreate() CreateClassSubjectAllocationRequest {
	return CreateClassSubjectAllocationRequest{
		ClassSubjectAllocationClassID:      uuid.New(),
		ClassSubjectAllocationSubjectID:    uuid.New(),
		ClassSubjectAllocationTeacherID:    uuid.New(),
		ClassSubjectAllocationAcademicYear: " 2026/2027 ",
	}
}

func TestCreateAllocationDefaults(t *testing.T) {
	got, err := validCreate().ToModel(uuid.New())
	if err != nil {
		t.Fatalf("ToModel() error: %v", err)
	}
	if got.ClassSubjectAllocationPeriodsPerWeek != 1 {
		t.Errorf("periods_per_week default = %d, want 1", got.ClassSubjectAllocationPeriodsPerWeek)
	}
	if got.ClassSubjectAllocationConsecutivePeriods != 1 {
		t.Errorf("consecutive default = %d, want 1", got.ClassSubjectAllocationConsecutivePeriods)
	}
	if got.ClassSubjectAllocationStatus != model.AllocationStatusActive {
		t.Errorf("status default = %s, want active", got.ClassSubjectAllocationStatus)
	}
	if got.ClassSubjectAllocationAcademicYear != "2026/2027" {
		t.Errorf("academic year not trimmed: %q", got.ClassSubjectAllocationAcademicYear)
	}
}

func TestCreateAllocationConsecutiveExceedsQuota(t *testing.T) {
	req := validCreate()
	req.ClassSubjectAllocationPeriodsPerWeek = intPtr(2)
	req.ClassSubjectAllocationConsecutivePeriods = intPtr(3)
	req.ClassSubjectAllocationIsLabSubject = boolPtr(true)

	if _, err := req.ToModel(uuid.New()); !errors.Is(err, ErrConsecutiveExceedsQuota) {
		t.Fatalf("ToModel() error = %v, want %v", err, ErrConsecutiveExceedsQuota)
	}

	// sama-sama 2 masih sah (blok lab memenuhi kuota persis)
	req.ClassSubjectAllocationConsecutivePeriods = intPtr(2)
	if _, err := req.ToModel(uuid.New()); err != nil {
		t.Fatalf("ToModel() consecutive == per_week harusnya sah: %v", err)
	}
}

func TestUpdateAllocationApply(t *testing.T) {
	row, err := validCreate().ToModel(uuid.New())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Naikkan consecutive melebihi kuota → ditolak
	upd := UpdateClassSubjectAllocationRequest{
		ClassSubjectAllocationConsecutivePeriods: intPtr(4),
	}
	if err := upd.Apply(&row); !errors.Is(err, ErrConsecutiveExceedsQuota) {
		t.Fatalf("Apply() error = %v, want %v", err, ErrConsecutiveExceedsQuota)
	}

	// Naikkan kuota dulu, lalu consecutive → sah
	row, _ = validCreate().ToModel(uuid.New())
	upd = UpdateClassSubjectAllocationRequest{
		ClassSubjectAllocationPeriodsPerWeek:     intPtr(5),
		ClassSubjectAllocationConsecutivePeriods: intPtr(2),
		ClassSubjectAllocationStatus:             strPtr("inactive"),
	}
	if err := upd.Apply(&row); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if row.ClassSubjectAllocationStatus != model.AllocationStatusInactive {
		t.Errorf("status = %s, want inactive", row.ClassSubjectAllocationStatus)
	}
	if row.IsActive() {
		t.Errorf("IsActive() must be false after deactivation")
	}
}
