// file: internals/features/school/timetables/exceptions/model/timetable_exception_model_test.go
package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestApproveLifecycle(t *testing.T) {
	row := TimetableExceptionModel{
		TimetableExceptionType:   ExceptionTypeCancellation,
		TimetableExceptionReason: "rapat dinas",
	}

	if !row.CanModify() || !row.CanDelete() {
		t.Fatalf("pending exception harus bisa diubah & dihapus")
	}

	approver := uuid.New()
	now := time.Now()
	if err := row.Approve(approver, now); err != nil {
		t.Fatalf("Approve() error: %v", err)
	}

	if !row.TimetableExceptionIsApproved {
		t.Errorf("is_approved harus true")
	}
	if row.TimetableExceptionApprovedBy == nil || *row.TimetableExceptionApprovedBy != approver {
		t.Errorf("approved_by tidak terekam")
	}
	if row.TimetableExceptionApprovedAt == nil || !row.TimetableExceptionApprovedAt.Equal(now) {
		t.Errorf("approved_at tidak terekam")
	}

	// Approved = terminal: tidak bisa diubah, dihapus, atau di-approve ulang
	if row.CanModify() {
		t.Errorf("approved exception tidak boleh bisa diubah")
	}
	if row.CanDelete() {
		t.Errorf("approved exception tidak boleh bisa dihapus")
	}
	if err := row.Approve(uuid.New(), time.Now()); !errors.Is(err, ErrAlreadyApproved) {
		t.Errorf("Approve() ulang = %v, want %v", err, ErrAlreadyApproved)
	}
}

func TestValidExceptionType(t *testing.T) {
	for _, ok := range []ExceptionType{ExceptionTypeSubstitution, ExceptionTypeCancellation, ExceptionTypeReschedule} {
		if !ValidExceptionType(ok) {
			t.Errorf("%s harus valid", ok)
		}
	}
	if ValidExceptionType("holiday") {
		t.Errorf("jenis tak dikenal harus invalid")
	}
}
