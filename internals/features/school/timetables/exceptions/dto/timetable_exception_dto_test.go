// file: internals/features/school/timetables/exceptions/dto/timetable_exception_dto_test.go
package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/timetables/exceptions/model"
)

func uuidPtr() *uuid.UUID {
	id := uuid.New()
	return &id
}

func TestCreateExceptionParseType(t *testing.T) {
	teacher := uuidPtr()
	subject := uuidPtr()

	tests := []struct {
		name    string
		req     CreateTimetableExceptionRequest
		want    model.ExceptionType
		wantErr error
	}{
		{
			name: "substitution with teacher ok",
			req: CreateTimetableExceptionRequest{
				TimetableExceptionType:                 " Substitution ",
				TimetableExceptionReplacementTeacherID: teacher,
			},
			want: model.ExceptionTypeSubstitution,
		},
		{
			name: "substitution without teacher rejected",
			req: CreateTimetableExceptionRequest{
				TimetableExceptionType: "substitution",
			},
			wantErr: ErrSubstitutionNeedsTeacher,
		},
		{
			name: "cancellation needs nothing",
			req: CreateTimetableExceptionRequest{
				TimetableExceptionType: "cancellation",
			},
			want: model.ExceptionTypeCancellation,
		},
		{
			name: "reschedule without any replacement rejected",
			req: CreateTimetableExceptionRequest{
				TimetableExceptionType: "reschedule",
			},
			wantErr: ErrRescheduleNeedsChange,
		},
		{
			name: "reschedule with subject ok",
			req: CreateTimetableExceptionRequest{
				TimetableExceptionType:                 "reschedule",
				TimetableExceptionReplacementSubjectID: subject,
			},
			want: model.ExceptionTypeReschedule,
		},
		{
			name: "unknown type rejected",
			req: CreateTimetableExceptionRequest{
				TimetableExceptionType: "libur",
			},
			wantErr: ErrInvalidExceptionType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ParseType()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseType() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseType() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCreateExceptionParseDate(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load tz: %v", err)
	}

	req := CreateTimetableExceptionRequest{TimetableExceptionDate: "2026-08-31"}
	d, err := req.ParseDate(jakarta)
	if err != nil {
		t.Fatalf("ParseDate() error: %v", err)
	}
	if int(d.Weekday()) != 1 {
		t.Errorf("2026-08-31 harus Senin (day 1), got %d", int(d.Weekday()))
	}

	req.TimetableExceptionDate = "31/08/2026"
	if _, err := req.ParseDate(jakarta); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("format non-ISO harus ditolak, got %v", err)
	}
}

func TestUpdateExceptionApplyKeepsSubstitutionInvariant(t *testing.T) {
	row := model.TimetableExceptionModel{
		TimetableExceptionType:                 model.ExceptionTypeSubstitution,
		TimetableExceptionReplacementTeacherID: uuidPtr(),
		TimetableExceptionReason:               "guru sakit",
	}

	newTeacher := uuidPtr()
	reason := "guru diklat"
	if err := (UpdateTimetableExceptionRequest{
		TimetableExceptionReason:               &reason,
		TimetableExceptionReplacementTeacherID: newTeacher,
	}).Apply(&row); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if row.TimetableExceptionReason != "guru diklat" {
		t.Errorf("reason tidak terganti")
	}
	if row.TimetableExceptionReplacementTeacherID != newTeacher {
		t.Errorf("replacement teacher tidak terganti")
	}

	// Substitution yang kehilangan replacement teacher harus ditolak
	bare := model.TimetableExceptionModel{
		TimetableExceptionType: model.ExceptionTypeSubstitution,
	}
	if err := (UpdateTimetableExceptionRequest{
		TimetableExceptionReason: &reason,
	}).Apply(&bare); !errors.Is(err, ErrSubstitutionNeedsTeacher) {
		t.Errorf("Apply() = %v, want %v", err, ErrSubstitutionNeedsTeacher)
	}
}
