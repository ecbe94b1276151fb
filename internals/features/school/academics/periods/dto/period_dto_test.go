// file: internals/features/school/academics/periods/dto/period_dto_test.go
package dto

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/academics/periods/model"
)

func TestCreatePeriodRequestToModel(t *testing.T) {
	schoolID := uuid.New()

	tests := []struct {
		name    string
		req     CreatePeriodRequest
		wantErr error
		wantDur int
	}{
		{
			name: "duration 08:00-08:45 is 45 minutes",
			req: CreatePeriodRequest{
				PeriodNumber:    1,
				PeriodName:      "Jam ke-1",
				PeriodStartTime: "08:00",
				PeriodEndTime:   "08:45",
				PeriodType:      "teaching",
			},
			wantDur: 45,
		},
		{
			name: "accepts HH:mm:ss",
			req: CreatePeriodRequest{
				PeriodNumber:    2,
				PeriodName:      "Jam ke-2",
				PeriodStartTime: "08:45:00",
				PeriodEndTime:   "09:30:00",
				PeriodType:      "teaching",
			},
			wantDur: 45,
		},
		{
			name: "end equal start rejected",
			req: CreatePeriodRequest{
				PeriodNumber:    1,
				PeriodName:      "Jam ke-1",
				PeriodStartTime: "08:00",
				PeriodEndTime:   "08:00",
				PeriodType:      "teaching",
			},
			wantErr: ErrEndNotAfterStart,
		},
		{
			name: "end before start rejected",
			req: CreatePeriodRequest{
				PeriodNumber:    1,
				PeriodName:      "Jam ke-1",
				PeriodStartTime: "09:00",
				PeriodEndTime:   "08:00",
				PeriodType:      "teaching",
			},
			wantErr: ErrEndNotAfterStart,
		},
		{
			name: "garbage start time rejected",
			req: CreatePeriodRequest{
				PeriodNumber:    1,
				PeriodName:      "Jam ke-1",
				PeriodStartTime: "8 pagi",
				PeriodEndTime:   "08:45",
				PeriodType:      "teaching",
			},
			wantErr: ErrInvalidStartTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToModel(schoolID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ToModel() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToModel() unexpected error: %v", err)
			}
			if got.PeriodDurationMinutes != tt.wantDur {
				t.Errorf("duration = %d, want %d", got.PeriodDurationMinutes, tt.wantDur)
			}
			if got.PeriodSchoolID != schoolID {
				t.Errorf("school id not taken from argument")
			}
		})
	}
}

func TestUpdatePeriodRequestApplyRecomputesDuration(t *testing.T) {
	schoolID := uuid.New()
	base, err := CreatePeriodRequest{
		PeriodNumber:    1,
		PeriodName:      "Jam ke-1",
		PeriodStartTime: "08:00",
		PeriodEndTime:   "08:45",
		PeriodType:      "teaching",
	}.ToModel(schoolID)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	end := "09:30"
	if err := (UpdatePeriodRequest{PeriodEndTime: &end}).Apply(&base); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if base.PeriodDurationMinutes != 90 {
		t.Errorf("duration after update = %d, want 90", base.PeriodDurationMinutes)
	}

	bad := "07:00"
	if err := (UpdatePeriodRequest{PeriodEndTime: &bad}).Apply(&base); !errors.Is(err, ErrEndNotAfterStart) {
		t.Errorf("Apply() with end before start = %v, want %v", err, ErrEndNotAfterStart)
	}
}

func TestParsePeriodType(t *testing.T) {
	if pt, ok := parsePeriodType("  Teaching "); !ok || pt != model.PeriodTypeTeaching {
		t.Errorf("parsePeriodType teaching = (%v, %v)", pt, ok)
	}
	if _, ok := parsePeriodType("upacara"); ok {
		t.Errorf("parsePeriodType should reject unknown type")
	}
	if !model.PeriodTypeTeaching.IsTeaching() {
		t.Errorf("teaching type must report IsTeaching")
	}
	if model.PeriodTypeBreak.IsTeaching() {
		t.Errorf("break type must not report IsTeaching")
	}
}
