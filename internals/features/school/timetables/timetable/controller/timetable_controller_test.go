// file: internals/features/school/timetables/timetable/controller/timetable_controller_test.go
package controller

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestMapPGError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"pgx unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{"pgx fk violation", &pgconn.PgError{Code: "23503"}, http.StatusBadRequest},
		{"pq unique violation", &pq.Error{Code: "23505"}, http.StatusConflict},
		{"pq fk violation", &pq.Error{Code: "23503"}, http.StatusBadRequest},
		{"unknown error", errors.New("koneksi putus"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := mapPGError(tt.err)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if msg == "" {
				t.Errorf("message kosong")
			}
		})
	}
}
