package helper

import "testing"

func TestParamsLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	if p.Limit() != 25 {
		t.Errorf("Limit() = %d, want 25", p.Limit())
	}
	if p.Offset() != 50 {
		t.Errorf("Offset() = %d, want 50", p.Offset())
	}
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at":    "period_created_at",
		"period_number": "period_number",
	}

	tests := []struct {
		name   string
		p      Params
		want   string
		wantOK bool
	}{
		{"default desc", Params{SortBy: "created_at"}, "period_created_at DESC", true},
		{"explicit asc", Params{SortBy: "period_number", SortOrder: "asc"}, "period_number ASC", true},
		{"empty sort_by falls back", Params{}, "period_created_at DESC", true},
		{"unknown key falls back to default", Params{SortBy: "evil; DROP TABLE"}, "period_created_at DESC", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.p.SafeOrderClause(allowed, "created_at")
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("SafeOrderClause() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}

	// whitelist kosong → tidak ada klausa
	if _, ok := (Params{SortBy: "x"}).SafeOrderClause(map[string]string{}, "created_at"); ok {
		t.Errorf("whitelist kosong harus gagal")
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(101, 2, 25)
	if pg.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Errorf("page 2/5 harus punya next & prev")
	}

	// data kosong tetap dilaporkan sebagai 1 halaman
	pg = BuildPaginationFromPage(0, 1, 25)
	if pg.TotalPages != 1 || pg.HasNext || pg.HasPrev {
		t.Errorf("data kosong: %+v", pg)
	}
}
