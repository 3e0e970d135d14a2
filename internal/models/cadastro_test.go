package models

import "testing"

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusPendente, true},
		{StatusContatado, true},
		{StatusConfirmado, true},
		{StatusCancelado, true},
		{"", false},
		{"Pendente", false},
		{"arquivado", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidStatus(tt.status); got != tt.want {
				t.Errorf("IsValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int64
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"First of three pages", 1, 50, 120, 3, true, false},
		{"Middle page", 2, 50, 120, 3, true, true},
		{"Last page", 3, 50, 120, 3, false, true},
		{"Single page", 1, 50, 10, 1, false, false},
		{"Exact multiple", 2, 50, 100, 2, false, true},
		{"Empty result", 1, 50, 0, 0, false, false},
		{"Page beyond range", 5, 50, 120, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)

			if p.Page != tt.page {
				t.Errorf("NewPagination() Page = %d, want %d", p.Page, tt.page)
			}
			if p.Limit != tt.limit {
				t.Errorf("NewPagination() Limit = %d, want %d", p.Limit, tt.limit)
			}
			if p.Total != tt.total {
				t.Errorf("NewPagination() Total = %d, want %d", p.Total, tt.total)
			}
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("NewPagination() TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("NewPagination() HasNext = %v, want %v", p.HasNext, tt.wantHasNext)
			}
			if p.HasPrev != tt.wantHasPrev {
				t.Errorf("NewPagination() HasPrev = %v, want %v", p.HasPrev, tt.wantHasPrev)
			}
		})
	}
}
