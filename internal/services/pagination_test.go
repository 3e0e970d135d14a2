package services

import "testing"

func TestValidatePaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		pageStr   string
		limitStr  string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{"Defaults when empty", "", "", 1, 50, false},
		{"Explicit values", "3", "20", 3, 20, false},
		{"Limit at maximum", "1", "100", 1, 100, false},
		{"Limit above maximum", "1", "101", 0, 0, true},
		{"Zero page", "0", "", 0, 0, true},
		{"Negative page", "-1", "", 0, 0, true},
		{"Zero limit", "", "0", 0, 0, true},
		{"Non-numeric page", "abc", "", 0, 0, true},
		{"Non-numeric limit", "", "xyz", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, err := ValidatePaginationParams(tt.pageStr, tt.limitStr)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePaginationParams(%q, %q) error = %v, wantErr %v",
					tt.pageStr, tt.limitStr, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if page != tt.wantPage {
				t.Errorf("ValidatePaginationParams() page = %d, want %d", page, tt.wantPage)
			}
			if limit != tt.wantLimit {
				t.Errorf("ValidatePaginationParams() limit = %d, want %d", limit, tt.wantLimit)
			}
		})
	}
}
