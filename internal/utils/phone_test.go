package utils

import "testing"

func TestFormatPhoneE164(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"Bare national number", "912345678", "+351912345678"},
		{"Already international", "+351912345678", "+351912345678"},
		{"With spaces", "912 345 678", "+351912345678"},
		{"With 00351 prefix", "00351912345678", "+351912345678"},
		{"Unparseable returned unchanged", "abc", "abc"},
		{"Empty returned unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPhoneE164(tt.phone); got != tt.want {
				t.Errorf("FormatPhoneE164(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}
