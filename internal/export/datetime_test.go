package export_test

import (
	"testing"

	"sendtocal/internal/export"
)

func TestFormatUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"UTC instant", "2024-05-21T14:30:00Z", "20240521T143000Z"},
		{"offset normalized to UTC", "2024-05-21T23:30:00+09:00", "20240521T143000Z"},
		{"fractional seconds stripped", "2024-05-21T14:30:00.250Z", "20240521T143000Z"},
		{"zoneless treated as UTC", "2024-05-21T14:30:00", "20240521T143000Z"},
		{"date only", "2024-05-21", "20240521T000000Z"},
		{"unparsable", "not-a-date", ""},
		{"empty", "", ""},
		{"partial garbage", "2024-13-45T99:99:99Z", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := export.FormatUTC(tt.input); got != tt.want {
				t.Errorf("FormatUTC(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
