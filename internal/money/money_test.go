package money

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"25.00", 2500, false},
		{"25", 2500, false},
		{"0.01", 1, false},
		{"12,34", 1234, false},
		{"12.344", 1234, false},
		{"12.345", 1235, false},
		{" 50 ", 5000, false},
		{".50", 50, false},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
		{"12a.50", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDecimalToCents(%q) = %d, expected error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDecimalToCents(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDecimalToCents(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	if got := FormatCents(2500); got != "25.00" {
		t.Errorf("FormatCents(2500) = %q, want %q", got, "25.00")
	}
	if got := FormatCents(1); got != "0.01" {
		t.Errorf("FormatCents(1) = %q, want %q", got, "0.01")
	}
	if got := FormatCents(-150); got != "-1.50" {
		t.Errorf("FormatCents(-150) = %q, want %q", got, "-1.50")
	}
}
