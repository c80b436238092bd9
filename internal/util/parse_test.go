package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2020-05-01")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got == nil || got.Year() != 2020 || int(got.Month()) != 5 || got.Day() != 1 {
		t.Errorf("ParseDate() = %v, want 2020-05-01", got)
	}

	if FormatDate(got) != "2020-05-01" {
		t.Errorf("FormatDate() = %q, want 2020-05-01", FormatDate(got))
	}
}

func TestParseDateBlankIsNil(t *testing.T) {
	for _, s := range []string{"", "   "} {
		got, err := ParseDate(s)
		if err != nil || got != nil {
			t.Errorf("ParseDate(%q) = (%v, %v), want (nil, nil)", s, got, err)
		}
	}
	if FormatDate(nil) != "" {
		t.Errorf("FormatDate(nil) = %q, want empty", FormatDate(nil))
	}
}

func TestParseDateInvalid(t *testing.T) {
	cases := []string{"05/01/2020", "2020-5-1", "not-a-date", "2020-13-01"}
	for _, s := range cases {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", s)
		}
	}
}

func TestParseDecimalField(t *testing.T) {
	got, err := ParseDecimalField("250000.50")
	if err != nil {
		t.Fatalf("ParseDecimalField() error = %v", err)
	}
	if !got.Equal(decimal.RequireFromString("250000.50")) {
		t.Errorf("ParseDecimalField() = %s, want 250000.50", got)
	}

	// blank coerces to zero rather than failing
	got, err = ParseDecimalField("")
	if err != nil || !got.IsZero() {
		t.Errorf("ParseDecimalField(\"\") = (%s, %v), want (0, nil)", got, err)
	}

	if _, err := ParseDecimalField("abc"); err == nil {
		t.Error("ParseDecimalField(\"abc\") error = nil, want error")
	}
}

func TestParseIntField(t *testing.T) {
	got, err := ParseIntField("1998")
	if err != nil || got != 1998 {
		t.Errorf("ParseIntField(\"1998\") = (%d, %v), want (1998, nil)", got, err)
	}

	got, err = ParseIntField(" ")
	if err != nil || got != 0 {
		t.Errorf("ParseIntField(blank) = (%d, %v), want (0, nil)", got, err)
	}

	if _, err := ParseIntField("19.98"); err == nil {
		t.Error("ParseIntField(\"19.98\") error = nil, want error")
	}
}

func TestOptionalText(t *testing.T) {
	if OptionalText("") != nil || OptionalText("  ") != nil {
		t.Error("OptionalText(blank) should be nil")
	}
	got := OptionalText(" Montgomery ")
	if got == nil || *got != "Montgomery" {
		t.Errorf("OptionalText() = %v, want Montgomery", got)
	}
}
