package config

import (
	"errors"
	"strings"
	"testing"
)

func TestExpandEnvStrict(t *testing.T) {
	t.Setenv("TC_PRESENT", "value")
	t.Setenv("TC_EMPTY", "")

	tests := []struct {
		in   string
		want string
	}{
		{"a=${TC_PRESENT}", "a=value"},
		{"${TC_EMPTY}x", "x"},
		{"$$${TC_PRESENT}", "$value"},
		{"cost: $$5", "cost: $5"},
		{"bare $TC_PRESENT stays", "bare $TC_PRESENT stays"},
		{"no refs", "no refs"},
	}
	for _, tc := range tests {
		got, err := ExpandEnvStrict(tc.in)
		if err != nil {
			t.Errorf("ExpandEnvStrict(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ExpandEnvStrict(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpandEnvStrict_MissingVarErrors(t *testing.T) {
	t.Setenv("TC_PRESENT", "1")

	_, err := ExpandEnvStrict("a=${TC_PRESENT} b=${TC_MISSING_B} c=${TC_MISSING_A} d=${TC_MISSING_B}")
	if !errors.Is(err, ErrMissingEnv) {
		t.Fatalf("expected ErrMissingEnv, got %v", err)
	}
	if !strings.HasSuffix(err.Error(), "TC_MISSING_A, TC_MISSING_B") {
		t.Errorf("expected sorted unique names, got %q", err.Error())
	}
}
