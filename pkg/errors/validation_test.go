package errors

import (
	"strings"
	"testing"
)

func TestValidateHallID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"number", "17", false},
		{"words", "north lobby", false},
		{"unicode", "Café", false},
		{"empty", "", true},
		{"too long", strings.Repeat("x", MaxIDLength+1), true},
		{"control", "a\nb", true},
		{"null byte", "a\x00", true},
		{"comma", "a,b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHallID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHallID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateHallID(%q) code = %v, want %v", tt.id, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateWaypoints(t *testing.T) {
	if err := ValidateWaypoints([]string{"1", "2"}); err != nil {
		t.Errorf("ValidateWaypoints() error = %v", err)
	}
	if err := ValidateWaypoints(nil); err != nil {
		t.Errorf("ValidateWaypoints(nil) error = %v", err)
	}
	if err := ValidateWaypoints([]string{"1", ""}); err == nil {
		t.Error("ValidateWaypoints() with empty id should fail")
	}
	if err := ValidateWaypoints(make([]string, MaxWaypoints+1)); err == nil {
		t.Error("ValidateWaypoints() over the limit should fail")
	}
}
