package folio

import "testing"

func TestParseTouchMode(t *testing.T) {
	tests := []struct {
		in   string
		want TouchMode
	}{
		{"on", TouchOn},
		{"true", TouchOn},
		{"1", TouchOn},
		{"off", TouchOff},
		{"false", TouchOff},
		{"0", TouchOff},
		{"auto", TouchAuto},
		{"", TouchAuto},
		{"maybe", TouchAuto},
	}
	for _, tt := range tests {
		if got := ParseTouchMode(tt.in); got != tt.want {
			t.Errorf("ParseTouchMode(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTouchModeIsTouch(t *testing.T) {
	if !TouchOn.IsTouch() {
		t.Error("TouchOn should be touch")
	}
	if TouchOff.IsTouch() {
		t.Error("TouchOff should not be touch")
	}
	if TouchAuto.IsTouch() != IsTouchDevice() {
		t.Error("TouchAuto should follow the platform")
	}
}
