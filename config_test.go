package sketchpad

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultGestureConfig(t *testing.T) {
	cfg := DefaultGestureConfig()
	if cfg.TapMaxDuration != 250*time.Millisecond {
		t.Errorf("TapMaxDuration = %v, want 250ms", cfg.TapMaxDuration)
	}
	if cfg.TapMaxDistance != 10 || cfg.DragThreshold != 5 || cfg.PinchMinDistance != 10 {
		t.Errorf("distance thresholds = %v/%v/%v, want 10/5/10",
			cfg.TapMaxDistance, cfg.DragThreshold, cfg.PinchMinDistance)
	}
	if cfg.ZoomMin != 0.1 || cfg.ZoomMax != 10 {
		t.Errorf("zoom range = [%v,%v], want [0.1,10]", cfg.ZoomMin, cfg.ZoomMax)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadGestureConfigPartial(t *testing.T) {
	cfg, err := LoadGestureConfig([]byte(`{"tapMaxDuration": 300, "dragThreshold": 8.5}`))
	if err != nil {
		t.Fatalf("LoadGestureConfig: %v", err)
	}
	if cfg.TapMaxDuration != 300*time.Millisecond {
		t.Errorf("TapMaxDuration = %v, want 300ms", cfg.TapMaxDuration)
	}
	if cfg.DragThreshold != 8.5 {
		t.Errorf("DragThreshold = %v, want 8.5", cfg.DragThreshold)
	}
	// Untouched fields keep their defaults.
	if cfg.TapMaxDistance != 10 || cfg.ZoomMax != 10 || cfg.WheelZoomBase != 1.1 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadGestureConfigExplicitZero(t *testing.T) {
	cfg, err := LoadGestureConfig([]byte(`{"pinchMinDistance": 0}`))
	if err != nil {
		t.Fatalf("LoadGestureConfig: %v", err)
	}
	if cfg.PinchMinDistance != 0 {
		t.Errorf("PinchMinDistance = %v, want 0", cfg.PinchMinDistance)
	}
}

func TestLoadGestureConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"invalid json", `{not json`, "parse gesture config"},
		{"negative duration", `{"tapMaxDuration": -1}`, "tapMaxDuration must not be negative"},
		{"negative threshold", `{"dragThreshold": -2}`, "dragThreshold must not be negative"},
		{"zero zoomMin", `{"zoomMin": 0}`, "zoomMin must be positive"},
		{"inverted range", `{"zoomMin": 4, "zoomMax": 2}`, "zoomMax 2 is below zoomMin 4"},
		{"zero wheel base", `{"wheelZoomBase": 0}`, "wheelZoomBase must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadGestureConfig([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}
