package sketchpad

import (
	"encoding/json"
	"fmt"
	"time"
)

// GestureConfig holds the thresholds used to classify contacts. Distances
// are in screen pixels.
type GestureConfig struct {
	// TapMaxDuration is the longest press that still counts as a tap.
	TapMaxDuration time.Duration
	// TapMaxDistance is the largest start-to-end displacement of a tap.
	TapMaxDistance float64
	// DragThreshold is the displacement that promotes a contact to a drag.
	DragThreshold float64
	// PinchMinDistance guards the pinch scale against near-coincident contacts.
	PinchMinDistance float64
	// ZoomMin and ZoomMax bound the pinch scale relative to gesture start.
	ZoomMin float64
	ZoomMax float64
	// WheelZoomBase is the zoom multiplier applied per wheel notch.
	WheelZoomBase float64
}

// DefaultGestureConfig returns the stock thresholds.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		TapMaxDuration:   250 * time.Millisecond,
		TapMaxDistance:   10,
		DragThreshold:    5,
		PinchMinDistance: 10,
		ZoomMin:          0.1,
		ZoomMax:          10,
		WheelZoomBase:    1.1,
	}
}

// gestureConfigJSON mirrors GestureConfig with the duration in milliseconds.
type gestureConfigJSON struct {
	TapMaxDuration   *float64 `json:"tapMaxDuration"`
	TapMaxDistance   *float64 `json:"tapMaxDistance"`
	DragThreshold    *float64 `json:"dragThreshold"`
	PinchMinDistance *float64 `json:"pinchMinDistance"`
	ZoomMin          *float64 `json:"zoomMin"`
	ZoomMax          *float64 `json:"zoomMax"`
	WheelZoomBase    *float64 `json:"wheelZoomBase"`
}

// LoadGestureConfig parses JSON over the defaults and validates the result.
// tapMaxDuration is given in milliseconds. Missing fields keep their default.
func LoadGestureConfig(jsonData []byte) (GestureConfig, error) {
	cfg := DefaultGestureConfig()
	var raw gestureConfigJSON
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return cfg, fmt.Errorf("parse gesture config: %w", err)
	}
	if raw.TapMaxDuration != nil {
		cfg.TapMaxDuration = time.Duration(*raw.TapMaxDuration * float64(time.Millisecond))
	}
	setIf(&cfg.TapMaxDistance, raw.TapMaxDistance)
	setIf(&cfg.DragThreshold, raw.DragThreshold)
	setIf(&cfg.PinchMinDistance, raw.PinchMinDistance)
	setIf(&cfg.ZoomMin, raw.ZoomMin)
	setIf(&cfg.ZoomMax, raw.ZoomMax)
	setIf(&cfg.WheelZoomBase, raw.WheelZoomBase)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("parse gesture config: %w", err)
	}
	return cfg, nil
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Validate reports the first field that cannot drive the classifier.
func (c GestureConfig) Validate() error {
	switch {
	case c.TapMaxDuration < 0:
		return fmt.Errorf("tapMaxDuration must not be negative, got %v", c.TapMaxDuration)
	case c.TapMaxDistance < 0:
		return fmt.Errorf("tapMaxDistance must not be negative, got %v", c.TapMaxDistance)
	case c.DragThreshold < 0:
		return fmt.Errorf("dragThreshold must not be negative, got %v", c.DragThreshold)
	case c.PinchMinDistance < 0:
		return fmt.Errorf("pinchMinDistance must not be negative, got %v", c.PinchMinDistance)
	case c.ZoomMin <= 0:
		return fmt.Errorf("zoomMin must be positive, got %v", c.ZoomMin)
	case c.ZoomMax < c.ZoomMin:
		return fmt.Errorf("zoomMax %v is below zoomMin %v", c.ZoomMax, c.ZoomMin)
	case c.WheelZoomBase <= 0:
		return fmt.Errorf("wheelZoomBase must be positive, got %v", c.WheelZoomBase)
	}
	return nil
}
