package model

import "time"

// SavedLocation is the last captured device position. Singleton,
// overwritten on every successful capture.
type SavedLocation struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy,omitempty"` // meters
	CapturedAt time.Time `json:"captured_at"`
}
