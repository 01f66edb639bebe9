package model

import (
	"encoding/json"
	"time"
)

// Draft is an unsubmitted form state, keyed by form identifier.
// The payload is kept opaque; the server never interprets it.
type Draft struct {
	Data    json.RawMessage `json:"data"`
	SavedAt time.Time       `json:"savedAt"`
}
