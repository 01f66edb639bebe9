package model

// Item represents a lost or found listing.
type Item struct {
	ID          int64        `json:"id"`
	Kind        string       `json:"kind"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Description string       `json:"description,omitempty"`
	Location    string       `json:"location"`
	Date        string       `json:"date,omitempty"` // occurrence date, YYYY-MM-DD
	Email       string       `json:"email,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Photo       string       `json:"photo,omitempty"`
	Coords      *Coordinates `json:"coords,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"` // RFC 3339
}

// Coordinates is a geographic position in decimal degrees.
// A nil *Coordinates on an item means the listing has no position;
// distance filters must keep such items.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Item kinds.
const (
	KindLost  = "lost"
	KindFound = "found"
)

// ValidKind reports whether kind is one of the known item kinds.
func ValidKind(kind string) bool {
	return kind == KindLost || kind == KindFound
}
