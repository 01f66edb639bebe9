// Package geo provides great-circle distance computation and distance-based
// filtering of listings.
package geo

import (
	"math"

	"github.com/findly-app/findly/internal/model"
)

// EarthRadiusKm is the Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371

// MaxFilterKm is the distance slider's maximum. A requested ceiling at or
// above this value means "no distance filtering", not a real 50 km cutoff;
// changing that would silently change which listings users see.
const MaxFilterKm = 50

// DistanceKm returns the great-circle distance in kilometers between two
// coordinates in decimal degrees, via the Haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// FilterByDistance keeps the items within maxKm of origin. Items without
// coordinates always pass: losing a listing to an unknown position is worse
// than imprecise geofencing. A nil origin disables filtering entirely.
func FilterByDistance(items []model.Item, origin *model.SavedLocation, maxKm float64) []model.Item {
	if origin == nil {
		return items
	}

	kept := make([]model.Item, 0, len(items))
	for _, item := range items {
		if item.Coords == nil {
			kept = append(kept, item)
			continue
		}
		dist := DistanceKm(origin.Latitude, origin.Longitude, item.Coords.Latitude, item.Coords.Longitude)
		if dist <= maxKm {
			kept = append(kept, item)
		}
	}
	return kept
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
