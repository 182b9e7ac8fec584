package models

// DistanceRequest asks for the road distance between two free-text places
type DistanceRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

// DistanceResult is a resolved route distance. Source is one of
// "cache", "google_maps" or "fallback".
type DistanceResult struct {
	DistanceKm  int    `json:"distance_km"`
	DurationMin int    `json:"duration_min"`
	Source      string `json:"source"`
	Note        string `json:"note,omitempty"`
}
