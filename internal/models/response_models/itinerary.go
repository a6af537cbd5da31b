package response_models

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is one generated stop. Title, description, duration and location
// come from the generator; coordinates, photo and challenge are filled in by
// enrichment and stay empty when the lookups miss.
type Activity struct {
	Day         int          `json:"day"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Duration    string       `json:"duration"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	PhotoURL    string       `json:"photo_url,omitempty"`
	Challenge   string       `json:"challenge,omitempty"`
}

// Plottable reports whether the activity can appear on the map.
func (a Activity) Plottable() bool {
	return a.Coordinates != nil
}

// Itinerary is the ordered activity list for one trip. Activities are grouped
// by their Day value; the value is an opaque grouping key, not guaranteed to
// be contiguous.
type Itinerary struct {
	Activities []Activity `json:"activities"`
	Warnings   []string   `json:"warnings,omitempty"`
}

// TravelPlan is the full pipeline output returned to the client.
type TravelPlan struct {
	Destination string       `json:"destination"`
	Days        int          `json:"days"`
	Itinerary   *Itinerary   `json:"itinerary"`
	Map         *MapDocument `json:"map"`
}
