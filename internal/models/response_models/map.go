package response_models

// Marker is one plotted activity: position, day color and the popup fields
// the map embed renders.
type Marker struct {
	Day         int     `json:"day"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Color       string  `json:"color"`
	Title       string  `json:"title"`
	Duration    string  `json:"duration,omitempty"`
	Description string  `json:"description,omitempty"`
	Challenge   string  `json:"challenge,omitempty"`
	PhotoURL    string  `json:"photo_url,omitempty"`
	Tooltip     string  `json:"tooltip"`
}

// Bounds is a lat/lng bounding box for fitting the viewport.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// MapDocument is the embeddable map artifact: everything a Leaflet client
// needs to draw the trip. When no activity could be geocoded, Markers is
// empty and Center falls back to the destination itself.
type MapDocument struct {
	Center      Coordinates `json:"center"`
	Zoom        int         `json:"zoom"`
	Bounds      *Bounds     `json:"bounds,omitempty"`
	TileURL     string      `json:"tile_url"`
	Attribution string      `json:"attribution"`
	Markers     []Marker    `json:"markers"`
}
