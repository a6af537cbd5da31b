package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"familytravel/internal/models/response_models"
	"familytravel/pkg/utils"
)

// dayPalette cycles per day so markers of the same day share a color.
var dayPalette = []string{
	"#D63E2A", // red
	"#38AADD", // blue
	"#72B026", // green
	"#D252B9", // purple
	"#F69730", // orange
	"#A23336", // darkred
	"#EB7D7F", // lightred
	"#FFCB92", // beige
	"#0067A3", // darkblue
	"#728224", // darkgreen
	"#436978", // cadetblue
	"#5B396B", // darkpurple
	"#FF8EE9", // pink
}

// DayColor returns the marker color for a 1-based day index.
func DayColor(day int) string {
	idx := (day - 1) % len(dayPalette)
	if idx < 0 {
		idx += len(dayPalette)
	}
	return dayPalette[idx]
}

const (
	osmTileURL        = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	osmAttribution    = "&copy; OpenStreetMap contributors"
	googleTileURL     = "https://mt1.google.com/vt/lyrs=m&x={x}&y={y}&z={z}"
	googleAttribution = "Map data &copy; Google"

	fallbackZoom = 13
)

type MapServiceInterface interface {
	BuildMap(ctx context.Context, destination string, itinerary *response_models.Itinerary) (*response_models.MapDocument, error)
}

type MapService struct {
	geocoder   GeocoderInterface
	mapsAPIKey string
	logger     *zap.Logger
}

func NewMapService(geocoder GeocoderInterface, mapsAPIKey string, logger *zap.Logger) MapServiceInterface {
	return &MapService{
		geocoder:   geocoder,
		mapsAPIKey: mapsAPIKey,
		logger:     logger,
	}
}

// BuildMap turns the enriched itinerary into a renderable map document.
// Activities without coordinates are omitted from the marker set. When no
// activity could be placed at all, the map falls back to the destination
// center at street zoom; only a destination that itself cannot be geocoded
// fails the call.
func (s *MapService) BuildMap(ctx context.Context, destination string, itinerary *response_models.Itinerary) (*response_models.MapDocument, error) {
	doc := &response_models.MapDocument{
		TileURL:     osmTileURL,
		Attribution: osmAttribution,
	}
	if s.mapsAPIKey != "" {
		doc.TileURL = googleTileURL + "&key=" + s.mapsAPIKey
		doc.Attribution = googleAttribution
	}

	for _, act := range itinerary.Activities {
		if !act.Plottable() {
			continue
		}
		doc.Markers = append(doc.Markers, response_models.Marker{
			Day:         act.Day,
			Lat:         act.Coordinates.Lat,
			Lng:         act.Coordinates.Lng,
			Color:       DayColor(act.Day),
			Title:       act.Title,
			Duration:    act.Duration,
			Description: act.Description,
			Challenge:   act.Challenge,
			PhotoURL:    act.PhotoURL,
			Tooltip:     fmt.Sprintf("Day %d: %s", act.Day, act.Title),
		})
	}

	if len(doc.Markers) == 0 {
		coords, err := s.geocoder.Geocode(ctx, destination)
		if err != nil {
			s.logger.Error("destination geocoding failed",
				zap.String("destination", destination), zap.Error(err))
			return nil, utils.ErrDestinationNotFound
		}
		if coords == nil {
			return nil, utils.ErrDestinationNotFound
		}
		doc.Center = response_models.Coordinates{Lat: coords.Lat, Lng: coords.Lng}
		doc.Zoom = fallbackZoom
		return doc, nil
	}

	doc.Bounds = markerBounds(doc.Markers)
	doc.Center = response_models.Coordinates{
		Lat: (doc.Bounds.South + doc.Bounds.North) / 2,
		Lng: (doc.Bounds.West + doc.Bounds.East) / 2,
	}
	return doc, nil
}

func markerBounds(markers []response_models.Marker) *response_models.Bounds {
	b := &response_models.Bounds{
		South: markers[0].Lat,
		North: markers[0].Lat,
		West:  markers[0].Lng,
		East:  markers[0].Lng,
	}
	for _, m := range markers[1:] {
		if m.Lat < b.South {
			b.South = m.Lat
		}
		if m.Lat > b.North {
			b.North = m.Lat
		}
		if m.Lng < b.West {
			b.West = m.Lng
		}
		if m.Lng > b.East {
			b.East = m.Lng
		}
	}
	return b
}
