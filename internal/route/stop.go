package route

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/san-kum/routeviz/internal/projection"
)

var (
	// ErrNoStops indicates a route without any stops.
	ErrNoStops = errors.New("route: no stops")

	// ErrCoordinate indicates a latitude or longitude outside its valid range.
	ErrCoordinate = errors.New("route: invalid coordinate")
)

// StopError wraps a validation failure with the stop position.
type StopError struct {
	Index   int
	OrderID string
	Wrapped error
}

func (e *StopError) Error() string {
	return fmt.Sprintf("stop %d (%s): %v", e.Index+1, e.OrderID, e.Wrapped)
}

func (e *StopError) Unwrap() error {
	return e.Wrapped
}

type Stop struct {
	OrderID  string  `yaml:"order_id" json:"order_id"`
	Customer string  `yaml:"customer" json:"customer"`
	Lat      float64 `yaml:"lat" json:"lat"`
	Lng      float64 `yaml:"lng" json:"lng"`
	Paid     bool    `yaml:"paid" json:"paid"`
	Status   string  `yaml:"status" json:"status"`
}

// DeliveryType is the label shown for the paid-delivery flag.
func (s Stop) DeliveryType() string {
	if s.Paid {
		return "Paid"
	}
	return "Standard"
}

var nextID atomic.Uint64

// Route is an ordered stop sequence for one vehicle. The core never
// mutates it; ID changes whenever a new Route is built so consumers can
// tell sequences apart.
type Route struct {
	Vehicle string `yaml:"vehicle" json:"vehicle"`
	Stops   []Stop `yaml:"stops" json:"stops"`

	id uint64
}

func New(vehicle string, stops []Stop) *Route {
	r := &Route{Vehicle: vehicle, Stops: stops}
	r.id = nextID.Add(1)
	return r
}

// ID identifies this sequence. Zero-valued routes get one lazily.
func (r *Route) ID() uint64 {
	if r.id == 0 {
		r.id = nextID.Add(1)
	}
	return r.id
}

func (r *Route) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Stops)
}

func (r *Route) Coordinates() []projection.LatLng {
	if r == nil {
		return nil
	}
	out := make([]projection.LatLng, len(r.Stops))
	for i, s := range r.Stops {
		out[i] = projection.LatLng{Lat: s.Lat, Lng: s.Lng}
	}
	return out
}

// Validate checks that every coordinate is finite and in range.
func (r *Route) Validate() error {
	if r.Len() == 0 {
		return ErrNoStops
	}
	for i, s := range r.Stops {
		if !validCoord(s.Lat, 90) || !validCoord(s.Lng, 180) {
			return &StopError{Index: i, OrderID: s.OrderID, Wrapped: ErrCoordinate}
		}
	}
	return nil
}

func validCoord(v, limit float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) <= limit
}

// Describe formats the stop card for position i.
func Describe(s Stop, i int) []string {
	return []string{
		fmt.Sprintf("Stop %d: %s", i+1, s.Customer),
		fmt.Sprintf("Order ID: %s", s.OrderID),
		fmt.Sprintf("Status: %s", s.Status),
		fmt.Sprintf("Latitude: %.4f", s.Lat),
		fmt.Sprintf("Longitude: %.4f", s.Lng),
		fmt.Sprintf("Delivery Type: %s", s.DeliveryType()),
	}
}
