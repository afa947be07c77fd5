package appointment

import (
	"errors"
	"strings"
)

var (
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidLocation   = errors.New("location out of range")
	ErrEmptyServiceType  = errors.New("service type cannot be empty")
	ErrZeroStart         = errors.New("start time is required")
	ErrNotesTooLong      = errors.New("notes exceed maximum length")
	ErrCustomerRequired  = errors.New("customer reference is required")
	ErrLocationRequired  = errors.New("location is required")
)

const MaxNotesLength = 2000

// Location is a WGS84 coordinate pair. Required at creation; typically
// inherited from the customer's geocoded address.
type Location struct {
	lat float64
	lng float64
}

func NewLocation(lat, lng float64) (Location, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Location{}, ErrInvalidLocation
	}
	return Location{lat: lat, lng: lng}, nil
}

func (l Location) Lat() float64 { return l.lat }
func (l Location) Lng() float64 { return l.lng }

func (l Location) IsZero() bool {
	return l.lat == 0 && l.lng == 0
}

// ServiceType is the treatment category, e.g. "termite_inspection",
// "rodent_control". Free-form but non-empty.
type ServiceType struct {
	value string
}

func NewServiceType(s string) (ServiceType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ServiceType{}, ErrEmptyServiceType
	}
	return ServiceType{value: s}, nil
}

func (s ServiceType) String() string { return s.value }

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: s}, nil
}

func (n Notes) String() string { return n.value }
func (n Notes) IsEmpty() bool  { return n.value == "" }
