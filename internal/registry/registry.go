// Package registry is the authoritative lookup for bookable resource types:
// which studio type serves a requested service, the operating window for that
// type, and the department that owns walk-in work of that kind. All other
// components resolve service types through here.
package registry

import "studiodesk/internal/domain"

type ServiceType string

const (
	ServiceRecording  ServiceType = "recording"
	ServiceMixing     ServiceType = "mixing"
	ServicePhotoshoot ServiceType = "photoshoot"
	ServicePortrait   ServiceType = "portrait"
	ServiceEvent      ServiceType = "event"
	ServiceOutside    ServiceType = "outside"
)

// Entry maps a service type onto a studio type, its daily operating window
// (whole hours, closing hour exclusive) and the default department used when
// a booking arrives without one (public requests in particular).
type Entry struct {
	StudioType          domain.StudioType
	OpenHour            int
	CloseHour           int
	DefaultDepartmentID int64
}

var services = map[ServiceType]Entry{
	ServiceRecording:  {domain.StudioRecording, 8, 20, 1},
	ServiceMixing:     {domain.StudioRecording, 8, 20, 1},
	ServicePhotoshoot: {domain.StudioPhotography, 9, 18, 2},
	ServicePortrait:   {domain.StudioPhotography, 9, 18, 2},
	ServiceEvent:      {domain.StudioOutside, 6, 22, 3},
	ServiceOutside:    {domain.StudioOutside, 6, 22, 3},
}

func Lookup(s ServiceType) (Entry, bool) {
	e, ok := services[s]
	return e, ok
}

// Window returns the operating window for a studio type directly, for callers
// that already hold a studio rather than a service type.
func Window(t domain.StudioType) (open, close int) {
	switch t {
	case domain.StudioPhotography:
		return 9, 18
	case domain.StudioOutside:
		return 6, 22
	default:
		return 8, 20
	}
}

func DefaultDepartment(t domain.StudioType) int64 {
	switch t {
	case domain.StudioPhotography:
		return 2
	case domain.StudioOutside:
		return 3
	default:
		return 1
	}
}
