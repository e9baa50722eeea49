package registry

import (
	"testing"

	"studiodesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownServiceTypes(t *testing.T) {
	e, ok := Lookup(ServiceRecording)
	assert.True(t, ok)
	assert.Equal(t, domain.StudioRecording, e.StudioType)
	assert.Equal(t, 8, e.OpenHour)
	assert.Equal(t, 20, e.CloseHour)

	e, ok = Lookup(ServicePhotoshoot)
	assert.True(t, ok)
	assert.Equal(t, domain.StudioPhotography, e.StudioType)
	assert.Equal(t, 9, e.OpenHour)
	assert.Equal(t, 18, e.CloseHour)

	e, ok = Lookup(ServiceEvent)
	assert.True(t, ok)
	assert.Equal(t, domain.StudioOutside, e.StudioType)
	assert.Equal(t, 6, e.OpenHour)
	assert.Equal(t, 22, e.CloseHour)
}

func TestLookup_UnknownServiceType(t *testing.T) {
	_, ok := Lookup(ServiceType("karaoke"))
	assert.False(t, ok)
}

func TestWindow_MatchesServiceEntries(t *testing.T) {
	for st, e := range services {
		open, close := Window(e.StudioType)
		assert.Equal(t, e.OpenHour, open, "service %s", st)
		assert.Equal(t, e.CloseHour, close, "service %s", st)
		assert.Equal(t, e.DefaultDepartmentID, DefaultDepartment(e.StudioType), "service %s", st)
	}
}
