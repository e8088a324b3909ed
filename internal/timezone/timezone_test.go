package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Marte/Cratera").String())
	assert.Equal(t, "America/Manaus", Location("America/Manaus").String())
}

func TestStartOfDay(t *testing.T) {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	in := time.Date(2030, 1, 7, 15, 42, 9, 123, loc)

	out := StartOfDay(in, loc)

	assert.Equal(t, 2030, out.Year())
	assert.Equal(t, time.January, out.Month())
	assert.Equal(t, 7, out.Day())
	assert.Equal(t, 0, out.Hour())
	assert.Equal(t, 0, out.Minute())
	assert.Equal(t, loc, out.Location())
}
