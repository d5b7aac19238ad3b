package Controllers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchedule(t *testing.T) {
	app := setupApp(t)

	w, env := app.do(t, http.MethodGet, "/schedule", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var events []struct {
		Date  time.Time `json:"date"`
		Group string    `json:"group"`
	}
	decode(t, env.Data, &events)
	require.Len(t, events, 8)
	assert.Equal(t, time.Sunday, events[0].Date.Weekday())
	assert.Equal(t, "Group A (Pathfinders)", events[0].Group)
	assert.Equal(t, "Group A (Pathfinders)", events[4].Group)
}

func TestGetScheduleICS(t *testing.T) {
	app := setupApp(t)

	w, _ := app.do(t, http.MethodGet, "/schedule.ics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/calendar"))
	assert.Equal(t, 8, strings.Count(w.Body.String(), "BEGIN:VEVENT"))
	assert.Contains(t, w.Body.String(), "LOCATION:Fellowship Hall")
}
