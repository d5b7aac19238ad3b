package services

import (
	"sync"
	"time"

	"github.com/yeremiapane/fundraiser-shop/models"
)

const DefaultScheduleWeeks = 8

// GenerateUpcoming lists the next count fulfillment days strictly after now, each assigned
// to GroupNames[i % len(GroupNames)]. Dates are midnight in now's location.
func GenerateUpcoming(now time.Time, count int, weekday time.Weekday) []models.ScheduleEvent {
	events := make([]models.ScheduleEvent, 0, count)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for len(events) < count {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() != weekday {
			continue
		}
		events = append(events, models.ScheduleEvent{
			Date:  day,
			Group: models.GroupNames[len(events)%len(models.GroupNames)],
		})
	}
	return events
}

// ScheduleService holds the rotation generated for the current session.
// It is display-only: order group assignment never reads it.
type ScheduleService struct {
	mu      sync.Mutex
	now     func() time.Time
	count   int
	weekday time.Weekday
	events  []models.ScheduleEvent
}

func NewScheduleService(now func() time.Time, count int, weekday time.Weekday) *ScheduleService {
	if now == nil {
		now = time.Now
	}
	if count <= 0 {
		count = DefaultScheduleWeeks
	}
	s := &ScheduleService{now: now, count: count, weekday: weekday}
	s.Refresh()
	return s
}

// Refresh regenerates the rotation from the current time.
func (s *ScheduleService) Refresh() {
	events := GenerateUpcoming(s.now(), s.count, s.weekday)

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
}

// Upcoming returns the rotation, regenerating it once the first stored date is no longer
// after today.
func (s *ScheduleService) Upcoming() []models.ScheduleEvent {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.events) > 0 && !now.Before(s.events[0].Date) {
		s.events = GenerateUpcoming(now, s.count, s.weekday)
	}

	out := make([]models.ScheduleEvent, len(s.events))
	copy(out, s.events)
	return out
}
