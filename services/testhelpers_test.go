package services

import (
	"time"
)

// 2024-03-06 is a Wednesday.
var fixedNow = time.Date(2024, 3, 6, 10, 0, 0, 123_000_000, time.UTC)

func fixedClock() time.Time { return fixedNow }

type recordedEvent struct {
	name string
	data interface{}
}

type recordingPublisher struct {
	events []recordedEvent
}

func (p *recordingPublisher) Publish(event string, data interface{}) {
	p.events = append(p.events, recordedEvent{name: event, data: data})
}
