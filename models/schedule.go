package models

import "time"

// ScheduleEvent assigns a fulfillment date to a volunteer group.
type ScheduleEvent struct {
	Date  time.Time `json:"date"`
	Group GroupName `json:"group"`
}
