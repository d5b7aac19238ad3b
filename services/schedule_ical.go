package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/fundraiser-shop/models"
)

// ScheduleICS renders the rotation as an iCalendar feed with one all-day event per date.
func ScheduleICS(events []models.ScheduleEvent, location string, stamp time.Time) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//livingwater//fundraiser-schedule//EN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	writeICSProp(&b, "X-WR-CALNAME", "Living Water fulfillment schedule")

	for _, e := range events {
		day := e.Date.Format("20060102")
		b.WriteString("BEGIN:VEVENT\r\n")
		writeICSProp(&b, "UID", fmt.Sprintf("schedule-%s@livingwater", day))
		writeICSProp(&b, "DTSTAMP", stamp.UTC().Format("20060102T150405Z"))
		writeICSProp(&b, "DTSTART;VALUE=DATE", day)
		writeICSProp(&b, "DTEND;VALUE=DATE", e.Date.AddDate(0, 0, 1).Format("20060102"))
		writeICSProp(&b, "SUMMARY", "Pickup & delivery: "+string(e.Group))
		if location != "" {
			writeICSProp(&b, "LOCATION", location)
		}
		b.WriteString("END:VEVENT\r\n")
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func writeICSProp(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteByte(':')
	b.WriteString(escapeICSText(value))
	b.WriteString("\r\n")
}

func escapeICSText(s string) string {
	r := strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)
	return r.Replace(s)
}
