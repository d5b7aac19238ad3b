package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const cartIDPrefix = "LW-"

// NewCartID builds the human-readable order number: "LW-" plus the last six digits
// of the unix-millisecond clock. Roughly chronological, not globally unique.
func NewCartID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return cartIDPrefix + ms
}

// NewOrderID builds the internal order identifier: "order-<unix ms>-<5 random chars>".
func NewOrderID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
	return fmt.Sprintf("order-%d-%s", now.UnixMilli(), suffix)
}
