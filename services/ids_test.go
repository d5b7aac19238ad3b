package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCartID(t *testing.T) {
	assert.Equal(t, "LW-200123", NewCartID(fixedNow))
	assert.Equal(t, "LW-42", NewCartID(time.UnixMilli(42)))
}

func TestNewOrderID(t *testing.T) {
	id := NewOrderID(fixedNow)
	assert.Regexp(t, regexp.MustCompile(`^order-1709719200123-[0-9a-f]{5}$`), id)
	assert.NotEqual(t, id, NewOrderID(fixedNow))
}
