package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	assert.True(t, Date("2026-03-02"))
	assert.False(t, Date("02/03/2026"))
	assert.False(t, Date("2026-13-01"))
	assert.False(t, Date(""))
}

func TestClockTime(t *testing.T) {
	assert.True(t, ClockTime("09:00:00"))
	assert.True(t, ClockTime("23:59:59"))
	assert.False(t, ClockTime("9:00"))
	assert.False(t, ClockTime("25:00:00"))
}

func TestEmail(t *testing.T) {
	assert.True(t, Email("ada.reyes@example.com"))
	assert.False(t, Email("ada.reyes"))
	assert.False(t, Email("@example.com"))
	assert.False(t, Email(""))
}

func TestNonEmpty(t *testing.T) {
	assert.True(t, NonEmpty("x"))
	assert.False(t, NonEmpty("   "))
	assert.False(t, NonEmpty(""))
}

func TestNumeric(t *testing.T) {
	assert.True(t, Numeric("8.5"))
	assert.True(t, Numeric(" 42 "))
	assert.False(t, Numeric("8,5"))
	assert.False(t, Numeric("n/a"))
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(5, 1, 10))
	assert.True(t, InRange(1, 1, 10))
	assert.True(t, InRange(10, 1, 10))
	assert.False(t, InRange(0.99, 1, 10))
	assert.False(t, InRange(10.01, 1, 10))
}
