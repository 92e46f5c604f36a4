package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0", Money(0))
	assert.Equal(t, "$950", Money(950))
	assert.Equal(t, "$5,000", Money(5000))
	assert.Equal(t, "$1,234,567", Money(1234567))
	assert.Equal(t, "$7,500.50", Money(7500.5))
	assert.Equal(t, "-$300", Money(-300))
}

func TestDisplayDate(t *testing.T) {
	assert.Contains(t, DisplayDate("2026-03-14"), "Mar 14, 2026")
	assert.Contains(t, DisplayDate("not-a-date"), "--")
	assert.Contains(t, DisplayDate(""), "--")
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-30*time.Second)))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
}

func TestPrograms(t *testing.T) {
	assert.Equal(t, "Core, Growth", Programs([]string{"Core", "Growth"}))
	assert.Contains(t, Programs(nil), "--")
}
