package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock(t *testing.T) {
	now := NewSystemClock().Now()
	assert.Equal(t, "UTC", now.Location().String())
}
