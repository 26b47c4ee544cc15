package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollingWindowAvg(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(4)

	// WHEN
	for _, value := range []float64{40, 50, 60, 70} {
		window.Append(value)
	}

	// THEN
	assert.Equal(t, 55.0, GetWindowAvg(window))
}

func TestRollingWindowMax(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(10)
	FillWindow(window, 10, 42.0)

	// WHEN
	window.Append(99.0)

	// THEN
	assert.Equal(t, 99.0, GetWindowMax(window))
}
