package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff_Doubles(t *testing.T) {
	base := 3 * time.Second
	want := map[int]time.Duration{
		-2: 3 * time.Second,
		0:  3 * time.Second,
		1:  6 * time.Second,
		2:  12 * time.Second,
		3:  24 * time.Second,
		4:  maxBackoff, // 48s
		12: maxBackoff,
	}
	for failures, d := range want {
		assert.Equal(t, d, calculateBackoff(failures, base), "failures=%d", failures)
	}
}

func TestCalculateBackoff_NeverExceedsCap(t *testing.T) {
	for _, base := range []time.Duration{time.Second, defaultRetryInterval, 20 * time.Second} {
		for failures := 0; failures <= 64; failures++ {
			assert.LessOrEqual(t, calculateBackoff(failures, base), maxBackoff)
		}
	}
}

func TestCalculateBackoff_BaseAboveCap(t *testing.T) {
	// The first attempt keeps a configured interval longer than the cap.
	assert.Equal(t, time.Minute, calculateBackoff(0, time.Minute))
	assert.Equal(t, maxBackoff, calculateBackoff(1, time.Minute))
}
