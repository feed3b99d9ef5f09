package economy

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFreePackRemaining(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Skip("tzdata not available")
	}
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cooldown := 3 * time.Hour

	tests := []struct {
		name string
		last *time.Time
		want time.Duration
	}{
		{"never claimed", nil, 0},
		{"two hours ago", ptr(now.Add(-2 * time.Hour)), time.Hour},
		{"exactly cooldown", ptr(now.Add(-3 * time.Hour)), 0},
		{"long ago", ptr(now.Add(-48 * time.Hour)), 0},
		{"stored in another zone", ptr(now.Add(-90 * time.Minute).In(moscow)), 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FreePackRemaining(tt.last, now, cooldown, moscow))
		})
	}
}

func TestCooldownError(t *testing.T) {
	var err error = &CooldownError{Remaining: 3600 * time.Second}

	assert.True(t, errors.Is(err, ErrCooldownActive))

	var ce *CooldownError
	assert.True(t, errors.As(err, &ce))
	assert.InDelta(t, 3600, ce.Remaining.Seconds(), 1)
	assert.Contains(t, err.Error(), "1h0m0s")
}

func ptr(t time.Time) *time.Time { return &t }
