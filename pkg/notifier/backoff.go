package notifier

import (
	"math"
	"math/rand/v2"
	"time"
)

// Backoff returns the wait before a reconnect attempt. attempt starts at 1
// and resets after every successful connection.
type Backoff interface {
	NextInterval(attempt int) time.Duration
}

// FixedBackoff waits the same interval before every attempt.
type FixedBackoff struct {
	Interval time.Duration
}

func (f FixedBackoff) NextInterval(attempt int) time.Duration {
	if f.Interval <= 0 {
		return DefaultReconnectDelay
	}
	return f.Interval
}

// ExponentialBackoff grows the interval by Multiplier per attempt up to
// MaxInterval, with optional jitter. JitterFactor is clamped to [0, 1] so the
// interval never goes negative.
// Formula: min(InitialInterval * Multiplier^(attempt-1) * (1 ± JitterFactor), MaxInterval)
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64
}

func (e ExponentialBackoff) NextInterval(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	initial := e.InitialInterval
	if initial <= 0 {
		initial = DefaultReconnectDelay
	}
	maxInterval := e.MaxInterval
	if maxInterval <= 0 {
		maxInterval = 2 * time.Minute
	}
	multiplier := e.Multiplier
	if multiplier <= 0 {
		multiplier = 2
	}

	interval := float64(initial) * math.Pow(multiplier, float64(attempt-1))
	if jitter := min(e.JitterFactor, 1); jitter > 0 {
		interval *= 1 + (rand.Float64()*2-1)*jitter
	}
	if interval > float64(maxInterval) {
		interval = float64(maxInterval)
	}
	return time.Duration(interval)
}
