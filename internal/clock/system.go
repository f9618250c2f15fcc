package clock

import (
	"context"
	"time"
)

type SystemClock struct{}

func (SystemClock) Now(_ context.Context) time.Time {
	return time.Now().UTC()
}

func New() Clock { return SystemClock{} }
