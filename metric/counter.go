package metric

import (
	"time"

	"github.com/viant/gmetric/counter"
)

type Counter interface {
	Begin(started time.Time) counter.OnDone
}

func NewCounter(counter Counter) *CounterAdapter {
	return &CounterAdapter{
		counter: counter,
	}
}

type CounterAdapter struct {
	counter Counter
}

func (c *CounterAdapter) Begin(started time.Time) counter.OnDone {
	if c == nil || c.counter == nil {
		return nopOnDone
	}

	return c.counter.Begin(started)
}

//Done completes operation, error is counted when present
func Done(onDone counter.OnDone, err error) {
	if err != nil {
		onDone(time.Now(), err)
		return
	}
	onDone(time.Now())
}

func nopOnDone(_ time.Time, _ ...interface{}) int64 {
	return 0
}
