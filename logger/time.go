package logger

import (
	"time"
)

//TimeLogger logs member access slower than threshold
type TimeLogger struct {
	threshold     time.Duration
	defaultLogger defaultLogger
}

func NewTimeLogger(threshold time.Duration) *TimeLogger {
	return &TimeLogger{
		threshold: threshold,
	}
}

func (t *TimeLogger) Resolved() Resolved {
	return nil
}

func (t *TimeLogger) NotFound() NotFound {
	return nil
}

func (t *TimeLogger) Accessed() Accessed {
	return func(operation, declaring, name string, elapsed time.Duration, err error) {
		if elapsed < t.threshold && err == nil {
			return
		}

		t.defaultLogger.logAccessed(operation, declaring, name, elapsed, err)
	}
}
