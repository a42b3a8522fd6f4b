package logger

import (
	"fmt"
	"time"
)

type defaultLogger struct {
}

func (d *defaultLogger) Resolved() Resolved {
	return func(name, scope, start, declaring string) {
		fmt.Printf("[LOGGER] resolved %v member %v from %v on %v \n", scope, name, start, declaring)
	}
}

func (d *defaultLogger) NotFound() NotFound {
	return func(name, start, expected string) {
		if expected != "" {
			name = expected + " " + name
		}
		fmt.Printf("[LOGGER] member %v is not found from %v \n", name, start)
	}
}

func (d *defaultLogger) Accessed() Accessed {
	return d.logAccessed
}

func (d *defaultLogger) logAccessed(operation, declaring, name string, elapsed time.Duration, err error) {
	fmt.Printf("[LOGGER] %v %v.%v took %v, err: %v \n", operation, declaring, name, elapsed, err)
}
