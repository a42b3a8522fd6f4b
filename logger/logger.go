package logger

import (
	"time"
)

type Resolved func(name, scope, start, declaring string)
type NotFound func(name, start, expected string)
type Accessed func(operation, declaring, name string, elapsed time.Duration, err error)

type Logger interface {
	Resolved() Resolved
	NotFound() NotFound
	Accessed() Accessed
}
