package logger

import (
	"fmt"
	"os"
	"time"
)

//DebugEnv enables default logger
const DebugEnv = "XMEMBER_DEBUG"

type Adapter struct {
	resolved Resolved
	notFound NotFound
	accessed Accessed
}

func (l *Adapter) Resolved(name, scope string, start, declaring fmt.Stringer) {
	if l == nil || l.resolved == nil {
		return
	}
	l.resolved(name, scope, asString(start), asString(declaring))
}

func (l *Adapter) NotFound(name string, start, expected fmt.Stringer) {
	if l == nil || l.notFound == nil {
		return
	}
	l.notFound(name, asString(start), asString(expected))
}

func (l *Adapter) Accessed(operation string, declaring fmt.Stringer, name string, started time.Time, err error) {
	if l == nil || l.accessed == nil {
		return
	}
	l.accessed(operation, asString(declaring), name, time.Since(started), err)
}

func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}

	return &Adapter{
		resolved: logger.Resolved(),
		notFound: logger.NotFound(),
		accessed: logger.Accessed(),
	}
}

func Default() *Adapter {
	if os.Getenv(DebugEnv) == "" {
		return NewLogger(nil)
	}
	return NewLogger(&defaultLogger{})
}

func asString(value fmt.Stringer) string {
	if value == nil {
		return ""
	}
	return value.String()
}
