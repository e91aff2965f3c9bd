package jira

import "github.com/go-resty/resty/v2"

// RequestLogger is the interface used by [Builder] and [Client] for logging
// HTTP requests and errors. It has the same method set as [resty.Logger], so
// the value supplied via [WithRequestLogger] is also handed to resty.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

var _ resty.Logger = RequestLogger(nil)

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [NewBuilder].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
