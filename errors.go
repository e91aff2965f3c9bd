package jira

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidArgument is returned by the [Builder] setters and the
	// [Client] operations when a required argument is empty.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingConfig matches every [MissingConfigError].
	ErrMissingConfig = errors.New("missing configuration")
)

// MissingConfigError reports a configuration key that [Builder.LoadDefaults]
// required but could not resolve.
type MissingConfigError struct {
	Key string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s is not set", e.Key)
}

func (e *MissingConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

func invalidArgument(name string) error {
	return fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, name)
}

// ResponseError is returned when Jira answers with a non-2xx status.
type ResponseError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func newResponseError(method, path string, statusCode int, body []byte) *ResponseError {
	return &ResponseError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Message:    extractErrorMessage(body),
	}
}

// extractErrorMessage prefers the messages of a Jira error collection,
// {"errorMessages": [...], "errors": {"field": "..."}}, then a plain
// "error" or "message" field, then the raw body.
func extractErrorMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return "(empty error body)"
	}

	if !gjson.Valid(raw) {
		return raw
	}

	var messages []string

	for _, msg := range gjson.Get(raw, "errorMessages").Array() {
		if s := strings.TrimSpace(msg.String()); s != "" {
			messages = append(messages, s)
		}
	}

	gjson.Get(raw, "errors").ForEach(func(field, msg gjson.Result) bool {
		if s := strings.TrimSpace(msg.String()); s != "" {
			messages = append(messages, field.String()+": "+s)
		}
		return true
	})

	if len(messages) > 0 {
		return strings.Join(messages, "; ")
	}

	for _, path := range []string{"error", "message"} {
		if s := strings.TrimSpace(gjson.Get(raw, path).String()); s != "" {
			return s
		}
	}

	return raw
}
