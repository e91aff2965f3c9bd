package jira

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestBasicAuthInterceptor(t *testing.T) {
	t.Parallel()

	req, _ := http.NewRequest(http.MethodGet, "https://jira.example.com/rest/api/2/serverInfo", nil)
	req = BasicAuthInterceptor("u", "p")(req)

	got := req.Header.Get("Authorization")
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("u:p"))

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got != "Basic dTpw" {
		t.Errorf("expected 'Basic dTpw', got %q", got)
	}
}

func TestClientCredentialsInterceptor(t *testing.T) {
	t.Parallel()

	req, _ := http.NewRequest(http.MethodGet, "https://jira.example.com/", nil)
	req = ClientCredentialsInterceptor("abc", "xyz")(req)

	want := `{ "client_id": "abc", "client_secret": "xyz" }`
	if got := req.Header.Get("Authorization"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestClientCredentialsInterceptor_ValuesNotEscaped(t *testing.T) {
	t.Parallel()

	req, _ := http.NewRequest(http.MethodGet, "https://jira.example.com/", nil)
	req = ClientCredentialsInterceptor(`a"b`, `x\y`)(req)

	want := `{ "client_id": "a"b", "client_secret": "x\y" }`
	if got := req.Header.Get("Authorization"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestInterceptorTransport_PassThrough(t *testing.T) {
	t.Parallel()

	interceptors := map[string]Interceptor{
		"basic":              BasicAuthInterceptor("user", "pass"),
		"client credentials": ClientCredentialsInterceptor("abc", "xyz"),
	}

	for name, intercept := range interceptors {
		intercept := intercept
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var captured *http.Request
			var capturedBody string
			want := &http.Response{StatusCode: http.StatusTeapot, Body: http.NoBody}

			base := roundTripFunc(func(req *http.Request) (*http.Response, error) {
				captured = req
				b, _ := io.ReadAll(req.Body)
				capturedBody = string(b)
				return want, nil
			})

			req, _ := http.NewRequest(http.MethodPut, "https://jira.example.com/rest/api/2/issue/ALR-1", strings.NewReader(`{"a":1}`))
			req.Header.Set("X-Custom", "custom-value")
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "stale")

			resp, err := NewInterceptorTransport(intercept, base).RoundTrip(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if resp != want {
				t.Error("expected downstream response to be returned unchanged")
			}

			if captured.Method != http.MethodPut {
				t.Errorf("expected method=PUT, got %s", captured.Method)
			}

			if captured.URL.String() != req.URL.String() {
				t.Errorf("expected URL=%s, got %s", req.URL, captured.URL)
			}

			if capturedBody != `{"a":1}` {
				t.Errorf("expected body to be forwarded, got %q", capturedBody)
			}

			if captured.Header.Get("X-Custom") != "custom-value" {
				t.Errorf("expected X-Custom=custom-value, got %s", captured.Header.Get("X-Custom"))
			}

			if captured.Header.Get("Content-Type") != "application/json" {
				t.Errorf("expected Content-Type=application/json, got %s", captured.Header.Get("Content-Type"))
			}

			if values := captured.Header.Values("Authorization"); len(values) != 1 || values[0] == "stale" {
				t.Errorf("expected exactly one overwritten Authorization header, got %v", values)
			}

			if req.Header.Get("Authorization") != "stale" {
				t.Error("original request must not be modified")
			}
		})
	}
}

func TestInterceptorTransport_PropagatesError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("connection reset")
	base := roundTripFunc(func(_ *http.Request) (*http.Response, error) {
		return nil, wantErr
	})

	req, _ := http.NewRequest(http.MethodGet, "https://jira.example.com/", nil)

	_, err := NewInterceptorTransport(BasicAuthInterceptor("u", "p"), base).RoundTrip(req)

	if err != wantErr {
		t.Errorf("expected error to be returned unchanged, got %v", err)
	}
}

func TestInterceptorTransport_NilInterceptor(t *testing.T) {
	t.Parallel()

	req, _ := http.NewRequest(http.MethodGet, "https://jira.example.com/", nil)

	_, err := (&InterceptorTransport{}).RoundTrip(req)

	if err == nil || err.Error() != "jira: interceptor is nil" {
		t.Errorf("unexpected error: %v", err)
	}
}

type closeTrackingBody struct {
	io.Reader
	closed bool
}

func (b *closeTrackingBody) Close() error {
	b.closed = true
	return nil
}

func TestInterceptorTransport_NilInterceptorClosesBody(t *testing.T) {
	t.Parallel()

	body := &closeTrackingBody{Reader: strings.NewReader(`{"a":1}`)}
	req, _ := http.NewRequest(http.MethodPost, "https://jira.example.com/", body)

	if _, err := (&InterceptorTransport{}).RoundTrip(req); err == nil {
		t.Fatal("expected error for nil interceptor")
	}

	if !body.closed {
		t.Error("expected request body to be closed")
	}
}

func TestNewInterceptorTransport_DefaultBase(t *testing.T) {
	t.Parallel()

	transport := NewInterceptorTransport(BasicAuthInterceptor("u", "p"), nil)

	if transport.Base != http.DefaultTransport {
		t.Error("expected base to default to http.DefaultTransport")
	}
}
