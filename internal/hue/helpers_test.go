package hue_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/wheelibin/hueportal/internal/hue"
	"github.com/wheelibin/hueportal/internal/logging"
)

type recordedRequest struct {
	Method      string
	Path        string
	Body        string
	ContentType string
}

// fakeBridge records every request and answers with a fixed response body.
type fakeBridge struct {
	server   *httptest.Server
	response string

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeBridge(t *testing.T, response string) *fakeBridge {
	t.Helper()
	fb := &fakeBridge{response: response}
	fb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.requests = append(fb.requests, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Body:        string(body),
			ContentType: r.Header.Get("Content-Type"),
		})
		fb.mu.Unlock()
		_, _ = io.WriteString(w, fb.response)
	}))
	t.Cleanup(fb.server.Close)
	return fb
}

func (fb *fakeBridge) address() string {
	return strings.TrimPrefix(fb.server.URL, "http://")
}

func (fb *fakeBridge) recorded() []recordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]recordedRequest(nil), fb.requests...)
}

func (fb *fakeBridge) transport() *hue.Transport {
	return hue.NewTransportWithClient(logging.Discard(), fb.server.Client())
}

func (fb *fakeBridge) bridge() *hue.Bridge {
	return hue.NewBridge(logging.Discard(), fb.transport(), fb.address())
}
