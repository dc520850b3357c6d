package hue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

var (
	ErrInvalidMethod   = errors.New("invalid http method")
	ErrInvalidResponse = errors.New("response body is not valid json")
)

// Method is one of the HTTP verbs the bridge API understands.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPut    Method = http.MethodPut
	MethodPost   Method = http.MethodPost
	MethodDelete Method = http.MethodDelete
)

func (m Method) valid() bool {
	switch m {
	case MethodGet, MethodPut, MethodPost, MethodDelete:
		return true
	}
	return false
}

// Payload is an optional request body. The zero value is NoBody.
type Payload struct {
	value   any
	present bool
}

var NoBody = Payload{}

// Body wraps v so that it is sent JSON encoded as the request body.
func Body(v any) Payload {
	return Payload{value: v, present: true}
}

func (p Payload) Present() bool {
	return p.present
}

func (p Payload) encode() (io.Reader, error) {
	if !p.present {
		return nil, nil
	}
	b, err := json.Marshal(p.value)
	if err != nil {
		return nil, fmt.Errorf("error encoding request body: %w", err)
	}
	return bytes.NewReader(b), nil
}

// Requester sends a single request and returns the parsed JSON response.
type Requester interface {
	Do(ctx context.Context, method Method, url string, payload Payload) (json.RawMessage, error)
}

// Transport is the Requester used against a real bridge.
type Transport struct {
	client *http.Client
	logger *log.Logger
}

func NewTransport(logger *log.Logger, timeout time.Duration) *Transport {
	return NewTransportWithClient(logger, &http.Client{Timeout: timeout})
}

func NewTransportWithClient(logger *log.Logger, client *http.Client) *Transport {
	return &Transport{client: client, logger: logger}
}

func (t *Transport) Do(ctx context.Context, method Method, url string, payload Payload) (json.RawMessage, error) {
	if !method.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, string(method))
	}

	body, err := payload.encode()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, string(method), url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	if payload.Present() {
		req.Header.Set("Content-Type", "application/json")
	}

	t.logger.Debug("Bridge request", "method", method, "url", url, "body", payload.Present())

	// make the request
	resp, err := t.client.Do(req)
	if err != nil {
		t.logger.Debug("Bridge request failed", "method", method, "url", url, "err", err)
		return nil, fmt.Errorf("error making %s request to %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	// status codes are not inspected, bridge errors arrive in the body
	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from %s: %w", url, err)
	}
	if !json.Valid(responseBody) {
		t.logger.Debug("Invalid bridge response", "url", url, "status", resp.Status)
		return nil, fmt.Errorf("%w: %s %s (%s)", ErrInvalidResponse, method, url, resp.Status)
	}

	return json.RawMessage(responseBody), nil
}
