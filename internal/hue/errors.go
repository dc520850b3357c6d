package hue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/amimof/huego"
)

// bridge error types, see the bridge's error message reference
const (
	ErrorTypeUnauthorized      = 1
	ErrorTypeInvalidJSON       = 2
	ErrorTypeResourceMissing   = 3
	ErrorTypeLinkButtonPressed = 101
)

// errorEntry mirrors huego.APIResponse, whose decoder panics on missing fields.
type errorEntry struct {
	Error *struct {
		Type        int    `json:"type"`
		Address     string `json:"address"`
		Description string `json:"description"`
	} `json:"error"`
}

// BridgeError collects the error entries of a bridge response.
type BridgeError struct {
	Errors []huego.APIError
}

func (e *BridgeError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for i := range e.Errors {
		msgs = append(msgs, e.Errors[i].Error())
	}
	return fmt.Sprintf("bridge returned %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// HasType reports whether any entry has the given bridge error type.
func (e *BridgeError) HasType(t int) bool {
	for _, apiErr := range e.Errors {
		if apiErr.Type == t {
			return true
		}
	}
	return false
}

// CheckResponse inspects a raw bridge response for error entries. Only array
// responses can carry them; anything else yields nil.
func CheckResponse(raw json.RawMessage) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidResponse, err)
	}

	var found []huego.APIError
	for _, entry := range entries {
		if !bytes.Contains(entry, []byte(`"error"`)) {
			continue
		}
		var resp errorEntry
		if err := json.Unmarshal(entry, &resp); err != nil {
			return fmt.Errorf("%w: error parsing bridge error entry: %s", ErrInvalidResponse, err)
		}
		if resp.Error != nil {
			found = append(found, huego.APIError{
				Type:        resp.Error.Type,
				Address:     resp.Error.Address,
				Description: resp.Error.Description,
			})
		}
	}

	if len(found) == 0 {
		return nil
	}
	return &BridgeError{Errors: found}
}

func IsUnauthorized(err error) bool {
	var bridgeErr *BridgeError
	return errors.As(err, &bridgeErr) && bridgeErr.HasType(ErrorTypeUnauthorized)
}

// Decode unmarshals a raw response into T. It accepts a request's results
// directly so calls can be wrapped: Decode[T](user.GetLight(ctx, id)).
func Decode[T any](raw json.RawMessage, err error) (T, error) {
	var v T
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("error parsing bridge response: %w", err)
	}
	return v, nil
}
