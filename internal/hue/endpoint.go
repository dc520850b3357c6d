package hue

import (
	"context"
	"encoding/json"
)

// RequestFunc issues a request to url with an optional payload.
type RequestFunc func(ctx context.Context, url string, payload Payload) (json.RawMessage, error)

// Verb binds a Requester to a single HTTP method.
type Verb struct {
	requester Requester
	method    Method
}

func NewVerb(requester Requester, method Method) Verb {
	return Verb{requester: requester, method: method}
}

func (v Verb) Request(ctx context.Context, url string, payload Payload) (json.RawMessage, error) {
	return v.requester.Do(ctx, v.method, url, payload)
}

// Endpoint is a request whose URL is derived from a resource identifier.
type Endpoint struct {
	request RequestFunc
	url     URLFunc
}

func NewEndpoint(request RequestFunc, url URLFunc) Endpoint {
	return Endpoint{request: request, url: url}
}

// Call resolves the URL for id and forwards the payload to the bound request.
func (e Endpoint) Call(ctx context.Context, id string, payload Payload) (json.RawMessage, error) {
	return e.request(ctx, e.url(id), payload)
}

// verbs groups the four methods bound to one Requester.
type verbs struct {
	get, put, post, del Verb
}

func newVerbs(requester Requester) verbs {
	return verbs{
		get:  NewVerb(requester, MethodGet),
		put:  NewVerb(requester, MethodPut),
		post: NewVerb(requester, MethodPost),
		del:  NewVerb(requester, MethodDelete),
	}
}
