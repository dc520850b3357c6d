package hue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
)

// Bridge is bound to a single bridge address.
type Bridge struct {
	requester Requester
	logger    *log.Logger
	address   string
	url       string
	verbs     verbs
}

func NewBridge(logger *log.Logger, requester Requester, address string) *Bridge {
	return &Bridge{
		requester: requester,
		logger:    logger,
		address:   address,
		url:       fmt.Sprintf("http://%s/api", address),
		verbs:     newVerbs(requester),
	}
}

func (b *Bridge) Address() string {
	return b.address
}

func (b *Bridge) URL() string {
	return b.url
}

// CreateUser registers a new application on the bridge. The link button on the
// bridge must have been pressed, otherwise the response carries an error.
func (b *Bridge) CreateUser(ctx context.Context, deviceType string) (json.RawMessage, error) {
	b.logger.Debug("Creating bridge user", "bridge", b.address, "devicetype", deviceType)
	return b.verbs.post.Request(ctx, b.url, Body(createUserRequest{DeviceType: deviceType}))
}

func (b *Bridge) User(username string) *User {
	return newUser(b, username)
}
