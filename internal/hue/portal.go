package hue

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

const DefaultDiscoveryURL = "https://discovery.meethue.com/"

// Portal is the entry point to the resource graph.
type Portal struct {
	requester    Requester
	logger       *log.Logger
	discoveryURL string
	verbs        verbs
}

func NewPortal(logger *log.Logger, requester Requester, discoveryURL string) *Portal {
	if discoveryURL == "" {
		discoveryURL = DefaultDiscoveryURL
	}
	return &Portal{
		requester:    requester,
		logger:       logger,
		discoveryURL: discoveryURL,
		verbs:        newVerbs(requester),
	}
}

// Bridges asks the discovery endpoint for bridges on the caller's network.
func (p *Portal) Bridges(ctx context.Context) ([]BridgeDescriptor, error) {
	bridges, err := Decode[[]BridgeDescriptor](p.verbs.get.Request(ctx, p.discoveryURL, NoBody))
	if err != nil {
		return nil, fmt.Errorf("error discovering bridges: %w", err)
	}
	p.logger.Debug("Discovered bridges", "total", len(bridges))
	return bridges, nil
}

func (p *Portal) Bridge(address string) *Bridge {
	return NewBridge(p.logger, p.requester, address)
}
