package hue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/mdns"
	"github.com/samber/lo"
)

const mdnsService = "_hue._tcp"

// mdnsQuery is swapped out in tests
var mdnsQuery = mdns.Query

// DiscoverLocal browses the local network for bridges advertising over mDNS.
func DiscoverLocal(ctx context.Context, logger *log.Logger, timeout time.Duration) ([]BridgeDescriptor, error) {
	entries := make(chan *mdns.ServiceEntry, 10)
	errc := make(chan error, 1)

	go func() {
		defer close(entries)
		errc <- mdnsQuery(&mdns.QueryParam{
			Service:             mdnsService,
			Domain:              "local",
			Timeout:             timeout,
			Entries:             entries,
			DisableIPv6:         true,
			WantUnicastResponse: true,
		})
	}()

	var bridges []BridgeDescriptor
	for {
		select {
		case <-ctx.Done():
			go func() {
				for range entries {
				}
			}()
			return bridges, ctx.Err()
		case entry, ok := <-entries:
			if !ok {
				if err := <-errc; err != nil {
					return bridges, fmt.Errorf("error browsing for bridges: %w", err)
				}
				return bridges, nil
			}
			if entry.AddrV4 == nil {
				continue
			}
			logger.Debug("Found bridge via mDNS", "name", entry.Name, "address", entry.AddrV4)
			bridges = append(bridges, BridgeDescriptor{
				ID:                entry.Name,
				InternalIPAddress: entry.AddrV4.String(),
				Port:              entry.Port,
			})
		}
	}
}

// Discover combines portal and mDNS discovery. Portal results come first and
// duplicates are dropped by address. It only fails if both sources fail.
func Discover(ctx context.Context, logger *log.Logger, portal *Portal, timeout time.Duration) ([]BridgeDescriptor, error) {
	remote, remoteErr := portal.Bridges(ctx)
	if remoteErr != nil {
		logger.Warn("Portal discovery failed", "err", remoteErr)
	}

	local, localErr := DiscoverLocal(ctx, logger, timeout)
	if localErr != nil {
		logger.Warn("Local discovery failed", "err", localErr)
	}

	if remoteErr != nil && localErr != nil {
		return nil, errors.Join(remoteErr, localErr)
	}

	all := append(remote, local...)
	all = lo.Filter(all, func(b BridgeDescriptor, _ int) bool { return b.InternalIPAddress != "" })
	return lo.UniqBy(all, func(b BridgeDescriptor) string { return b.InternalIPAddress }), nil
}
