package discovery

import (
	"context"
	"time"

	"github.com/grandcat/zeroconf"
	"hue-mcp/internal/domain/model"
)

const (
	hueService = "_hue._tcp"
	mdnsDomain = "local."
)

type browseFunc func(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error

// MDNSLocator browses for the bridge's _hue._tcp announcement and takes the first answer.
type MDNSLocator struct {
	browse  browseFunc
	timeout time.Duration
}

func NewMDNSLocator(timeout time.Duration) *MDNSLocator {
	return &MDNSLocator{browse: zeroconfBrowse, timeout: timeout}
}

func zeroconfBrowse(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return err
	}
	return resolver.Browse(ctx, service, domain, entries)
}

func (l *MDNSLocator) Locate(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	// Cancelling stops the browse.
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry, 8)
	if err := l.browse(ctx, hueService, mdnsDomain, entries); err != nil {
		return "", &model.DiscoveryError{Reason: "mdns browse failed", Err: err}
	}

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return "", &model.DiscoveryError{Reason: "no bridge announced over mdns"}
			}
			if address := entryAddress(entry); address != "" {
				return address, nil
			}
		case <-ctx.Done():
			return "", &model.DiscoveryError{Reason: "no bridge announced over mdns", Err: ctx.Err()}
		}
	}
}

func entryAddress(entry *zeroconf.ServiceEntry) string {
	if entry == nil {
		return ""
	}
	if len(entry.AddrIPv4) > 0 {
		return entry.AddrIPv4[0].String()
	}
	if len(entry.AddrIPv6) > 0 {
		return "[" + entry.AddrIPv6[0].String() + "]"
	}
	return ""
}
