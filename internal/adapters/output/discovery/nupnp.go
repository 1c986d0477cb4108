package discovery

import (
	"context"
	"time"

	"github.com/amimof/huego"
	"hue-mcp/internal/domain/model"
)

// NUPnPLocator asks the vendor's cloud discovery endpoint which bridges share our public IP.
type NUPnPLocator struct {
	discover func(ctx context.Context) (*huego.Bridge, error)
	timeout  time.Duration
}

func NewNUPnPLocator(timeout time.Duration) *NUPnPLocator {
	return &NUPnPLocator{discover: huego.DiscoverContext, timeout: timeout}
}

func (l *NUPnPLocator) Locate(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	bridge, err := l.discover(ctx)
	if err != nil {
		return "", &model.DiscoveryError{Reason: "n-upnp lookup failed", Err: err}
	}
	if bridge == nil || bridge.Host == "" {
		return "", &model.DiscoveryError{Reason: "n-upnp lookup returned no bridge"}
	}
	return bridge.Host, nil
}
