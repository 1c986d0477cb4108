package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/shimmeringbee/logwrap"
	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/ports"
)

// StaticLocator returns an address supplied through configuration.
type StaticLocator struct {
	address string
}

func NewStaticLocator(address string) *StaticLocator {
	return &StaticLocator{address: address}
}

func (s *StaticLocator) Locate(ctx context.Context) (string, error) {
	if s.address == "" {
		return "", &model.DiscoveryError{Reason: "no bridge address configured"}
	}
	return s.address, nil
}

type Strategy struct {
	Name    string
	Locator ports.BridgeLocator
}

// Chain tries each strategy in order and returns the first address found.
type Chain struct {
	strategies []Strategy
	logger     logwrap.Logger
}

var _ ports.BridgeLocator = (*Chain)(nil)

func NewChain(logger logwrap.Logger, strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies, logger: logger}
}

func (c *Chain) Locate(ctx context.Context) (string, error) {
	var errs []error

	for _, s := range c.strategies {
		c.logger.LogDebug(ctx, "Looking for bridge.", logwrap.Datum("strategy", s.Name))

		address, err := s.Locator.Locate(ctx)
		if err == nil {
			c.logger.LogInfo(ctx, "Bridge located.", logwrap.Datum("strategy", s.Name), logwrap.Datum("address", address))
			return address, nil
		}

		c.logger.LogDebug(ctx, "Bridge not found.", logwrap.Datum("strategy", s.Name), logwrap.Err(err))
		errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))

		if ctx.Err() != nil {
			break
		}
	}

	return "", &model.DiscoveryError{Reason: "no bridge found", Err: errors.Join(errs...)}
}

// NewLocator builds the locator used by the service: the configured address when
// there is one, otherwise mDNS, then SSDP, then the vendor's N-UPnP lookup.
func NewLocator(cfg *model.Config, logger logwrap.Logger) ports.BridgeLocator {
	if cfg.BridgeAddress != "" {
		return NewStaticLocator(cfg.BridgeAddress)
	}

	return NewChain(logger,
		Strategy{Name: "mdns", Locator: NewMDNSLocator(cfg.DiscoveryTimeout)},
		Strategy{Name: "ssdp", Locator: NewSSDPLocator(cfg.DiscoveryTimeout)},
		Strategy{Name: "nupnp", Locator: NewNUPnPLocator(cfg.DiscoveryTimeout)},
	)
}
