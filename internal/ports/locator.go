package ports

import "context"

type BridgeLocator interface {
	Locate(ctx context.Context) (string, error)
}
