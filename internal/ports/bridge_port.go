package ports

import (
	"context"
	"encoding/json"
	"hue-mcp/internal/domain/model"
)

// ResourceOperations is generic CRUD over the bridge's CLIP v2 resource collections.
type ResourceOperations interface {
	List(ctx context.Context, kind model.ResourceKind) ([]json.RawMessage, error)
	Get(ctx context.Context, kind model.ResourceKind, id string) (json.RawMessage, error)
	Create(ctx context.Context, kind model.ResourceKind, body interface{}) ([]model.ResourceRef, error)
	Update(ctx context.Context, kind model.ResourceKind, id string, body interface{}) ([]model.ResourceRef, error)
	Delete(ctx context.Context, kind model.ResourceKind, id string) ([]model.ResourceRef, error)
}

// ResourceClientFactory builds a resource client once a connection has been resolved.
type ResourceClientFactory func(conn model.Connection) ResourceOperations

// BridgeAdminPort reads bridge configuration through the legacy API.
type BridgeAdminPort interface {
	GetBridgeInfo(ctx context.Context, conn model.Connection) (*model.BridgeInfo, error)
	GetUsers(ctx context.Context, conn model.Connection) ([]model.BridgeUser, error)
}
