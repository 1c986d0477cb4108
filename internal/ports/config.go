package ports

import (
	"context"
	"hue-mcp/internal/domain/model"
)

// CredentialRepository persists the bridge credentials. Get returns nil, nil when
// nothing usable is stored.
type CredentialRepository interface {
	Get(ctx context.Context) (*model.Credentials, error)
	Save(ctx context.Context, creds *model.Credentials) error
}

type Registrar interface {
	Register(ctx context.Context, address, deviceType string) (*model.Credentials, error)
}
