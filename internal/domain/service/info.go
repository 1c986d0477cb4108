package service

import (
	"context"

	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/ports"
)

// ConnectionProvider hands out the resolved bridge connection.
type ConnectionProvider interface {
	Connection(ctx context.Context) (model.Connection, error)
}

type InfoService struct {
	provider ConnectionProvider
	admin    ports.BridgeAdminPort
}

var _ ports.BridgeInfoPort = (*InfoService)(nil)

func NewInfoService(provider ConnectionProvider, admin ports.BridgeAdminPort) *InfoService {
	return &InfoService{provider: provider, admin: admin}
}

func (s *InfoService) Describe(ctx context.Context) (*model.BridgeInfo, error) {
	conn, err := s.provider.Connection(ctx)
	if err != nil {
		return nil, err
	}
	return s.admin.GetBridgeInfo(ctx, conn)
}

func (s *InfoService) Users(ctx context.Context) ([]model.BridgeUser, error) {
	conn, err := s.provider.Connection(ctx)
	if err != nil {
		return nil, err
	}
	return s.admin.GetUsers(ctx, conn)
}
