package legacy

import (
	"context"
	"fmt"
	"sort"

	"github.com/amimof/huego"
	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/ports"
)

// Admin reads bridge configuration from /api/{username}/config through huego.
type Admin struct{}

var _ ports.BridgeAdminPort = (*Admin)(nil)

func NewAdmin() *Admin {
	return &Admin{}
}

func (a *Admin) bridge(conn model.Connection) *huego.Bridge {
	return huego.New(conn.Address, conn.Credentials.Username)
}

func (a *Admin) GetBridgeInfo(ctx context.Context, conn model.Connection) (*model.BridgeInfo, error) {
	cfg, err := a.bridge(conn).GetConfigContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading bridge config: %w", err)
	}

	address := cfg.IPAddress
	if address == "" {
		address = conn.Address
	}

	return &model.BridgeInfo{
		Name:            cfg.Name,
		BridgeID:        cfg.BridgeID,
		ModelID:         cfg.ModelID,
		SoftwareVersion: cfg.SwVersion,
		APIVersion:      cfg.APIVersion,
		Address:         address,
	}, nil
}

func (a *Admin) GetUsers(ctx context.Context, conn model.Connection) ([]model.BridgeUser, error) {
	// The whitelist is part of the config; huego fills Username from its keys.
	cfg, err := a.bridge(conn).GetConfigContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading bridge whitelist: %w", err)
	}

	users := make([]model.BridgeUser, 0, len(cfg.Whitelist))
	for _, w := range cfg.Whitelist {
		users = append(users, model.BridgeUser{
			Username:    w.Username,
			Name:        w.Name,
			CreateDate:  w.CreateDate,
			LastUseDate: w.LastUseDate,
		})
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}
