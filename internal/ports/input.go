package ports

import (
	"context"
	"hue-mcp/internal/domain/model"
)

// LightControlPort is what the tool surface drives.
type LightControlPort interface {
	TurnLightOn(ctx context.Context, name string, brightness float64) error
	TurnLightOff(ctx context.Context, name string) error
	TurnOnRoomLights(ctx context.Context, name string, brightness float64) error
	TurnOffRoomLights(ctx context.Context, name string) error
	ListAllLights(ctx context.Context) ([]string, error)
	ListAllRooms(ctx context.Context) ([]string, error)
}

type BridgeInfoPort interface {
	Describe(ctx context.Context) (*model.BridgeInfo, error)
	Users(ctx context.Context) ([]model.BridgeUser, error)
}
