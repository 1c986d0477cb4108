package service

import (
	"context"
	"strings"

	"github.com/shimmeringbee/logwrap"
	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/domain/resource"
	"hue-mcp/internal/ports"
)

// ResourceProvider hands out a resource client for the current bridge session.
type ResourceProvider interface {
	Resources(ctx context.Context) (ports.ResourceOperations, error)
}

// ControlService resolves human names to bridge resources and switches them. Every
// lookup fetches fresh lists from the bridge.
type ControlService struct {
	provider ResourceProvider
	logger   logwrap.Logger
}

var _ ports.LightControlPort = (*ControlService)(nil)

func NewControlService(provider ResourceProvider, logger logwrap.Logger) *ControlService {
	return &ControlService{provider: provider, logger: logger}
}

// FindLightByName matches the display name exactly, including case.
func (s *ControlService) FindLightByName(ctx context.Context, name string) (*model.Light, error) {
	ops, err := s.provider.Resources(ctx)
	if err != nil {
		return nil, err
	}

	lights, err := resource.ListLights(ctx, ops)
	if err != nil {
		return nil, err
	}

	for i := range lights {
		if lights[i].Name == name {
			return &lights[i], nil
		}
	}
	return nil, &model.NotFoundError{Kind: model.KindLight, Name: name}
}

// FindRoomByName matches the display name ignoring case.
func (s *ControlService) FindRoomByName(ctx context.Context, name string) (*model.Room, error) {
	ops, err := s.provider.Resources(ctx)
	if err != nil {
		return nil, err
	}

	rooms, err := resource.ListRooms(ctx, ops)
	if err != nil {
		return nil, err
	}

	for i := range rooms {
		if strings.EqualFold(rooms[i].Name, name) {
			return &rooms[i], nil
		}
	}
	return nil, &model.NotFoundError{Kind: model.KindRoom, Name: name}
}

func (s *ControlService) TurnLightOn(ctx context.Context, name string, brightness float64) error {
	return s.switchLight(ctx, name, true, &brightness)
}

func (s *ControlService) TurnLightOff(ctx context.Context, name string) error {
	return s.switchLight(ctx, name, false, nil)
}

func (s *ControlService) TurnOnRoomLights(ctx context.Context, name string, brightness float64) error {
	return s.switchRoom(ctx, name, true, &brightness)
}

func (s *ControlService) TurnOffRoomLights(ctx context.Context, name string) error {
	return s.switchRoom(ctx, name, false, nil)
}

func (s *ControlService) ListAllLights(ctx context.Context) ([]string, error) {
	return s.listNames(ctx, model.KindLight)
}

func (s *ControlService) ListAllRooms(ctx context.Context) ([]string, error) {
	return s.listNames(ctx, model.KindRoom)
}

func (s *ControlService) switchLight(ctx context.Context, name string, on bool, brightness *float64) error {
	light, err := s.FindLightByName(ctx, name)
	if err != nil {
		return err
	}

	ops, err := s.provider.Resources(ctx)
	if err != nil {
		return err
	}

	s.logger.LogDebug(ctx, "Switching light.", logwrap.Datum("light", light.ID), logwrap.Datum("on", on))
	return resource.SetPower(ctx, ops, model.KindLight, light.ID, on, brightness)
}

// switchRoom addresses the room's grouped light, so one request reaches every member light.
func (s *ControlService) switchRoom(ctx context.Context, name string, on bool, brightness *float64) error {
	room, err := s.FindRoomByName(ctx, name)
	if err != nil {
		return err
	}

	group, ok := room.GroupedLight()
	if !ok {
		return &model.NoGroupedLightError{Room: room.Name}
	}

	ops, err := s.provider.Resources(ctx)
	if err != nil {
		return err
	}

	s.logger.LogDebug(ctx, "Switching room.", logwrap.Datum("room", room.ID), logwrap.Datum("group", group.RID), logwrap.Datum("on", on))
	return resource.SetPower(ctx, ops, model.KindGroupedLight, group.RID, on, brightness)
}

func (s *ControlService) listNames(ctx context.Context, kind model.ResourceKind) ([]string, error) {
	ops, err := s.provider.Resources(ctx)
	if err != nil {
		return nil, err
	}

	named, err := resource.ListNamed(ctx, ops, kind)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(named))
	for _, n := range named {
		names = append(names, n.Name)
	}
	return names, nil
}
