// Package resource holds the light, room and grouped-light semantics built on top of
// the generic ports.ResourceOperations capability.
package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/domain/translator"
	"hue-mcp/internal/ports"
)

var translators = translator.NewFactory()

// SetPower switches one resource with a single update request. Brightness is a
// percentage and is only sent when given; the bridge clamps out of range values.
func SetPower(ctx context.Context, ops ports.ResourceOperations, kind model.ResourceKind, id string, on bool, brightness *float64) error {
	update := translators.GetTranslator(kind).ToUpdate(model.PowerCommand{On: on, Brightness: brightness})
	if _, err := ops.Update(ctx, kind, id, update); err != nil {
		return fmt.Errorf("updating %s %s: %w", kind, id, err)
	}
	return nil
}

// ListNamed lists every resource of kind as id/name pairs ordered by name.
func ListNamed(ctx context.Context, ops ports.ResourceOperations, kind model.ResourceKind) ([]model.NamedResource, error) {
	items, err := ops.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", kind, err)
	}

	t := translators.GetTranslator(kind)
	named := make([]model.NamedResource, 0, len(items))
	for _, item := range items {
		id := gjson.GetBytes(item, "id").String()
		name := gjson.GetBytes(item, "metadata.name").String()
		if kind == model.KindLight || kind == model.KindGroupedLight {
			name = t.DisplayName(id, name)
		}
		named = append(named, model.NamedResource{ID: id, Name: name})
	}

	sort.SliceStable(named, func(i, j int) bool { return named[i].Name < named[j].Name })
	return named, nil
}

func ListLights(ctx context.Context, ops ports.ResourceOperations) ([]model.Light, error) {
	items, err := ops.List(ctx, model.KindLight)
	if err != nil {
		return nil, fmt.Errorf("listing lights: %w", err)
	}

	strategy := &translator.LightStrategy{}
	lights := make([]model.Light, 0, len(items))
	for _, item := range items {
		var res model.LightResource
		if err := json.Unmarshal(item, &res); err != nil {
			return nil, fmt.Errorf("decoding light: %w", err)
		}
		lights = append(lights, strategy.ToLight(res))
	}
	return lights, nil
}

func ListRooms(ctx context.Context, ops ports.ResourceOperations) ([]model.Room, error) {
	items, err := ops.List(ctx, model.KindRoom)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}

	rooms := make([]model.Room, 0, len(items))
	for _, item := range items {
		var res model.RoomResource
		if err := json.Unmarshal(item, &res); err != nil {
			return nil, fmt.Errorf("decoding room: %w", err)
		}
		rooms = append(rooms, translator.ToRoom(res))
	}
	return rooms, nil
}
