package translator

import (
	"fmt"

	"hue-mcp/internal/domain/model"
)

// GroupedLightStrategy addresses every light of a room or zone in one request.
type GroupedLightStrategy struct{}

func (s *GroupedLightStrategy) ToUpdate(cmd model.PowerCommand) model.PowerUpdate {
	return powerUpdate(cmd)
}

func (s *GroupedLightStrategy) DisplayName(id, name string) string {
	if name == "" {
		return fmt.Sprintf("Group %s", id)
	}
	return name
}

// ToRoom maps a CLIP v2 room to the domain model. Rooms have no fallback name.
func ToRoom(res model.RoomResource) model.Room {
	return model.Room{
		ID:       res.ID,
		Name:     res.Metadata.Name,
		Children: res.Children,
		Services: res.Services,
	}
}
