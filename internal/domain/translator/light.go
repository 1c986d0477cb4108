package translator

import (
	"fmt"

	"hue-mcp/internal/domain/model"
)

type LightStrategy struct{}

func (s *LightStrategy) ToUpdate(cmd model.PowerCommand) model.PowerUpdate {
	return powerUpdate(cmd)
}

// DisplayName falls back to "Light {id}" for lights the bridge returns unnamed.
func (s *LightStrategy) DisplayName(id, name string) string {
	if name == "" {
		return fmt.Sprintf("Light %s", id)
	}
	return name
}

// ToLight maps a CLIP v2 light to the domain model.
func (s *LightStrategy) ToLight(res model.LightResource) model.Light {
	light := model.Light{
		ID:   res.ID,
		Name: s.DisplayName(res.ID, res.Metadata.Name),
	}
	if res.On != nil {
		light.On = res.On.On
	}
	if res.Dimming != nil {
		light.Brightness = res.Dimming.Brightness
	}
	return light
}
