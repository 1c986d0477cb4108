package translator

import (
	"hue-mcp/internal/domain/model"
)

// Translator converts between domain commands and the bridge's CLIP v2 shapes for one resource kind.
type Translator interface {
	ToUpdate(cmd model.PowerCommand) model.PowerUpdate
	DisplayName(id, name string) string
}

func powerUpdate(cmd model.PowerCommand) model.PowerUpdate {
	update := model.PowerUpdate{On: &model.OnState{On: cmd.On}}
	if cmd.Brightness != nil {
		update.Dimming = &model.DimmingState{Brightness: *cmd.Brightness}
	}
	return update
}
