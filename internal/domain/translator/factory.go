package translator

import (
	"hue-mcp/internal/domain/model"
)

type Factory struct {
	strategies map[model.ResourceKind]Translator
}

func NewFactory() *Factory {
	return &Factory{
		strategies: map[model.ResourceKind]Translator{
			model.KindLight:        &LightStrategy{},
			model.KindGroupedLight: &GroupedLightStrategy{},
		},
	}
}

func (f *Factory) GetTranslator(kind model.ResourceKind) Translator {
	if t, ok := f.strategies[kind]; ok {
		return t
	}
	return f.strategies[model.KindLight]
}
