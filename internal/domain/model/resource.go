package model

type ResourceKind string

const (
	KindLight                      ResourceKind = "light"
	KindRoom                       ResourceKind = "room"
	KindZone                       ResourceKind = "zone"
	KindScene                      ResourceKind = "scene"
	KindDevice                     ResourceKind = "device"
	KindBridge                     ResourceKind = "bridge"
	KindEntertainmentConfiguration ResourceKind = "entertainment_configuration"
	KindGroupedLight               ResourceKind = "grouped_light"
)

// ResourceRef points at another resource on the bridge.
type ResourceRef struct {
	RID   string       `json:"rid"`
	RType ResourceKind `json:"rtype"`
}

// NamedResource is the id/name projection used for listings.
type NamedResource struct {
	ID   string
	Name string
}

type Metadata struct {
	Name      string `json:"name"`
	Archetype string `json:"archetype,omitempty"`
}

// LightResource is the CLIP v2 wire shape of a light.
type LightResource struct {
	ID       string   `json:"id"`
	IDV1     string   `json:"id_v1,omitempty"`
	Metadata Metadata `json:"metadata"`
	On       *struct {
		On bool `json:"on"`
	} `json:"on,omitempty"`
	Dimming *struct {
		Brightness float64 `json:"brightness"`
	} `json:"dimming,omitempty"`
}

// RoomResource is the CLIP v2 wire shape of a room.
type RoomResource struct {
	ID       string        `json:"id"`
	IDV1     string        `json:"id_v1,omitempty"`
	Metadata Metadata      `json:"metadata"`
	Children []ResourceRef `json:"children"`
	Services []ResourceRef `json:"services"`
}

// OnState and DimmingState make up the body of a power update.
type OnState struct {
	On bool `json:"on"`
}

type DimmingState struct {
	Brightness float64 `json:"brightness"`
}

type PowerUpdate struct {
	On      *OnState      `json:"on,omitempty"`
	Dimming *DimmingState `json:"dimming,omitempty"`
}
