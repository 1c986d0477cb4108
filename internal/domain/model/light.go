package model

// Light is the domain view of a light, always fetched fresh from the bridge.
type Light struct {
	ID         string
	Name       string
	On         bool
	Brightness float64
}

type Room struct {
	ID       string
	Name     string
	Children []ResourceRef
	Services []ResourceRef
}

// GroupedLight returns the room's grouped_light service, if it has one.
func (r Room) GroupedLight() (ResourceRef, bool) {
	for _, s := range r.Services {
		if s.RType == KindGroupedLight {
			return s, true
		}
	}
	return ResourceRef{}, false
}

// PowerCommand is a request to switch a light or group, optionally dimming it.
type PowerCommand struct {
	On         bool
	Brightness *float64
}

// BridgeInfo describes the bridge as reported by the legacy config endpoint.
type BridgeInfo struct {
	Name            string
	BridgeID        string
	ModelID         string
	SoftwareVersion string
	APIVersion      string
	Address         string
}

// BridgeUser is one whitelisted application on the bridge.
type BridgeUser struct {
	Username    string
	Name        string
	CreateDate  string
	LastUseDate string
}
