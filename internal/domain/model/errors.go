package model

import "fmt"

// DiscoveryError means no bridge could be located on the network.
type DiscoveryError struct {
	Reason string
	Err    error
}

func (e *DiscoveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bridge discovery failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("bridge discovery failed: %s", e.Reason)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// RegistrationError means the bridge refused to issue credentials.
type RegistrationError struct {
	Type        int
	Description string
}

func (e *RegistrationError) Error() string {
	if e.Type != 0 {
		return fmt.Sprintf("bridge registration failed (type %d): %s", e.Type, e.Description)
	}
	return fmt.Sprintf("bridge registration failed: %s", e.Description)
}

// BridgeAPIError is a non-2xx reply, or a 2xx reply carrying errors, from the bridge.
type BridgeAPIError struct {
	StatusCode int
	Body       string
}

func (e *BridgeAPIError) Error() string {
	return fmt.Sprintf("bridge API error %d: %s", e.StatusCode, e.Body)
}

// TransportError means no response was received from the bridge.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("bridge unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Kind ResourceKind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// NoGroupedLightError means a room has no grouped_light service to address it as a unit.
type NoGroupedLightError struct {
	Room string
}

func (e *NoGroupedLightError) Error() string {
	return fmt.Sprintf("room %q has no grouped light", e.Room)
}
