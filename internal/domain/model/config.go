package model

import "time"

type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportSSE   Transport = "sse"
)

const (
	DefaultDiscoveryTimeout = 10 * time.Second
	DefaultLinkButtonWait   = 10 * time.Second
	DefaultRequestTimeout   = 10 * time.Second
	DefaultDeviceType       = "hue-mcp#server"
)

// Config is built once at process start from flags and HUE_* environment variables.
type Config struct {
	BridgeAddress   string // Explicit bridge IP or hostname, skips discovery
	Username        string // Pre-provisioned application key
	ClientKey       string // Pre-provisioned client key
	CredentialsFile string

	DiscoveryTimeout time.Duration
	LinkButtonWait   time.Duration
	RequestTimeout   time.Duration
	DeviceType       string // devicetype sent on registration, "app#instance"

	LogLevel string
	LogFile  string

	Transport Transport
	Listen    string // SSE listen address
}

// PreProvisioned reports whether credentials were supplied through configuration.
func (c *Config) PreProvisioned() *Credentials {
	if c.Username == "" {
		return nil
	}
	return &Credentials{Username: c.Username, ClientKey: c.ClientKey}
}
