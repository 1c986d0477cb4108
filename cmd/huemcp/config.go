package main

import (
	"flag"
	"fmt"

	"github.com/peterbourgon/ff/v3"
	"hue-mcp/internal/adapters/output/persistence"
	"hue-mcp/internal/domain/model"
)

const envPrefix = "HUE"

// newFlagSet binds every option onto cfg. Each subcommand gets its own set so
// options may follow the subcommand name.
func newFlagSet(name string, cfg *model.Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&cfg.BridgeAddress, "bridge-ip", "", "bridge IP or hostname, skips discovery")
	fs.StringVar(&cfg.Username, "username", "", "pre-provisioned application key")
	fs.StringVar(&cfg.ClientKey, "client-key", "", "pre-provisioned client key")
	fs.StringVar(&cfg.CredentialsFile, "credentials-file", "", "location of the credentials file (default ~/.hue-mcp/credentials.json)")

	fs.DurationVar(&cfg.DiscoveryTimeout, "discovery-timeout", model.DefaultDiscoveryTimeout, "time allowed for each discovery strategy")
	fs.DurationVar(&cfg.LinkButtonWait, "link-wait", model.DefaultLinkButtonWait, "time to wait for the link button before registering")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", model.DefaultRequestTimeout, "timeout of a single bridge request")
	fs.StringVar(&cfg.DeviceType, "device-type", model.DefaultDeviceType, "devicetype sent when registering with the bridge")

	fs.StringVar(&cfg.LogLevel, "log-level", "info", "one of trace, debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", "", "also write logs to this file, rotated")

	fs.Func("transport", "tool transport, stdio or sse (default stdio)", func(s string) error {
		switch t := model.Transport(s); t {
		case model.TransportStdio, model.TransportSSE:
			cfg.Transport = t
			return nil
		default:
			return fmt.Errorf("unknown transport '%s'", s)
		}
	})
	fs.StringVar(&cfg.Listen, "listen", ":8080", "listen address of the sse transport")

	return fs
}

func parseOptions() []ff.Option {
	return []ff.Option{ff.WithEnvVarPrefix(envPrefix)}
}

// finalise fills the values that have no static default.
func finalise(cfg *model.Config) error {
	if cfg.Transport == "" {
		cfg.Transport = model.TransportStdio
	}

	if cfg.CredentialsFile == "" {
		path, err := persistence.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to construct default credentials path: %w", err)
		}
		cfg.CredentialsFile = path
	}

	return nil
}
