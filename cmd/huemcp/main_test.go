package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shimmeringbee/logwrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hue-mcp/internal/domain/model"
)

func TestRootCommand_Defaults(t *testing.T) {
	cfg := &model.Config{}
	root := newRootCommand(cfg, io.Discard, io.Discard)

	require.NoError(t, root.Parse(nil))
	require.NoError(t, finalise(cfg))

	assert.Equal(t, model.DefaultDiscoveryTimeout, cfg.DiscoveryTimeout)
	assert.Equal(t, model.DefaultLinkButtonWait, cfg.LinkButtonWait)
	assert.Equal(t, model.DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, model.DefaultDeviceType, cfg.DeviceType)
	assert.Equal(t, model.TransportStdio, cfg.Transport)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(".hue-mcp", "credentials.json"), filepath.Join(filepath.Base(filepath.Dir(cfg.CredentialsFile)), filepath.Base(cfg.CredentialsFile)))
	assert.Nil(t, cfg.PreProvisioned())
}

func TestRootCommand_Environment(t *testing.T) {
	t.Setenv("HUE_BRIDGE_IP", "192.168.1.2")
	t.Setenv("HUE_USERNAME", "app-user")
	t.Setenv("HUE_CLIENT_KEY", "secret")
	t.Setenv("HUE_CREDENTIALS_FILE", "/tmp/creds.json")

	cfg := &model.Config{}
	root := newRootCommand(cfg, io.Discard, io.Discard)

	require.NoError(t, root.Parse(nil))
	require.NoError(t, finalise(cfg))

	assert.Equal(t, "192.168.1.2", cfg.BridgeAddress)
	assert.Equal(t, "/tmp/creds.json", cfg.CredentialsFile)
	assert.Equal(t, &model.Credentials{Username: "app-user", ClientKey: "secret"}, cfg.PreProvisioned())
}

func TestRootCommand_SubcommandFlags(t *testing.T) {
	cfg := &model.Config{}
	root := newRootCommand(cfg, io.Discard, io.Discard)

	require.NoError(t, root.Parse([]string{"serve", "-transport", "sse", "-listen", ":9000", "-link-wait", "2s"}))

	assert.Equal(t, model.TransportSSE, cfg.Transport)
	assert.Equal(t, ":9000", cfg.Listen)
	assert.Equal(t, 2*time.Second, cfg.LinkButtonWait)
}

func TestRootCommand_FlagsBeatEnvironmentAcrossSubcommands(t *testing.T) {
	t.Setenv("HUE_BRIDGE_IP", "10.0.0.9")
	t.Setenv("HUE_LOG_LEVEL", "debug")

	tests := []struct {
		name string
		args []string
	}{
		{"before subcommand", []string{"-bridge-ip", "192.168.1.2", "info"}},
		{"after subcommand", []string{"info", "-bridge-ip", "192.168.1.2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &model.Config{}
			root := newRootCommand(cfg, io.Discard, io.Discard)

			require.NoError(t, root.Parse(tt.args))

			assert.Equal(t, "192.168.1.2", cfg.BridgeAddress)
			assert.Equal(t, "debug", cfg.LogLevel)
		})
	}
}

func TestRootCommand_EnvironmentReachesSubcommands(t *testing.T) {
	t.Setenv("HUE_BRIDGE_IP", "10.0.0.9")

	cfg := &model.Config{}
	root := newRootCommand(cfg, io.Discard, io.Discard)

	require.NoError(t, root.Parse([]string{"pair"}))
	assert.Equal(t, "10.0.0.9", cfg.BridgeAddress)
}

func TestRootCommand_RejectsUnknownTransport(t *testing.T) {
	cfg := &model.Config{}
	root := newRootCommand(cfg, io.Discard, io.Discard)

	assert.Error(t, root.Parse([]string{"-transport", "websocket"}))
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), []string{"-log-level", "loud", "-credentials-file", filepath.Join(t.TempDir(), "c.json"), "info"}, io.Discard, io.Discard)

	assert.ErrorContains(t, err, "unknown log level 'loud'")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logwrap.LogLevel
	}{
		{"", logwrap.Info},
		{"error", logwrap.Error},
		{"warn", logwrap.Warn},
		{"debug", logwrap.Debug},
		{"trace", logwrap.Trace},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigureLogging_FiltersByLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, closer, err := configureLogging("warn", "", buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.LogInfo(context.Background(), "quiet message")
	logger.LogWarn(context.Background(), "loud message")

	assert.NotContains(t, buf.String(), "quiet message")
	assert.Contains(t, buf.String(), "loud message")
}

func TestConfigureLogging_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hue-mcp.log")
	buf := &bytes.Buffer{}

	logger, closer, err := configureLogging("info", path, buf)
	require.NoError(t, err)

	logger.LogInfo(context.Background(), "written twice")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written twice")
	assert.Contains(t, buf.String(), "written twice")
}

func TestRun_PairWithStoredCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"username":"stored","clientKey":"K"}`), 0600))
	stdout := &bytes.Buffer{}

	err := run(context.Background(), []string{"pair", "-bridge-ip", "192.168.1.2", "-credentials-file", path}, stdout, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "Already paired with bridge at 192.168.1.2, credentials in "+path+".\n", stdout.String())
}
