package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shimmeringbee/logwrap"
	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/ports"
)

type State int

const (
	StateNoCredentials State = iota
	StateLoading
	StateBootstrapping
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNoCredentials:
		return "no-credentials"
	case StateLoading:
		return "loading"
	case StateBootstrapping:
		return "bootstrapping"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session resolves the bridge address and credentials once and hands out a resource
// client bound to them. Ready is terminal; a failed resolution is retried on the next call.
type Session struct {
	locator   ports.BridgeLocator
	repo      ports.CredentialRepository
	registrar ports.Registrar
	newClient ports.ResourceClientFactory
	logger    logwrap.Logger

	preset     *model.Credentials
	deviceType string
	linkWait   time.Duration
	wait       func(ctx context.Context, d time.Duration) error

	mu         sync.Mutex
	state      State
	address    string
	conn       *model.Connection
	ops        ports.ResourceOperations
	registered bool
}

func NewSession(cfg *model.Config, locator ports.BridgeLocator, repo ports.CredentialRepository, registrar ports.Registrar, newClient ports.ResourceClientFactory, logger logwrap.Logger) *Session {
	deviceType := cfg.DeviceType
	if deviceType == "" {
		deviceType = model.DefaultDeviceType
	}

	return &Session{
		locator:    locator,
		repo:       repo,
		registrar:  registrar,
		newClient:  newClient,
		logger:     logger,
		preset:     cfg.PreProvisioned(),
		deviceType: deviceType,
		linkWait:   cfg.LinkButtonWait,
		wait:       sleepContext,
		state:      StateNoCredentials,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Registered reports whether this session obtained new credentials from the bridge
// rather than reusing configured or stored ones.
func (s *Session) Registered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registered
}

// Connection returns the resolved address and credentials, bootstrapping them on first use.
func (s *Session) Connection(ctx context.Context) (model.Connection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resolve(ctx); err != nil {
		return model.Connection{}, err
	}
	return *s.conn, nil
}

// Resources returns a resource client bound to the resolved connection.
func (s *Session) Resources(ctx context.Context) (ports.ResourceOperations, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resolve(ctx); err != nil {
		return nil, err
	}
	return s.ops, nil
}

func (s *Session) resolve(ctx context.Context) error {
	if s.state == StateReady {
		return nil
	}

	if s.address == "" {
		address, err := s.locator.Locate(ctx)
		if err != nil {
			s.state = StateFailed
			return err
		}
		s.address = address
	}

	creds, err := s.credentials(ctx)
	if err != nil {
		s.state = StateFailed
		s.logger.LogError(ctx, "Failed to obtain bridge credentials.", logwrap.Err(err), logwrap.Datum("address", s.address))
		return err
	}

	s.conn = &model.Connection{Address: s.address, Credentials: *creds}
	s.ops = s.newClient(*s.conn)
	s.state = StateReady

	s.logger.LogInfo(ctx, "Bridge session ready.", logwrap.Datum("address", s.address))
	return nil
}

func (s *Session) credentials(ctx context.Context) (*model.Credentials, error) {
	if s.preset != nil {
		return s.preset, nil
	}

	s.state = StateLoading
	creds, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.LogWarn(ctx, "Failed to read stored credentials, registering anew.", logwrap.Err(err))
	}
	if !creds.IsZero() {
		return creds, nil
	}

	s.state = StateBootstrapping
	s.logger.LogWarn(ctx, "No credentials found. Press the link button on the Hue bridge now.",
		logwrap.Datum("address", s.address), logwrap.Datum("wait", s.linkWait.String()))

	if err := s.wait(ctx, s.linkWait); err != nil {
		return nil, fmt.Errorf("waiting for link button: %w", err)
	}

	creds, err = s.registrar.Register(ctx, s.address, s.deviceType)
	if err != nil {
		return nil, fmt.Errorf("registering with bridge: %w", err)
	}
	s.registered = true

	// The in-memory credentials stay usable even if they cannot be written.
	if err := s.repo.Save(ctx, creds); err != nil {
		s.logger.LogError(ctx, "Failed to save bridge credentials.", logwrap.Err(err))
	} else {
		s.logger.LogInfo(ctx, "Saved bridge credentials.")
	}

	return creds, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
