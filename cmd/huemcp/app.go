package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/shimmeringbee/logwrap"
	"hue-mcp/internal/adapters/input/mcp"
	"hue-mcp/internal/adapters/output/clip"
	"hue-mcp/internal/adapters/output/discovery"
	"hue-mcp/internal/adapters/output/legacy"
	"hue-mcp/internal/adapters/output/persistence"
	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/domain/service"
)

const shutdownTimeout = 5 * time.Second

type application struct {
	cfg     *model.Config
	logger  logwrap.Logger
	repo    *persistence.JSONCredentialRepository
	session *service.Session
	control *service.ControlService
	info    *service.InfoService
}

func newApplication(cfg *model.Config, logger logwrap.Logger) *application {
	repo := persistence.NewJSONCredentialRepository(cfg.CredentialsFile)

	sessionLogger := logger
	sessionLogger.AddOptionsToLogger(logwrap.Source("session"))
	locatorLogger := logger
	locatorLogger.AddOptionsToLogger(logwrap.Source("discovery"))
	controlLogger := logger
	controlLogger.AddOptionsToLogger(logwrap.Source("control"))

	session := service.NewSession(
		cfg,
		discovery.NewLocator(cfg, locatorLogger),
		repo,
		legacy.NewRegistrar(cfg.RequestTimeout),
		clip.NewFactory(cfg.RequestTimeout),
		sessionLogger,
	)

	return &application{
		cfg:     cfg,
		logger:  logger,
		repo:    repo,
		session: session,
		control: service.NewControlService(session, controlLogger),
		info:    service.NewInfoService(session, legacy.NewAdmin()),
	}
}

func serve(ctx context.Context, app *application, _ io.Writer) error {
	toolLogger := app.logger
	toolLogger.AddOptionsToLogger(logwrap.Source("tools"))
	srv := mcp.NewServer(app.control, app.info, toolLogger, version).MCPServer()

	switch app.cfg.Transport {
	case model.TransportSSE:
		sse := server.NewSSEServer(srv)

		errCh := make(chan error, 1)
		go func() {
			app.logger.LogInfo(ctx, "Serving tools over sse.", logwrap.Datum("listen", app.cfg.Listen))
			errCh <- sse.Start(app.cfg.Listen)
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			app.logger.LogInfo(ctx, "Shutting down sse server.")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return sse.Shutdown(shutdownCtx)
		}
	default:
		app.logger.LogInfo(ctx, "Serving tools over stdio.")
		return server.ServeStdio(srv)
	}
}

func pair(ctx context.Context, app *application, stdout io.Writer) error {
	conn, err := app.session.Connection(ctx)
	if err != nil {
		return fmt.Errorf("failed to pair with bridge: %w", err)
	}

	if app.cfg.PreProvisioned() != nil {
		fmt.Fprintf(stdout, "Using configured credentials for bridge at %s.\n", conn.Address)
		return nil
	}

	if !app.session.Registered() {
		fmt.Fprintf(stdout, "Already paired with bridge at %s, credentials in %s.\n", conn.Address, app.repo.Path())
		return nil
	}

	fmt.Fprintf(stdout, "Paired with bridge at %s, credentials in %s.\n", conn.Address, app.repo.Path())
	return nil
}

func info(ctx context.Context, app *application, stdout io.Writer) error {
	bridge, err := app.info.Describe(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name\t%s\n", bridge.Name)
	fmt.Fprintf(w, "Bridge ID\t%s\n", bridge.BridgeID)
	fmt.Fprintf(w, "Model\t%s\n", bridge.ModelID)
	fmt.Fprintf(w, "Software\t%s\n", bridge.SoftwareVersion)
	fmt.Fprintf(w, "API\t%s\n", bridge.APIVersion)
	fmt.Fprintf(w, "Address\t%s\n", bridge.Address)
	return w.Flush()
}

func users(ctx context.Context, app *application, stdout io.Writer) error {
	list, err := app.info.Users(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCREATED\tLAST USED\tUSERNAME")
	for _, u := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Name, u.CreateDate, u.LastUseDate, u.Username)
	}
	return w.Flush()
}
