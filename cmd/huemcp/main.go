package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/shimmeringbee/logwrap"
	"hue-mcp/internal/domain/model"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "hue-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg := &model.Config{}
	root := newRootCommand(cfg, stdout, stderr)

	if err := root.Parse(args); err != nil {
		return err
	}
	return root.Run(ctx)
}

type command func(ctx context.Context, app *application, stdout io.Writer) error

func newRootCommand(cfg *model.Config, stdout, stderr io.Writer) *ffcli.Command {
	exec := func(cmd command) func(context.Context, []string) error {
		return func(ctx context.Context, _ []string) error {
			if err := finalise(cfg); err != nil {
				return err
			}

			logger, closer, err := configureLogging(cfg.LogLevel, cfg.LogFile, stderr)
			if err != nil {
				return err
			}
			defer closer.Close()

			app := newApplication(cfg, logger)
			logger.LogDebug(ctx, "Configuration parsed.", logwrap.Datum("credentialsFile", cfg.CredentialsFile), logwrap.Datum("transport", string(cfg.Transport)))
			return cmd(ctx, app, stdout)
		}
	}

	// Environment is read by the root parse only, so a flag given before the
	// subcommand name is not overwritten by the subcommand's own parse.
	subcommand := func(name, usage, help string, cmd command) *ffcli.Command {
		return &ffcli.Command{
			Name:       name,
			ShortUsage: "hue-mcp " + name + " [flags]",
			ShortHelp:  help,
			LongHelp:   usage,
			FlagSet:    newFlagSet(name, cfg),
			Exec:       exec(cmd),
		}
	}

	return &ffcli.Command{
		Name:       "hue-mcp",
		ShortUsage: "hue-mcp [flags] [serve|pair|info|users]",
		ShortHelp:  "Control Philips Hue lights through MCP tools.",
		FlagSet:    newFlagSet("hue-mcp", cfg),
		Options:    parseOptions(),
		Subcommands: []*ffcli.Command{
			subcommand("serve", "Serve the light control tools over stdio or sse.", "serve the tools (default)", serve),
			subcommand("pair", "Locate the bridge and register with it, pressing the link button when asked.", "register with the bridge", pair),
			subcommand("info", "Print the bridge configuration summary.", "describe the bridge", info),
			subcommand("users", "List the applications registered on the bridge.", "list bridge users", users),
		},
		Exec: exec(serve),
	}
}
