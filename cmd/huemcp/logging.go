package main

import (
	"fmt"
	"io"
	"log"

	"github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/filter"
	"github.com/shimmeringbee/logwrap/impl/golog"
	"github.com/shimmeringbee/logwrap/impl/tee"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
)

// configureLogging never writes to stdout, the stdio transport owns it.
func configureLogging(level string, file string, stderr io.Writer) (logwrap.Logger, io.Closer, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return logwrap.Logger{}, nil, err
	}

	impls := []logwrap.Impl{golog.Wrap(log.New(stderr, "", log.LstdFlags))}
	var closer io.Closer = nopCloser{}

	if file != "" {
		rotating := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			Compress:   true,
		}
		impls = append(impls, golog.Wrap(log.New(rotating, "", log.LstdFlags)))
		closer = rotating
	}

	base := impls[0]
	if len(impls) > 1 {
		base = tee.Tee(impls...)
	}

	return logwrap.New(filter.Filter(base, func(message logwrap.Message) bool {
		return message.Level <= lvl
	})), closer, nil
}

func parseLevel(level string) (logwrap.LogLevel, error) {
	switch level {
	case "":
		return logwrap.Info, nil
	case "panic":
		return logwrap.Panic, nil
	case "fatal":
		return logwrap.Fatal, nil
	case "error":
		return logwrap.Error, nil
	case "warn":
		return logwrap.Warn, nil
	case "info":
		return logwrap.Info, nil
	case "debug":
		return logwrap.Debug, nil
	case "trace":
		return logwrap.Trace, nil
	default:
		return logwrap.Info, fmt.Errorf("unknown log level '%s'", level)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
