package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/matheus3301/chatzy/internal/config"
	"github.com/matheus3301/chatzy/internal/daemon"
	"github.com/matheus3301/chatzy/internal/profile"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	ephemeral := flag.Bool("ephemeral", false, "keep all state in memory")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	cfg, err := config.LoadOrDefault(profile.ConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	name := profile.Resolve(*profileFlag, cfg)
	if err := profile.ValidateName(name); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	level := zapcore.InfoLevel
	if *debug {
		level = zapcore.DebugLevel
	}

	app := fx.New(
		daemon.Module(daemon.Params{
			Profile:   name,
			Ephemeral: *ephemeral,
			Config:    cfg,
			LogLevel:  level,
		}),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Named("fx")}
		}),
	)

	app.Run()
}
