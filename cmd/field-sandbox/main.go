package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-field/audio"
	"github.com/lixenwraith/vi-field/config"
	"github.com/lixenwraith/vi-field/engine"
	"github.com/lixenwraith/vi-field/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(runSandbox).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "field-sandbox: %v\n", err)
		os.Exit(1)
	}
}

// runSandbox owns the terminal for the lifetime of the engine
func runSandbox(ctx context.Context, cfg *config.Config) error {
	logger, closeLog, err := logging.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	// Restore the terminal before printing anything on a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error("panic", zap.Any("value", r), zap.ByteString("stack", debug.Stack()))
			closeLog()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFIELD-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	player := audio.NewPlayer()
	eng := engine.New(screen, cfg.NewScene(), cfg.Settings(),
		engine.WithLogger(logger),
		engine.WithSound(player),
	)

	logger.Info("sandbox started",
		zap.Float64("scale", cfg.Field.Scale),
		zap.Bool("sound", cfg.Sound.Enabled))

	return eng.Run(ctx)
}
