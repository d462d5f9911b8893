// Command buildlove packages the current directory into the archive named by
// the LOVE_FILE environment variable, using the default exclusion rules.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/dendrascience/lovepack/internal/config"
	"github.com/dendrascience/lovepack/internal/logging"
	"github.com/dendrascience/lovepack/packer"
	"github.com/dendrascience/lovepack/version"
	"go.uber.org/zap"
)

func main() {
	logger := logging.New(false)
	defer logger.Sync()

	cfg := config.Default().WithEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	rs, err := cfg.Ruleset()
	if err != nil {
		logger.Fatal("invalid exclusion rules", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("buildlove starting", zap.String("version", version.GetFullVersion()), zap.String("output", cfg.Output))
	if _, err := packer.New(cfg.Root, rs, packer.WithLogger(logger)).Archive(ctx, cfg.Output); err != nil {
		logger.Fatal("packaging failed", zap.Error(err))
	}
}
