package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"leasehub/internal/cache"
	"leasehub/internal/config"
	"leasehub/internal/db"
	"leasehub/internal/logging"
	"leasehub/internal/repository"
	"leasehub/internal/service"
)

func main() {
	var owner string

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the starter template library for an owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return seed(cmd.Context(), owner)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().StringVar(&owner, "owner", "", "upstream user id that owns the templates")
	_ = rootCmd.MarkFlagRequired("owner")

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, owner string) error {
	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Connect to database
	gormDB, err := db.Open(cfg.MySQLDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	// The list cache is keyed by owner; dropping it lets a running server see the new rows.
	var store cache.Store = cache.NewMemory()
	if cfg.RedisAddr != "" {
		redisClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer redisClient.Close()
		store = redisClient
	}

	templates := service.NewTemplateService(repository.NewTemplateRepository(gormDB), store)
	created, err := templates.SeedStarter(ctx, owner)
	if err != nil {
		return err
	}

	logger.Info("seed completed",
		zap.String("owner", owner),
		zap.Int("created", created),
		zap.Int("skipped", len(service.StarterTemplates)-created),
	)
	return nil
}
