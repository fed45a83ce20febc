package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sandboxfs/fileserver/internal/access"
	"github.com/sandboxfs/fileserver/internal/console"
	"github.com/sandboxfs/fileserver/internal/infrastructure/config"
	"github.com/sandboxfs/fileserver/internal/infrastructure/logging"
	"github.com/sandboxfs/fileserver/internal/infrastructure/monitoring"
	"github.com/sandboxfs/fileserver/internal/providers/fileserver"
	"github.com/sandboxfs/fileserver/internal/registry"
	"github.com/sandboxfs/fileserver/internal/service"
	"github.com/sandboxfs/fileserver/internal/session"
	"github.com/sandboxfs/fileserver/internal/shared/paths"
)

func main() {
	root := &cobra.Command{
		Use:   "fileserver",
		Short: "Sandboxed administrative file server",
	}

	root.AddCommand(serveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var (
		sandboxRoot string
		capacity    int
		delay       time.Duration
		user        string
		seedsPath   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Initialize the sandbox and run the interactive console",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadOrDefault()
			if cmd.Flags().Changed("root") {
				cfg.Sandbox.Root = sandboxRoot
			}
			if cmd.Flags().Changed("capacity") {
				cfg.Sandbox.Capacity = capacity
			}
			if cmd.Flags().Changed("delay") {
				cfg.Sandbox.DeleteDelay = delay
			}
			if cmd.Flags().Changed("user") {
				cfg.Session.DefaultUser = user
			}
			if cmd.Flags().Changed("seeds") {
				cfg.Sandbox.SeedManifest = seedsPath
			}

			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&sandboxRoot, "root", paths.DefaultSandboxRoot, "sandbox root directory")
	cmd.Flags().IntVar(&capacity, "capacity", registry.DefaultCapacity, "registry capacity")
	cmd.Flags().DurationVar(&delay, "delay", fileserver.DefaultDeleteDelay, "delete check-to-act delay")
	cmd.Flags().StringVar(&user, "user", session.DefaultIdentity, "initial session identity")
	cmd.Flags().StringVar(&seedsPath, "seeds", "", "seed manifest YAML (default: built-in seeds)")

	return cmd
}

func run(cfg *config.Config) error {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	// Seed state
	reg := registry.New(cfg.Sandbox.Capacity)
	seeds := registry.DefaultSeeds()
	if cfg.Sandbox.SeedManifest != "" {
		if seeds, err = registry.LoadManifest(cfg.Sandbox.SeedManifest); err != nil {
			return err
		}
	}
	if err := registry.NewSeeder(reg, cfg.Sandbox.Root, logger).Seed(seeds); err != nil {
		return err
	}

	metrics := monitoring.NewMetrics()
	metrics.SetRegistryEntries(reg.Len())

	sess := session.New(cfg.Session.DefaultUser)
	checker := access.NewChecker(reg, metrics)

	provider := fileserver.NewProvider(
		cfg.Sandbox.Root, reg, checker, sess,
		fileserver.WithLogger(logger),
		fileserver.WithMetrics(metrics),
		fileserver.WithDeleteDelay(cfg.Sandbox.DeleteDelay),
	)

	services := service.NewRegistry()
	if err := services.Register(provider); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("File server ready",
		zap.String("sandbox", cfg.Sandbox.Root),
		zap.Int("entries", reg.Len()),
		zap.String("user", sess.Current()),
	)
	fmt.Println("File Server v1.0")
	fmt.Printf("Sandbox: %s\n", cfg.Sandbox.Root)
	fmt.Println("WARNING: This system contains intentional vulnerabilities for testing.")

	return console.New(services, sess, os.Stdin, os.Stdout).Run(ctx)
}
