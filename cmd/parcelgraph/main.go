// parcelgraph loads the owner/property/ownership extracts into the graph
// store and certifies the result with a post-load audit battery.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/baysidedata/parcelgraph/internal/config"
	"github.com/baysidedata/parcelgraph/internal/data/graph"
	"github.com/baysidedata/parcelgraph/internal/platform/logger"
	"github.com/baysidedata/parcelgraph/internal/platform/neo4jdb"
)

var (
	flagConfig  string
	flagLogMode string
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "parcelgraph",
		Short:         "Bulk-load property-ownership extracts into the graph store and audit the result",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "parcelgraph.yaml", "path to run configuration")
	root.PersistentFlags().StringVar(&flagLogMode, "log-mode", "development", "logger mode (development or production)")

	root.AddCommand(newSchemaCmd(), newLoadCmd(), newAuditCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles the dependencies every subcommand needs.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	client *neo4jdb.Client
	store  *graph.Store
}

func newApp(ctx context.Context) (*app, error) {
	log, err := logger.New(flagLogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg, err := config.Read(flagConfig)
	if err != nil {
		log.Sync()
		return nil, err
	}

	dbCfg, err := neo4jdb.ConfigFromEnv()
	if err != nil {
		log.Sync()
		return nil, err
	}
	client, err := neo4jdb.New(dbCfg, log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	store, err := graph.NewStore(client, log)
	if err != nil {
		_ = client.Close(ctx)
		log.Sync()
		return nil, err
	}

	return &app{cfg: cfg, log: log, client: client, store: store}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.client.Close(ctx); err != nil {
		a.log.Warn("closing graph client", "error", err)
	}
	a.log.Sync()
}
