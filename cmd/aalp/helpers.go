package main

import (
	"context"
	"fmt"
	"os"

	"github.com/drdebit/aalp-sub001/internal/catalog"
	"github.com/drdebit/aalp-sub001/internal/common"
	"github.com/drdebit/aalp-sub001/internal/config"
	"github.com/drdebit/aalp-sub001/internal/service"
	"github.com/drdebit/aalp-sub001/internal/sim"
	"github.com/drdebit/aalp-sub001/internal/storage"
	"github.com/spf13/viper"
)

// initStorage opens the learner database with proper path expansion and
// runs any pending migrations.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("failed to open learner database at %s", dbPath), err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		common.LogError(err, "Database migration failed", common.Fields{"path": dbPath})
		return nil, common.NewUserError("failed to migrate the learner database", err)
	}

	return store, nil
}

// initSimulator wires the catalog, storage, and simulation engine. The
// returned cleanup closes the database.
func initSimulator(ctx context.Context) (*sim.Simulator, *catalog.Catalog, func(), error) {
	c, err := catalog.Default()
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() { _ = store.Close() }

	return sim.NewSimulator(c, store, nil), c, cleanup, nil
}

// learnerID resolves the learner identity: the --learner flag or
// simulation.learner config, falling back to the OS user name.
func learnerID() string {
	if id := viper.GetString("simulation.learner"); id != "" {
		return id
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "default"
}
