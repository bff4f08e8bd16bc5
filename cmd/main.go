// cmd/main.go - Program entry
//
// compdb-hook is installed in place of the real compiler. Each invocation
// records the command line it received into the shared compile_commands.json,
// then execs the real compiler with the same arguments so the build proceeds
// unchanged. If the database cannot be updated the build step fails and the
// compiler never runs: continuing would silently hand stale metadata to
// every tool reading the database.
package main

import (
	"fmt"
	"os"

	"compdb-hook/internal/compdb"
	"compdb-hook/internal/compiler"
	"compdb-hook/internal/config"
	"compdb-hook/internal/service"
	"compdb-hook/internal/storage"
	"compdb-hook/pkg/logger"
)

const appName = "compdb-hook"

var (
	// set by the linker during build
	version string
)

func fail(err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	appLogger, err := logger.NewLogger(cfg.LogDir, cfg.LogLevel, appName)
	if err != nil {
		fail(fmt.Errorf("initialize logging: %w", err))
	}
	if version != "" {
		appLogger.Debug("version %s", version)
	}

	store := storage.NewStore(cfg.DatabasePath, appLogger)
	updater := service.NewUpdater(store, compdb.NewReconciler(appLogger), cfg.WorkspaceDir, appLogger)

	arguments := compiler.MakeArguments(cfg.CompilerName, os.Args)
	if err := updater.Update(arguments); err != nil {
		appLogger.Error("database update failed: %v", err)
		fail(err)
	}

	// Point of no return: the lock is released and the rewrite committed.
	var replacer compiler.Replacer = compiler.ExecReplacer{}
	if err := replacer.Replace(cfg.CompilerName, os.Args); err != nil {
		appLogger.Error("compiler handoff failed: %v", err)
		fail(err)
	}
}
