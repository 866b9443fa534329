package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/duocurve-network/duocurve-daemon/config"
	"github.com/duocurve-network/duocurve-daemon/internal/core/application"
	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
	"github.com/duocurve-network/duocurve-daemon/internal/infrastructure/pubsub"
	webhookpubsub "github.com/duocurve-network/duocurve-daemon/internal/infrastructure/pubsub/webhook"
	"github.com/duocurve-network/duocurve-daemon/internal/infrastructure/settlement"
	dbbadger "github.com/duocurve-network/duocurve-daemon/internal/infrastructure/storage/db/badger"
	"github.com/duocurve-network/duocurve-daemon/internal/infrastructure/storage/db/inmemory"
)

// stateExporter is implemented by the infra pieces that survive between CLI
// invocations through a JSON file in the datadir.
type stateExporter interface {
	ExportState() ([]byte, error)
	ImportState([]byte) error
}

type services struct {
	repoManager ports.RepoManager
	ledger      *settlement.Ledger

	operator application.OperatorService
	market   application.MarketService
	swap     application.SwapService
	pubsub   ports.PubSubService
}

// openServices wires repositories, settlement ledger, pubsub and application
// services for a single CLI invocation. The returned cleanup persists the
// file-backed state and closes the stores.
func openServices() (*services, func(), error) {
	datadir := config.GetDatadir()

	repoManager, err := openRepoManager(datadir)
	if err != nil {
		return nil, nil, err
	}

	ledger := settlement.NewLedger()
	if err := restoreState(
		ledger, filepath.Join(datadir, config.LedgerStateFilename),
	); err != nil {
		repoManager.Close()
		return nil, nil, err
	}

	var engine ports.SettlementEngine = ledger
	if !config.GetBool(config.NoBreakerKey) {
		engine = settlement.NewBreakerEngine(ledger)
	}

	pubsubSvc, persistHooks, err := openPubSubService(datadir)
	if err != nil {
		repoManager.Close()
		return nil, nil, err
	}

	svc := &services{
		repoManager: repoManager,
		ledger:      ledger,
		operator:    application.NewOperatorService(repoManager),
		market:      application.NewMarketService(repoManager, engine, pubsubSvc),
		swap:        application.NewSwapService(repoManager, engine, pubsubSvc),
		pubsub:      pubsubSvc,
	}

	cleanup := func() {
		if err := persistState(
			ledger, filepath.Join(datadir, config.LedgerStateFilename),
		); err != nil {
			fmt.Fprintf(os.Stderr, "warning: persisting ledger state: %v\n", err)
		}
		persistHooks()
		repoManager.Close()
	}
	return svc, cleanup, nil
}

func openRepoManager(datadir string) (ports.RepoManager, error) {
	if config.GetString(config.DbTypeKey) == config.DbTypeInMemory {
		return inmemory.NewRepoManager(), nil
	}
	return dbbadger.NewRepoManager(filepath.Join(datadir, config.DbLocation), nil)
}

func openPubSubService(datadir string) (ports.PubSubService, func(), error) {
	if config.GetString(config.PubSubTypeKey) != config.PubSubTypeWebhook {
		return pubsub.NewLogPubSubService(), func() {}, nil
	}

	svc := webhookpubsub.NewWebhookPubSubService()
	exporter := svc.(stateExporter)
	hooksPath := filepath.Join(datadir, config.HooksStateFilename)
	if err := restoreState(exporter, hooksPath); err != nil {
		return nil, nil, err
	}

	persist := func() {
		if err := persistState(exporter, hooksPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: persisting webhooks: %v\n", err)
		}
	}
	return svc, persist, nil
}

func restoreState(target stateExporter, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return target.ImportState(raw)
}

func persistState(source stateExporter, path string) error {
	raw, err := source.ExportState()
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

func caller(ctx *cli.Context) (string, error) {
	id := ctx.String("caller")
	if id == "" {
		return "", fmt.Errorf("--caller is required for this command")
	}
	return id, nil
}
