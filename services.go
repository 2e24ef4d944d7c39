package main

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/app"
	"github.com/oceanlink/oceanlink-settler/eth/client"
	"github.com/oceanlink/oceanlink-settler/executor"
	"github.com/oceanlink/oceanlink-settler/indexer"
	"github.com/oceanlink/oceanlink-settler/ledger"
	"github.com/oceanlink/oceanlink-settler/models"
	"github.com/oceanlink/oceanlink-settler/solver"
)

// ServiceDeps is everything the runner services are built from.
type ServiceDeps struct {
	Config  models.Config
	Ledger  ledger.Ledger
	Locker  app.Locker
	Clients map[uint64]client.ChainClient
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func NewSolverService(wg *sync.WaitGroup, deps ServiceDeps) app.Service {
	if !deps.Config.Solver.Enabled {
		log.Debug("[SOLVER] Solver disabled")
		return app.NewEmptyService(wg)
	}

	runner := solver.NewSolver(deps.Ledger, deps.Locker, deps.Config.Solver)
	return app.NewRunnerService(solver.SolverName, runner, wg, millis(deps.Config.Solver.IntervalMillis))
}

func NewExecutorService(wg *sync.WaitGroup, deps ServiceDeps) app.Service {
	if !deps.Config.Executor.Enabled {
		log.Debug("[EXECUTOR] Executor disabled")
		return app.NewEmptyService(wg)
	}

	runner := executor.NewExecutor(deps.Ledger, deps.Locker, deps.Clients, deps.Config)
	return app.NewRunnerService(executor.ExecutorName, runner, wg, millis(deps.Config.Executor.IntervalMillis))
}

// NewIndexerServices returns one indexer per configured chain. lastBlocks maps
// chain id to the block each indexer reported in the last health record.
func NewIndexerServices(wg *sync.WaitGroup, deps ServiceDeps, lastBlocks map[string]string) []app.Service {
	if !deps.Config.Indexer.Enabled {
		log.Debug("[INDEXER] Indexer disabled")
		return []app.Service{app.NewEmptyService(wg)}
	}

	var services []app.Service
	for _, chain := range deps.Config.Chains {
		chainClient, ok := deps.Clients[chain.ChainID]
		if !ok {
			log.Fatal("[INDEXER] No client for chain ", chain.ChainID)
		}
		runner := indexer.NewVaultMonitor(chain, chainClient, deps.Ledger, lastBlocks[models.ChainKey(chain.ChainID)])
		name := indexer.IndexerName + " " + models.ChainKey(chain.ChainID)
		services = append(services, app.NewRunnerService(name, runner, wg, millis(deps.Config.Indexer.IntervalMillis)))
	}
	return services
}

func CreateServices(wg *sync.WaitGroup, deps ServiceDeps, lastHealth models.Health) []app.Service {
	services := []app.Service{
		NewSolverService(wg, deps),
		NewExecutorService(wg, deps),
	}
	lastBlocks := map[string]string{}
	if deps.Config.HealthCheck.ReadLastHealth {
		lastBlocks = app.LastChainBlockNumbers(lastHealth)
	}
	services = append(services, NewIndexerServices(wg, deps, lastBlocks)...)
	return services
}
