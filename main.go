package main

import (
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/app"
	"github.com/oceanlink/oceanlink-settler/common"
	"github.com/oceanlink/oceanlink-settler/eth/client"
	"github.com/oceanlink/oceanlink-settler/ledger"
	"github.com/oceanlink/oceanlink-settler/metrics"
	"github.com/oceanlink/oceanlink-settler/models"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	var configPath string
	var envPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&envPath, "env", "", "path to env file")
	flag.Parse()

	var absConfigPath string = ""
	var err error
	if configPath != "" {
		absConfigPath, err = filepath.Abs(configPath)
		if err != nil {
			log.Fatal("[MAIN] Error getting absolute path for config file: ", err)
		}
	}

	var absEnvPath string = ""
	if envPath != "" {
		absEnvPath, err = filepath.Abs(envPath)
		if err != nil {
			log.Fatal("[MAIN] Error getting absolute path for env file: ", err)
		}
	}

	config := app.InitConfig(absConfigPath, absEnvPath)
	app.InitLogger(config.Logger)

	db := app.InitDB(config.MongoDB)

	var signer common.Signer
	executorAddress := ""
	if config.Executor.Enabled {
		signer, err = app.NewExecutorSigner(config.ExecutorSigner)
		if err != nil {
			log.Fatal("[MAIN] Error initializing executor signer: ", err)
		}
		defer signer.Destroy()
		executorAddress = signer.EthAddress().Hex()
		log.Info("[MAIN] Executor address: ", executorAddress)
	}

	clients := make(map[uint64]client.ChainClient, len(config.Chains))
	for _, chain := range config.Chains {
		chainClient, err := client.NewClient(chain, signer)
		if err != nil {
			log.Fatal("[MAIN] Error initializing client for chain ", chain.ChainID, ": ", err)
		}
		if err := chainClient.ValidateNetwork(); err != nil {
			log.Fatal("[MAIN] Error validating network for chain ", chain.ChainID, ": ", err)
		}
		clients[chain.ChainID] = chainClient
	}

	healthcheck := app.NewHealthCheck(db, executorAddress)

	var lastHealth models.Health
	if config.HealthCheck.ReadLastHealth {
		if lastHealth, err = healthcheck.FindLastHealth(); err != nil {
			log.Warn("[MAIN] Error getting last health: ", err)
		} else {
			log.Debug("[MAIN] Last health: ", lastHealth.UpdatedAt)
		}
	}

	deps := ServiceDeps{
		Config:  config,
		Ledger:  ledger.NewMongoLedger(db),
		Locker:  db,
		Clients: clients,
	}

	var wg sync.WaitGroup

	services := CreateServices(&wg, deps, lastHealth)
	healthcheck.SetServices(services)

	healthService := app.NewRunnerService(app.HealthServiceName, healthcheck, &wg, millis(config.HealthCheck.IntervalMillis))
	services = append(services, healthService)

	if config.Metrics.Enabled {
		services = append(services, metrics.NewServer(config.Metrics, healthcheck.ServiceHealths, &wg))
	}

	wg.Add(len(services))

	for _, service := range services {
		go service.Start()
	}

	log.Info("[MAIN] Started ", len(services), " services")

	gracefulStop := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)
	go waitForExitSignals(gracefulStop, done)
	<-done

	log.Debug("[MAIN] Stopping services")
	for _, service := range services {
		service.Stop()
	}

	wg.Wait()

	if err := db.Disconnect(); err != nil {
		log.Error("[MAIN] Error disconnecting from database: ", err)
	}
	log.Info("[MAIN] Stopped all services")
}

func waitForExitSignals(gracefulStop chan os.Signal, done chan bool) {
	sig := <-gracefulStop
	log.Debug("[MAIN] Got signal: ", sig)
	done <- true
}
