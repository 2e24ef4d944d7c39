package app

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/models"
)

// Runner is one periodic unit of work.
type Runner interface {
	Run()
	Status() models.RunnerStatus
}

// RunnerService drives a Runner on a fixed interval until stopped.
type RunnerService struct {
	name         string
	runner       Runner
	interval     time.Duration
	stop         chan bool
	wg           *sync.WaitGroup
	lastSyncTime time.Time
	nextSyncTime time.Time
	healthMu     sync.RWMutex
	status       models.RunnerStatus
}

func (x *RunnerService) Start() {
	log.Infof("[%s] Starting service", x.name)
	defer x.wg.Done()

	stop := false
	for !stop {
		log.Infof("[%s] Starting run", x.name)
		x.runner.Run()
		x.updateHealth()
		log.Infof("[%s] Finished run, sleeping for %v", x.name, x.interval)

		select {
		case <-x.stop:
			stop = true
			log.Infof("[%s] Stopped service", x.name)
		case <-time.After(x.interval):
		}
	}
}

func (x *RunnerService) updateHealth() {
	x.healthMu.Lock()
	defer x.healthMu.Unlock()

	x.lastSyncTime = time.Now()
	x.nextSyncTime = x.lastSyncTime.Add(x.interval)
	x.status = x.runner.Status()
}

func (x *RunnerService) Health() models.ServiceHealth {
	x.healthMu.RLock()
	defer x.healthMu.RUnlock()

	return models.ServiceHealth{
		Name:         x.name,
		LastSyncTime: x.lastSyncTime,
		NextSyncTime: x.nextSyncTime,
		ChainID:      x.status.ChainID,
		BlockNumber:  x.status.BlockNumber,
		Healthy:      true,
	}
}

func (x *RunnerService) Stop() {
	log.Infof("[%s] Stopping service", x.name)
	x.stop <- true
}

func NewRunnerService(
	name string,
	runner Runner,
	wg *sync.WaitGroup,
	interval time.Duration,
) *RunnerService {
	if runner == nil || name == "" || interval <= 0 {
		log.Debug("[RUNNER] Invalid parameters")
		return nil
	}

	return &RunnerService{
		name:     name,
		runner:   runner,
		interval: interval,
		stop:     make(chan bool, 1),
		wg:       wg,
	}
}
