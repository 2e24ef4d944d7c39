package app

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/models"
)

type Service interface {
	Start()
	Health() models.ServiceHealth
	Stop()
}

// EmptyService stands in for a component that is disabled by config so the
// shutdown sequence stays uniform.
type EmptyService struct {
	wg *sync.WaitGroup
}

const EmptyServiceName = "empty"

func (e *EmptyService) Start() {
	log.Debug("[EMPTY] Starting service")
}

func (e *EmptyService) Stop() {
	log.Debug("[EMPTY] Stopping service")
	e.wg.Done()
}

func (e *EmptyService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:    EmptyServiceName,
		Healthy: true,
	}
}

func NewEmptyService(wg *sync.WaitGroup) Service {
	return &EmptyService{
		wg: wg,
	}
}
