package app

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/oceanlink/oceanlink-settler/models"
)

const (
	HealthServiceName = "HEALTH"
)

// HealthCheckRunner persists the health of every running service under the
// host name so operators can see each settler process in one collection.
type HealthCheckRunner struct {
	db              Database
	executorAddress string
	hostname        string
	services        []Service
}

func (x *HealthCheckRunner) Run() {
	x.PostHealth()
}

func (x *HealthCheckRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

func (x *HealthCheckRunner) FindLastHealth() (models.Health, error) {
	var health models.Health
	filter := bson.M{
		"hostname": x.hostname,
	}
	err := x.db.FindOne(models.CollectionHealthChecks, filter, &health)
	return health, err
}

func (x *HealthCheckRunner) ServiceHealths() []models.ServiceHealth {
	var serviceHealths []models.ServiceHealth
	for _, service := range x.services {
		serviceHealth := service.Health()
		if serviceHealth.Name == EmptyServiceName || serviceHealth.Name == "" {
			continue
		}
		serviceHealths = append(serviceHealths, serviceHealth)
	}
	return serviceHealths
}

func (x *HealthCheckRunner) PostHealth() bool {
	log.Debug("[HEALTH] Posting health")

	filter := bson.M{
		"hostname": x.hostname,
	}

	onInsert := bson.M{
		"hostname":   x.hostname,
		"created_at": time.Now(),
	}

	onUpdate := bson.M{
		"executor_address": x.executorAddress,
		"healthy":          true,
		"service_healths":  x.ServiceHealths(),
		"updated_at":       time.Now(),
	}

	update := bson.M{"$set": onUpdate, "$setOnInsert": onInsert}

	err := x.db.UpsertOne(models.CollectionHealthChecks, filter, update)
	if err != nil {
		log.WithError(err).Error("[HEALTH] Error posting health")
		return false
	}

	log.Debug("[HEALTH] Posted health")
	return true
}

func (x *HealthCheckRunner) SetServices(services []Service) {
	x.services = services
}

func NewHealthCheck(db Database, executorAddress string) *HealthCheckRunner {
	log.Debug("[HEALTH] Initializing health")

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("[HEALTH] Error getting hostname: ", err)
	}

	x := &HealthCheckRunner{
		db:              db,
		executorAddress: executorAddress,
		hostname:        hostname,
	}

	log.Info("[HEALTH] Initialized health")

	return x
}

// LastChainBlockNumbers maps chain id to the block number each indexer
// reported in a previous health record.
func LastChainBlockNumbers(health models.Health) map[string]string {
	blocks := make(map[string]string)
	for _, serviceHealth := range health.ServiceHealths {
		if serviceHealth.ChainID == "" || serviceHealth.BlockNumber == "" {
			continue
		}
		blocks[serviceHealth.ChainID] = serviceHealth.BlockNumber
	}
	return blocks
}
