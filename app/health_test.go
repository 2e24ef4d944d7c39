package app_test

import (
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/oceanlink/oceanlink-settler/app"
	"github.com/oceanlink/oceanlink-settler/app/mocks"
	"github.com/oceanlink/oceanlink-settler/models"
)

func init() {
	log.SetOutput(io.Discard)
}

type MockService struct{}

func (e *MockService) Start() {}

func (e *MockService) Stop() {}

const MockServiceName = "mock"

func (e *MockService) Health() models.ServiceHealth {
	return models.ServiceHealth{
		Name:         MockServiceName,
		LastSyncTime: time.Now(),
		NextSyncTime: time.Now(),
		ChainID:      "1",
		BlockNumber:  "100",
		Healthy:      true,
	}
}

func hostFilter(t *testing.T) bson.M {
	hostname, err := os.Hostname()
	assert.NoError(t, err)
	return bson.M{"hostname": hostname}
}

func TestHealthStatus(t *testing.T) {
	x := app.NewHealthCheck(mocks.NewMockDatabase(t), "0xexecutor")

	status := x.Status()
	assert.Equal(t, "", status.BlockNumber)
	assert.Equal(t, "", status.ChainID)
}

func TestFindLastHealth(t *testing.T) {
	t.Run("No Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		x := app.NewHealthCheck(mockDB, "0xexecutor")

		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, hostFilter(t), mock.Anything).Return(nil)

		_, err := x.FindLastHealth()
		assert.Nil(t, err)
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		x := app.NewHealthCheck(mockDB, "0xexecutor")

		mockDB.EXPECT().FindOne(models.CollectionHealthChecks, hostFilter(t), mock.Anything).Return(errors.New("error"))

		_, err := x.FindLastHealth()
		assert.NotNil(t, err)
		assert.Equal(t, err.Error(), "error")
	})
}

func TestServiceHealths(t *testing.T) {
	x := app.NewHealthCheck(mocks.NewMockDatabase(t), "0xexecutor")
	wg := &sync.WaitGroup{}
	x.SetServices([]app.Service{
		app.NewEmptyService(wg),
		app.NewEmptyService(wg),
		&MockService{},
	})

	healths := x.ServiceHealths()

	assert.Equal(t, len(healths), 1)
	assert.Equal(t, healths[0].Name, MockServiceName)
}

func TestPostHealth(t *testing.T) {
	t.Run("No Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		x := app.NewHealthCheck(mockDB, "0xexecutor")
		x.SetServices([]app.Service{&MockService{}})

		call := mockDB.EXPECT().UpsertOne(models.CollectionHealthChecks, hostFilter(t), mock.Anything)
		call.Run(func(_ string, _ interface{}, arg interface{}) {
			update := arg.(bson.M)
			onUpdate := update["$set"].(bson.M)
			onInsert := update["$setOnInsert"].(bson.M)

			assert.Equal(t, "0xexecutor", onUpdate["executor_address"])
			assert.Equal(t, true, onUpdate["healthy"])
			assert.Len(t, onUpdate["service_healths"], 1)
			assert.Equal(t, hostFilter(t)["hostname"], onInsert["hostname"])
		})
		call.Return(nil)

		assert.True(t, x.PostHealth())
	})

	t.Run("With Error", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		x := app.NewHealthCheck(mockDB, "0xexecutor")

		mockDB.EXPECT().UpsertOne(models.CollectionHealthChecks, hostFilter(t), mock.Anything).Return(errors.New("error"))

		assert.False(t, x.PostHealth())
	})
}

func TestLastChainBlockNumbers(t *testing.T) {
	health := models.Health{
		ServiceHealths: []models.ServiceHealth{
			{Name: "INDEXER 1", ChainID: "1", BlockNumber: "100"},
			{Name: "INDEXER 2", ChainID: "2", BlockNumber: "250"},
			{Name: "SOLVER"},
		},
	}

	blocks := app.LastChainBlockNumbers(health)

	assert.Equal(t, map[string]string{"1": "100", "2": "250"}, blocks)
}
