package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oceanlink/oceanlink-settler/models"
)

func TestNewDatabase(t *testing.T) {
	db := NewDatabase(models.MongoConfig{
		URI:           "mongodb://localhost:27017",
		Database:      "oceanlink",
		TimeoutMillis: 1234,
	}).(*mongoDatabase)

	assert.Equal(t, "mongodb://localhost:27017", db.uri)
	assert.Equal(t, "oceanlink", db.database)
	assert.Equal(t, 1234*time.Millisecond, db.timeout)
	assert.Nil(t, db.session)

	details := db.lockDetails()
	assert.Equal(t, uint(lockTTLSeconds), details.TTL)
	assert.Equal(t, db.hostname, details.Owner)
}

func TestRandomString(t *testing.T) {
	a := randomString(32)
	b := randomString(32)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
