package app

import (
	"context"
	"crypto/rand"
	"errors"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	lock "github.com/square/mongo-lock"

	"github.com/oceanlink/oceanlink-settler/models"
)

const (
	CollectionLocks = "locks"

	// locks left behind by a crashed process expire after this many seconds
	lockTTLSeconds = 300
)

// Locker grants single-flight access to a named resource.
type Locker interface {
	XLock(resourceId string) (string, error)
	Unlock(lockId string) error
}

type Database interface {
	Connect() error
	SetupLockers() error
	SetupIndexes() error
	Disconnect() error

	InsertOne(collection string, data interface{}) error
	FindOne(collection string, filter interface{}, result interface{}) error
	FindMany(collection string, filter interface{}, result interface{}) error
	FindManySorted(collection string, filter interface{}, sort interface{}, limit int64, result interface{}) error
	Count(collection string, filter interface{}) (int64, error)
	UpdateOne(collection string, filter interface{}, update interface{}) (int64, error)
	UpdateMany(collection string, filter interface{}, update interface{}) (int64, error)
	UpsertOne(collection string, filter interface{}, update interface{}) error

	// WithTransaction runs fn inside a multi-document transaction. Every call
	// made on tx joins the transaction; returning an error aborts it.
	WithTransaction(fn func(tx Database) error) error

	XLock(resourceId string) (string, error)
	SLock(resourceId string) (string, error)
	Unlock(lockId string) error
}

// mongoDatabase is a wrapper around the mongo database
type mongoDatabase struct {
	db       *mongo.Database
	uri      string
	database string
	timeout  time.Duration
	locker   *lock.Client
	purger   lock.Purger
	hostname string

	// set on the copy handed to a transaction callback
	session mongo.SessionContext
}

func NewDatabase(config models.MongoConfig) Database {
	hostname, _ := os.Hostname()
	return &mongoDatabase{
		uri:      config.URI,
		database: config.Database,
		timeout:  time.Duration(config.TimeoutMillis) * time.Millisecond,
		hostname: hostname,
	}
}

func (d *mongoDatabase) context() (context.Context, context.CancelFunc) {
	if d.session != nil {
		return context.WithTimeout(d.session, d.timeout)
	}
	return context.WithTimeout(context.Background(), d.timeout)
}

// Connect connects to the database
func (d *mongoDatabase) Connect() error {
	log.Debug("[DB] Connecting to database")
	wcMajority := writeconcern.Majority()
	wcMajority.WTimeout = d.timeout

	ctx, cancel := d.context()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(d.uri).SetWriteConcern(wcMajority))
	if err != nil {
		return err
	}
	if err = client.Ping(ctx, nil); err != nil {
		return err
	}
	d.db = client.Database(d.database)

	log.Info("[DB] Connected to mongo database: ", d.database)
	return nil
}

// SetupLockers sets up the locker
func (d *mongoDatabase) SetupLockers() error {
	log.Debug("[DB] Setting up locker")

	ctx, cancel := d.context()
	defer cancel()

	locker := lock.NewClient(d.db.Collection(CollectionLocks))
	if err := locker.CreateIndexes(ctx); err != nil {
		return err
	}
	d.locker = locker
	d.purger = lock.NewPurger(locker)

	log.Info("[DB] Locker setup")
	return nil
}

func randomString(n int) string {
	const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	var bytes = make([]byte, n)
	rand.Read(bytes)
	for i, b := range bytes {
		bytes[i] = alphanum[b%byte(len(alphanum))]
	}
	return string(bytes)
}

func (d *mongoDatabase) lockDetails() lock.LockDetails {
	return lock.LockDetails{
		Owner: d.hostname,
		Host:  d.hostname,
		TTL:   lockTTLSeconds,
	}
}

// XLock locks a resource for exclusive access. Expired locks are purged once
// before giving up.
func (d *mongoDatabase) XLock(resourceId string) (string, error) {
	ctx, cancel := d.context()
	defer cancel()

	lockId := randomString(32)
	err := d.locker.XLock(ctx, resourceId, lockId, d.lockDetails())
	if errors.Is(err, lock.ErrAlreadyLocked) {
		if _, purgeErr := d.purger.Purge(ctx); purgeErr != nil {
			return lockId, err
		}
		err = d.locker.XLock(ctx, resourceId, lockId, d.lockDetails())
	}
	return lockId, err
}

// SLock locks a resource for shared access
func (d *mongoDatabase) SLock(resourceId string) (string, error) {
	ctx, cancel := d.context()
	defer cancel()

	lockId := randomString(32)
	err := d.locker.SLock(ctx, resourceId, lockId, d.lockDetails(), -1)
	return lockId, err
}

// Unlock unlocks a resource
func (d *mongoDatabase) Unlock(lockId string) error {
	ctx, cancel := d.context()
	defer cancel()

	_, err := d.locker.Unlock(ctx, lockId)
	return err
}

func (d *mongoDatabase) createIndex(collection string, model mongo.IndexModel) error {
	ctx, cancel := d.context()
	defer cancel()
	_, err := d.db.Collection(collection).Indexes().CreateOne(ctx, model)
	return err
}

// Setup Indexes
func (d *mongoDatabase) SetupIndexes() error {
	log.Debug("[DB] Setting up indexes")

	log.Debug("[DB] Setting up indexes for intents")
	err := d.createIndex(models.CollectionIntents, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
	})
	if err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for execution plans")
	err = d.createIndex(models.CollectionExecutionPlans, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
	})
	if err != nil {
		return err
	}

	// (tx_hash, chain_id) is the dedup key of the indexer
	log.Debug("[DB] Setting up indexes for vault transactions")
	err = d.createIndex(models.CollectionVaultTransactions, mongo.IndexModel{
		Keys:    bson.D{{Key: "tx_hash", Value: 1}, {Key: "chain_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	err = d.createIndex(models.CollectionVaultTransactions, mongo.IndexModel{
		Keys: bson.D{{Key: "chain_id", Value: 1}, {Key: "vault_address", Value: 1}, {Key: "block_number", Value: -1}},
	})
	if err != nil {
		return err
	}

	log.Debug("[DB] Setting up indexes for healthchecks")
	err = d.createIndex(models.CollectionHealthChecks, mongo.IndexModel{
		Keys:    bson.D{{Key: "hostname", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	log.Info("[DB] Indexes setup")

	return nil
}

// Disconnect disconnects from the database
func (d *mongoDatabase) Disconnect() error {
	log.Debug("[DB] Disconnecting from database")
	ctx, cancel := d.context()
	defer cancel()
	err := d.db.Client().Disconnect(ctx)
	log.Info("[DB] Disconnected from database")
	return err
}

// method for insert single value in a collection
func (d *mongoDatabase) InsertOne(collection string, data interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	_, err := d.db.Collection(collection).InsertOne(ctx, data)
	return err
}

// method for find single value in a collection
func (d *mongoDatabase) FindOne(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	err := d.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	return err
}

// method for find multiple values in a collection
func (d *mongoDatabase) FindMany(collection string, filter interface{}, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	cursor, err := d.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

// method for find multiple values in a collection in a given order; a limit of 0 means no limit
func (d *mongoDatabase) FindManySorted(collection string, filter interface{}, sort interface{}, limit int64, result interface{}) error {
	ctx, cancel := d.context()
	defer cancel()
	opts := options.Find().SetSort(sort)
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := d.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	err = cursor.All(ctx, result)
	return err
}

// method for counting documents matching a filter
func (d *mongoDatabase) Count(collection string, filter interface{}) (int64, error) {
	ctx, cancel := d.context()
	defer cancel()
	return d.db.Collection(collection).CountDocuments(ctx, filter)
}

// method for update single value in a collection, returns the matched count
func (d *mongoDatabase) UpdateOne(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := d.context()
	defer cancel()
	result, err := d.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// method for update multiple values in a collection, returns the matched count
func (d *mongoDatabase) UpdateMany(collection string, filter interface{}, update interface{}) (int64, error) {
	ctx, cancel := d.context()
	defer cancel()
	result, err := d.db.Collection(collection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// method for upsert single value in a collection
func (d *mongoDatabase) UpsertOne(collection string, filter interface{}, update interface{}) error {
	ctx, cancel := d.context()
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := d.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (d *mongoDatabase) WithTransaction(fn func(tx Database) error) error {
	if d.session != nil {
		return fn(d)
	}

	// the driver retries transient commit errors, give it room for a few attempts
	ctx, cancel := context.WithTimeout(context.Background(), 5*d.timeout)
	defer cancel()

	session, err := d.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		tx := *d
		tx.session = sc
		return nil, fn(&tx)
	})
	return err
}

// InitDB connects to mongo and prepares indexes and lockers
func InitDB(config models.MongoConfig) Database {
	db := NewDatabase(config)

	err := db.Connect()
	if err != nil {
		log.Fatal("[DB] Error connecting to database: ", err)
	}
	err = db.SetupIndexes()
	if err != nil {
		log.Fatal("[DB] Error setting up indexes: ", err)
	}
	err = db.SetupLockers()
	if err != nil {
		log.Fatal("[DB] Error setting up lockers: ", err)
	}
	log.Info("[DB] Database initialized")
	return db
}
