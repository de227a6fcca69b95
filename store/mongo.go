package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MarketStore - interface for all marketplace datastore operations
type MarketStore interface {
	UserStore
	ProfileStore
	SkillStore
	CategoryStore
	RequestStore
	AreaStore
	ChatStore
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMarketStore - return marketplace db operations
func NewMarketStore(client *mongo.Client, database string) MarketStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

// isDuplicateKeyError reports whether err is a unique index violation.
func isDuplicateKeyError(err error) bool {
	switch e := err.(type) {
	case mongo.WriteException:
		for _, we := range e.WriteErrors {
			if we.Code == 11000 {
				return true
			}
		}
	case mongo.BulkWriteException:
		for _, we := range e.WriteErrors {
			if we.Code == 11000 {
				return true
			}
		}
	case mongo.CommandError:
		return e.Code == 11000
	}
	return false
}
