package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexProfileCollection())
	panicIfError(m.IndexSkillCollection())
	panicIfError(m.IndexCategoryCollection())
	panicIfError(m.IndexRequestCollection())
	panicIfError(m.IndexAreaCollection())
	panicIfError(m.IndexChatThreadCollection())
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	return m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexProfileCollection() error {
	if err := m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"user": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(ProfileCollection, mongo.IndexModel{
		Keys: bson.M{
			"skills.skill": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexSkillCollection() error {
	return m.createIndex(SkillCollection, mongo.IndexModel{
		Keys: bson.M{
			"category": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexCategoryCollection() error {
	return m.createIndex(CategoryCollection, mongo.IndexModel{
		Keys: bson.M{
			"slug": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexRequestCollection() error {
	if err := m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"helperUser": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(RequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"neederUser": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexAreaCollection() error {
	return m.createIndex(AreaCollection, mongo.IndexModel{
		Keys: bson.M{
			"pincode": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexChatThreadCollection() error {
	return m.createIndex(ChatThreadCollection, mongo.IndexModel{
		Keys: bson.M{
			"threadKey": 1,
		},
		Options: options.Index().SetUnique(true),
	})
}
