package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/helperlink/helperlink-api/schema"
)

type AreaTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewAreaTestSuite(connURI, dbName string) *AreaTestSuite {
	return &AreaTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *AreaTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *AreaTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	if _, err := s.testDatabase.Collection(schema.AreaCollection).InsertOne(ctx, schema.Area{
		Country: "India",
		State:   "Maharashtra",
		City:    "Pune",
		Pincode: "411001",
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *AreaTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestCreateArea tests inserting an area
func (s *AreaTestSuite) TestCreateArea() {
	store := NewMarketStore(s.mongoClient, s.testDBName)

	area, err := store.CreateArea(schema.Area{
		Country: "India",
		City:    "Mumbai",
		Pincode: "400001",
	})
	s.NoError(err)
	s.False(area.ID.IsZero())

	count, err := s.testDatabase.Collection(schema.AreaCollection).CountDocuments(context.Background(), bson.M{
		"pincode": "400001",
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// TestCreateAreaDuplicatePincode tests that the unique pincode index turns
// a duplicate insert into the sentinel error
func (s *AreaTestSuite) TestCreateAreaDuplicatePincode() {
	store := NewMarketStore(s.mongoClient, s.testDBName)

	area, err := store.CreateArea(schema.Area{
		Country: "India",
		City:    "Pune Again",
		Pincode: "411001",
	})
	s.EqualError(err, ErrAreaExists.Error())
	s.Nil(area)

	count, err := s.testDatabase.Collection(schema.AreaCollection).CountDocuments(context.Background(), bson.M{
		"pincode": "411001",
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// TestUpdateArea tests the pincode-addressed update and the no-upsert rule
func (s *AreaTestSuite) TestUpdateArea() {
	store := NewMarketStore(s.mongoClient, s.testDBName)

	area, err := store.UpdateArea("411001", schema.Area{Region: "West"})
	s.NoError(err)
	s.Equal("West", area.Region)
	s.Equal("Pune", area.City)

	area, err = store.UpdateArea("999999", schema.Area{City: "Nowhere"})
	s.EqualError(err, ErrAreaNotFound.Error())
	s.Nil(area)

	count, err := s.testDatabase.Collection(schema.AreaCollection).CountDocuments(context.Background(), bson.M{
		"pincode": "999999",
	})
	s.NoError(err)
	s.Equal(int64(0), count)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestAreaTestSuite(t *testing.T) {
	suite.Run(t, NewAreaTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-area-db"))
}
