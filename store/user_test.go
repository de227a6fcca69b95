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

type UserTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewUserTestSuite(connURI, dbName string) *UserTestSuite {
	return &UserTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *UserTestSuite) SetupSuite() {
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
}

// CleanMongoDB drop the whole test mongodb
func (s *UserTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

// TestCreateUser tests inserting a user and the unique email constraint
func (s *UserTestSuite) TestCreateUser() {
	store := NewMarketStore(s.mongoClient, s.testDBName)

	user, err := store.CreateUser("Alice", "alice@user-test.com", "hashed", schema.RoleHelper)
	s.NoError(err)
	s.False(user.ID.IsZero())
	s.Equal(schema.RoleHelper, user.Role)

	dup, err := store.CreateUser("Alice Again", "alice@user-test.com", "hashed", schema.RoleNeeder)
	s.EqualError(err, ErrEmailTaken.Error())
	s.Nil(dup)

	count, err := s.testDatabase.Collection(schema.UserCollection).CountDocuments(context.Background(), bson.M{
		"email": "alice@user-test.com",
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// TestGetUserByEmail tests the email lookup used by login
func (s *UserTestSuite) TestGetUserByEmail() {
	store := NewMarketStore(s.mongoClient, s.testDBName)

	created, err := store.CreateUser("Bob", "bob@user-test.com", "hashed", schema.RoleNeeder)
	s.NoError(err)

	user, err := store.GetUserByEmail("bob@user-test.com")
	s.NoError(err)
	s.Equal(created.ID, user.ID)
	s.Equal("hashed", user.Password)

	user, err = store.GetUserByEmail("nobody@user-test.com")
	s.EqualError(err, ErrUserNotFound.Error())
	s.Nil(user)
}

// TestListUsersByRole tests the role listing used by the helper directory
func (s *UserTestSuite) TestListUsersByRole() {
	store := NewMarketStore(s.mongoClient, s.testDBName)

	_, err := store.CreateUsers([]schema.User{
		{Name: "Zoe", Email: "zoe@user-test.com", Password: "hashed", Role: schema.RoleHelper},
		{Name: "Carl", Email: "carl@user-test.com", Password: "hashed", Role: schema.RoleHelper},
	})
	s.NoError(err)

	helpers, err := store.ListUsersByRole(schema.RoleHelper)
	s.NoError(err)

	names := make([]string, 0, len(helpers))
	for _, u := range helpers {
		s.Equal(schema.RoleHelper, u.Role)
		names = append(names, u.Name)
	}
	s.Contains(names, "Zoe")
	s.Contains(names, "Carl")
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestUserTestSuite(t *testing.T) {
	suite.Run(t, NewUserTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-user-db"))
}
