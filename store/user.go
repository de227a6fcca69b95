package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/helperlink/helperlink-api/schema"
)

var (
	ErrEmailTaken   = fmt.Errorf("a user with this email already exists")
	ErrUserNotFound = fmt.Errorf("user not found")
)

type UserStore interface {
	CreateUser(name, email, hashedPassword string, role schema.UserRole) (*schema.User, error)
	CreateUsers(users []schema.User) ([]schema.User, error)
	GetUser(id primitive.ObjectID) (*schema.User, error)
	GetUserByEmail(email string) (*schema.User, error)
	ListUsersByRole(role schema.UserRole) ([]schema.User, error)
}

// CreateUser inserts a new user. The unique index on email turns a racing
// duplicate signup into ErrEmailTaken.
func (m *mongoDB) CreateUser(name, email, hashedPassword string, role schema.UserRole) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	now := time.Now().UTC()
	user := schema.User{
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := c.InsertOne(ctx, &user)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	user.ID = result.InsertedID.(primitive.ObjectID)

	return &user, nil
}

// CreateUsers batch-inserts users. Insertion is a single batch call, so a
// mid-batch failure can leave earlier documents behind.
func (m *mongoDB) CreateUsers(users []schema.User) ([]schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	now := time.Now().UTC()
	docs := make([]interface{}, len(users))
	for i := range users {
		users[i].CreatedAt = now
		users[i].UpdatedAt = now
		docs[i] = users[i]
	}

	result, err := c.InsertMany(ctx, docs)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	for i, id := range result.InsertedIDs {
		users[i].ID = id.(primitive.ObjectID)
	}

	return users, nil
}

// GetUser finds a user by id.
func (m *mongoDB) GetUser(id primitive.ObjectID) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetUserByEmail finds a user by email.
func (m *mongoDB) GetUserByEmail(email string) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	var user schema.User
	if err := c.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// ListUsersByRole returns all users with the given role.
func (m *mongoDB) ListUsersByRole(role schema.UserRole) ([]schema.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.UserCollection)

	cursor, err := c.Find(ctx, bson.M{"role": role}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}

	users := []schema.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}
