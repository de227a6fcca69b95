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

var ErrRequestNotFound = fmt.Errorf("request not found")

// RequestFilter holds the optional equality filters of a request listing.
type RequestFilter struct {
	HelperUser *primitive.ObjectID
	NeederUser *primitive.ObjectID
}

type RequestStore interface {
	CreateRequest(request schema.ServiceRequest) (*schema.ServiceRequest, error)
	GetRequest(id primitive.ObjectID) (*schema.ServiceRequest, error)
	ListRequests(filter RequestFilter) ([]schema.RequestDetail, error)
	UpdateRequest(id primitive.ObjectID, updates schema.RequestUpdates) (*schema.ServiceRequest, error)
	DeleteRequest(id primitive.ObjectID) error
}

// CreateRequest stores a request. Defaults the caller left unset are filled
// here: status pending, price type negotiable.
func (m *mongoDB) CreateRequest(request schema.ServiceRequest) (*schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	now := time.Now().UTC()
	request.ID = primitive.NilObjectID
	if request.Status == "" {
		request.Status = schema.RequestPending
	}
	if request.PriceType == "" {
		request.PriceType = schema.PriceNegotiable
	}
	request.CreatedAt = now
	request.UpdatedAt = now

	result, err := c.InsertOne(ctx, &request)
	if err != nil {
		return nil, err
	}
	request.ID = result.InsertedID.(primitive.ObjectID)

	return &request, nil
}

// GetRequest finds a request by id.
func (m *mongoDB) GetRequest(id primitive.ObjectID) (*schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	var request schema.ServiceRequest
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// ListRequests returns all matching requests with both user references
// populated.
func (m *mongoDB) ListRequests(filter RequestFilter) ([]schema.RequestDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	match := bson.M{}
	if filter.HelperUser != nil {
		match["helperUser"] = *filter.HelperUser
	}
	if filter.NeederUser != nil {
		match["neederUser"] = *filter.NeederUser
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$lookup": bson.M{
			"from":         schema.UserCollection,
			"localField":   "helperUser",
			"foreignField": "_id",
			"as":           "helper",
		}},
		{"$unwind": "$helper"},
		{"$lookup": bson.M{
			"from":         schema.UserCollection,
			"localField":   "neederUser",
			"foreignField": "_id",
			"as":           "needer",
		}},
		{"$unwind": "$needer"},
		{"$project": bson.M{"helper.password": 0, "needer.password": 0}},
		{"$sort": bson.M{"createdAt": -1}},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	requests := []schema.RequestDetail{}
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateRequest merges the set fields of updates into one request and
// returns the updated document. The identifier is not part of the updates
// type, so it cannot be rewritten.
func (m *mongoDB) UpdateRequest(id primitive.ObjectID, updates schema.RequestUpdates) (*schema.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	set := updates.SetDocument()
	set["updatedAt"] = time.Now().UTC()

	var request schema.ServiceRequest
	err := c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// DeleteRequest physically removes a request.
func (m *mongoDB) DeleteRequest(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCollection)

	result, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRequestNotFound
	}

	return nil
}
