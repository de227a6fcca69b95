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
	ErrAreaExists   = fmt.Errorf("area with this pincode already exists")
	ErrAreaNotFound = fmt.Errorf("area not found")
)

type AreaStore interface {
	CreateArea(area schema.Area) (*schema.Area, error)
	UpdateArea(pincode string, area schema.Area) (*schema.Area, error)
}

// CreateArea inserts an area. The unique pincode index backs the
// existence check.
func (m *mongoDB) CreateArea(area schema.Area) (*schema.Area, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AreaCollection)

	area.ID = primitive.NilObjectID
	result, err := c.InsertOne(ctx, &area)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrAreaExists
		}
		return nil, err
	}
	area.ID = result.InsertedID.(primitive.ObjectID)

	return &area, nil
}

// UpdateArea updates an area addressed by pincode. No upsert.
func (m *mongoDB) UpdateArea(pincode string, area schema.Area) (*schema.Area, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AreaCollection)

	set := bson.M{"updatedAt": time.Now().UTC()}
	if area.Country != "" {
		set["country"] = area.Country
	}
	if area.State != "" {
		set["state"] = area.State
	}
	if area.City != "" {
		set["city"] = area.City
	}
	if area.Region != "" {
		set["region"] = area.Region
	}
	if area.Pincode != "" {
		set["pincode"] = area.Pincode
	}

	var updated schema.Area
	err := c.FindOneAndUpdate(ctx, bson.M{"pincode": pincode}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAreaNotFound
		}
		return nil, err
	}

	return &updated, nil
}
