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
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrSlugTaken        = fmt.Errorf("a category with this slug already exists")
)

// BulkUpdateReport summarizes a category bulk update.
type BulkUpdateReport struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}

type CategoryStore interface {
	CreateCategories(categories []schema.Category) ([]schema.Category, error)
	ListCategories() ([]schema.Category, error)
	UpdateCategory(id primitive.ObjectID, updates map[string]interface{}) (*schema.Category, error)
	BulkUpdateCategories(entries []map[string]interface{}) (*BulkUpdateReport, error)
}

// CreateCategories batch-inserts categories in a single call.
func (m *mongoDB) CreateCategories(categories []schema.Category) ([]schema.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CategoryCollection)

	now := time.Now().UTC()
	docs := make([]interface{}, len(categories))
	for i := range categories {
		categories[i].CreatedAt = now
		categories[i].UpdatedAt = now
		docs[i] = categories[i]
	}

	result, err := c.InsertMany(ctx, docs)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	for i, id := range result.InsertedIDs {
		categories[i].ID = id.(primitive.ObjectID)
	}

	return categories, nil
}

// ListCategories returns all categories.
func (m *mongoDB) ListCategories() ([]schema.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CategoryCollection)

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	categories := []schema.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// UpdateCategory applies a field-set update to one category and returns the
// updated document.
func (m *mongoDB) UpdateCategory(id primitive.ObjectID, updates map[string]interface{}) (*schema.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CategoryCollection)

	delete(updates, "_id")
	delete(updates, "id")
	updates["updatedAt"] = time.Now().UTC()

	var category schema.Category
	err := c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	return &category, nil
}

// BulkUpdateCategories applies each entry as an independent $set keyed by
// its _id. Entries are not cross-validated against the category schema;
// callers own the shape of what they send.
func (m *mongoDB) BulkUpdateCategories(entries []map[string]interface{}) (*BulkUpdateReport, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CategoryCollection)

	now := time.Now().UTC()
	ops := make([]mongo.WriteModel, 0, len(entries))
	for _, entry := range entries {
		rawID, ok := entry["_id"].(string)
		if !ok {
			return nil, fmt.Errorf("bulk update entry without _id")
		}
		id, err := primitive.ObjectIDFromHex(rawID)
		if err != nil {
			return nil, fmt.Errorf("bulk update entry with malformed _id: %s", rawID)
		}

		set := make(map[string]interface{}, len(entry))
		for k, v := range entry {
			if k == "_id" || k == "id" {
				continue
			}
			set[k] = v
		}
		set["updatedAt"] = now

		ops = append(ops, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": set}))
	}

	result, err := c.BulkWrite(ctx, ops)
	if err != nil {
		return nil, err
	}

	return &BulkUpdateReport{
		Matched:  result.MatchedCount,
		Modified: result.ModifiedCount,
	}, nil
}
