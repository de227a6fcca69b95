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

var ErrSkillNotFound = fmt.Errorf("skill not found")

type SkillStore interface {
	CreateSkill(name string, category primitive.ObjectID, description string) (*schema.Skill, error)
	CreateSkills(skills []schema.Skill) ([]schema.Skill, error)
	GetSkill(id primitive.ObjectID) (*schema.Skill, error)
	ListSkills() ([]schema.Skill, error)
	ListSkillIDsByCategory(categoryID primitive.ObjectID) ([]primitive.ObjectID, error)
}

// CreateSkill inserts a single skill.
func (m *mongoDB) CreateSkill(name string, category primitive.ObjectID, description string) (*schema.Skill, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SkillCollection)

	now := time.Now().UTC()
	skill := schema.Skill{
		Name:        name,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := c.InsertOne(ctx, &skill)
	if err != nil {
		return nil, err
	}
	skill.ID = result.InsertedID.(primitive.ObjectID)

	return &skill, nil
}

// CreateSkills batch-inserts skills in a single call. A mid-batch failure
// is surfaced as-is, not itemized.
func (m *mongoDB) CreateSkills(skills []schema.Skill) ([]schema.Skill, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SkillCollection)

	now := time.Now().UTC()
	docs := make([]interface{}, len(skills))
	for i := range skills {
		skills[i].CreatedAt = now
		skills[i].UpdatedAt = now
		docs[i] = skills[i]
	}

	result, err := c.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	for i, id := range result.InsertedIDs {
		skills[i].ID = id.(primitive.ObjectID)
	}

	return skills, nil
}

// GetSkill finds a skill by id.
func (m *mongoDB) GetSkill(id primitive.ObjectID) (*schema.Skill, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SkillCollection)

	var skill schema.Skill
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&skill); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}

	return &skill, nil
}

// ListSkills returns all skills.
func (m *mongoDB) ListSkills() ([]schema.Skill, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SkillCollection)

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	skills := []schema.Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, err
	}

	return skills, nil
}

// ListSkillIDsByCategory returns the ids of all skills under a category.
func (m *mongoDB) ListSkillIDsByCategory(categoryID primitive.ObjectID) ([]primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SkillCollection)

	cursor, err := c.Find(ctx, bson.M{"category": categoryID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}

	return ids, nil
}
