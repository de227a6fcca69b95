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
	ErrProfileNotFound   = fmt.Errorf("profile not found")
	ErrProfileExists     = fmt.Errorf("profile already exists for this user")
	ErrSkillAlreadyAdded = fmt.Errorf("skill already added to profile")
	ErrNoSkills          = fmt.Errorf("please provide at least one skill")
	ErrInvalidSkillRefs  = fmt.Errorf("one or more skills are invalid")
	ErrAllUsersProfiled  = fmt.Errorf("all users already have profiles")
)

// BulkProfileValidationError carries the entries that failed bulk
// cross-validation so the caller can itemize them.
type BulkProfileValidationError struct {
	Message string
	Invalid []schema.Profile
}

func (e *BulkProfileValidationError) Error() string {
	return e.Message
}

type ProfileStore interface {
	CreateDefaultProfile(userID primitive.ObjectID, designation string) (*schema.Profile, error)
	CreateCompletedProfile(profile schema.Profile) (*schema.Profile, error)
	BulkCreateProfiles(entries []schema.Profile) ([]schema.Profile, error)
	GetProfileByUser(userID primitive.ObjectID) (*schema.Profile, error)
	AddProfileSkill(userID, skillID primitive.ObjectID, skillName string) ([]schema.ProfileSkill, error)
	UpsertProfileSkill(userID, skillID primitive.ObjectID, skillName string) (*schema.Profile, error)
	ListHelperProfiles() ([]schema.ProfileDetail, error)
	ListProfilesByCategory(categoryID primitive.ObjectID) ([]schema.ProfileDetail, error)
}

// profileUserLookup joins the owning user into profile documents under
// userInfo, stripping the password hash.
var profileUserLookup = []bson.M{
	{"$lookup": bson.M{
		"from":         schema.UserCollection,
		"localField":   "user",
		"foreignField": "_id",
		"as":           "userInfo",
	}},
	{"$unwind": "$userInfo"},
	{"$project": bson.M{"userInfo.password": 0}},
}

// CreateDefaultProfile creates the empty profile that accompanies a fresh
// signup. The designation defaults to the user's role until the profile is
// completed.
func (m *mongoDB) CreateDefaultProfile(userID primitive.ObjectID, designation string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	now := time.Now().UTC()
	profile := schema.Profile{
		User:               userID,
		Designation:        designation,
		Skills:             []schema.ProfileSkill{},
		IsProfileCompleted: false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	result, err := c.InsertOne(ctx, &profile)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrProfileExists
		}
		return nil, err
	}
	profile.ID = result.InsertedID.(primitive.ObjectID)

	return &profile, nil
}

// CreateCompletedProfile validates the profile's references and inserts it
// with isProfileCompleted set. Check order: user exists, no existing
// profile, at least one skill, every referenced skill exists.
func (m *mongoDB) CreateCompletedProfile(profile schema.Profile) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := m.GetUser(profile.User); err != nil {
		return nil, err
	}

	if _, err := m.GetProfileByUser(profile.User); err == nil {
		return nil, ErrProfileExists
	} else if err != ErrProfileNotFound {
		return nil, err
	}

	if len(profile.Skills) == 0 {
		return nil, ErrNoSkills
	}

	skillIDs := make([]primitive.ObjectID, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		skillIDs = append(skillIDs, s.Skill)
	}
	validSkills, err := m.findIDs(ctx, schema.SkillCollection, skillIDs)
	if err != nil {
		return nil, err
	}
	for _, s := range profile.Skills {
		if !validSkills[s.Skill] {
			return nil, ErrInvalidSkillRefs
		}
	}

	now := time.Now().UTC()
	profile.ID = primitive.NilObjectID
	profile.IsProfileCompleted = true
	profile.CreatedAt = now
	profile.UpdatedAt = now

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	result, err := c.InsertOne(ctx, &profile)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrProfileExists
		}
		return nil, err
	}
	profile.ID = result.InsertedID.(primitive.ObjectID)

	return &profile, nil
}

// BulkCreateProfiles cross-checks every referenced user and skill with two
// set-membership queries, drops entries whose user already has a profile
// and inserts the remainder. A batch with any unknown reference fails
// before anything is inserted.
func (m *mongoDB) BulkCreateProfiles(entries []schema.Profile) ([]schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	userIDs := make([]primitive.ObjectID, 0, len(entries))
	skillIDs := make([]primitive.ObjectID, 0)
	for _, p := range entries {
		userIDs = append(userIDs, p.User)
		for _, s := range p.Skills {
			skillIDs = append(skillIDs, s.Skill)
		}
	}

	existingUsers, err := m.findIDs(ctx, schema.UserCollection, userIDs)
	if err != nil {
		return nil, err
	}
	validSkills, err := m.findIDs(ctx, schema.SkillCollection, skillIDs)
	if err != nil {
		return nil, err
	}

	invalid := []schema.Profile{}
	for _, p := range entries {
		if !existingUsers[p.User] {
			invalid = append(invalid, p)
			continue
		}
		for _, s := range p.Skills {
			if !validSkills[s.Skill] {
				invalid = append(invalid, p)
				break
			}
		}
	}
	if len(invalid) > 0 {
		return nil, &BulkProfileValidationError{
			Message: "some profiles contain invalid users or skill ids",
			Invalid: invalid,
		}
	}

	// users who already have a profile are silently dropped
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	cursor, err := c.Find(ctx, bson.M{"user": bson.M{"$in": userIDs}},
		options.Find().SetProjection(bson.M{"user": 1}))
	if err != nil {
		return nil, err
	}
	var profiled []struct {
		User primitive.ObjectID `bson:"user"`
	}
	if err := cursor.All(ctx, &profiled); err != nil {
		return nil, err
	}
	hasProfile := make(map[primitive.ObjectID]bool, len(profiled))
	for _, p := range profiled {
		hasProfile[p.User] = true
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(entries))
	created := make([]schema.Profile, 0, len(entries))
	for _, p := range entries {
		if hasProfile[p.User] {
			continue
		}
		p.ID = primitive.NilObjectID
		p.IsProfileCompleted = true
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
		created = append(created, p)
	}
	if len(docs) == 0 {
		return nil, ErrAllUsersProfiled
	}

	result, err := c.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	for i, id := range result.InsertedIDs {
		created[i].ID = id.(primitive.ObjectID)
	}

	return created, nil
}

// GetProfileByUser finds the profile owned by a user.
func (m *mongoDB) GetProfileByUser(userID primitive.ObjectID) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	var profile schema.Profile
	if err := c.FindOne(ctx, bson.M{"user": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// AddProfileSkill appends a skill to a user's profile. The append is a
// single conditional update whose filter excludes profiles already holding
// the skill, so two racing calls cannot both append.
func (m *mongoDB) AddProfileSkill(userID, skillID primitive.ObjectID, skillName string) ([]schema.ProfileSkill, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := m.GetSkill(skillID); err != nil {
		return nil, err
	}

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	query := bson.M{
		"user":         userID,
		"skills.skill": bson.M{"$ne": skillID},
	}
	update := bson.M{
		"$push": bson.M{"skills": schema.ProfileSkill{Skill: skillID, SkillName: skillName}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		// distinguish a missing profile from a duplicate skill
		if _, err := m.GetProfileByUser(userID); err != nil {
			return nil, err
		}
		return nil, ErrSkillAlreadyAdded
	}

	profile, err := m.GetProfileByUser(userID)
	if err != nil {
		return nil, err
	}

	return profile.Skills, nil
}

// UpsertProfileSkill appends a skill to a user's profile, creating the
// profile when it doesn't exist yet.
func (m *mongoDB) UpsertProfileSkill(userID, skillID primitive.ObjectID, skillName string) (*schema.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	now := time.Now().UTC()
	update := bson.M{
		"$push":        bson.M{"skills": schema.ProfileSkill{Skill: skillID, SkillName: skillName}},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now, "isProfileCompleted": false},
	}

	var profile schema.Profile
	err := c.FindOneAndUpdate(ctx, bson.M{"user": userID}, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&profile)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// ListHelperProfiles joins every helper-role user with their profile.
func (m *mongoDB) ListHelperProfiles() ([]schema.ProfileDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	helpers, err := m.ListUsersByRole(schema.RoleHelper)
	if err != nil {
		return nil, err
	}
	if len(helpers) == 0 {
		return []schema.ProfileDetail{}, nil
	}

	helperIDs := make([]primitive.ObjectID, 0, len(helpers))
	for _, u := range helpers {
		helperIDs = append(helperIDs, u.ID)
	}

	return m.aggregateProfiles(ctx, bson.M{"user": bson.M{"$in": helperIDs}})
}

// ListProfilesByCategory resolves the skills under a category, then the
// profiles whose skill list intersects them. Two sequential set-membership
// queries, no transaction.
func (m *mongoDB) ListProfilesByCategory(categoryID primitive.ObjectID) ([]schema.ProfileDetail, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	skillIDs, err := m.ListSkillIDsByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	if len(skillIDs) == 0 {
		return []schema.ProfileDetail{}, nil
	}

	return m.aggregateProfiles(ctx, bson.M{"skills.skill": bson.M{"$in": skillIDs}})
}

func (m *mongoDB) aggregateProfiles(ctx context.Context, match bson.M) ([]schema.ProfileDetail, error) {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)

	pipeline := append([]bson.M{{"$match": match}}, profileUserLookup...)
	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	profiles := []schema.ProfileDetail{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

// findIDs returns the subset of ids that exist in a collection.
func (m *mongoDB) findIDs(ctx context.Context, collection string, ids []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	c := m.client.Database(m.database).Collection(collection)

	cursor, err := c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}},
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

	found := make(map[primitive.ObjectID]bool, len(docs))
	for _, d := range docs {
		found[d.ID] = true
	}

	return found, nil
}
