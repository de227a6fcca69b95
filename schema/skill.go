package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SkillCollection = "skills"

// Skill is a service offering under a category.
type Skill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Category    primitive.ObjectID `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
