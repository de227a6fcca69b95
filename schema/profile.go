package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ProfileCollection = "profiles"

// ProfileSkill is a skill reference carried on a profile. The name is
// denormalized so profile listings don't need an extra lookup.
type ProfileSkill struct {
	Skill     primitive.ObjectID `bson:"skill" json:"skill"`
	SkillName string             `bson:"skillName" json:"skillName"`
}

type ProfileArea struct {
	City     string `bson:"city,omitempty" json:"city,omitempty"`
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
	Landmark string `bson:"landmark,omitempty" json:"landmark,omitempty"`
	Region   string `bson:"region,omitempty" json:"region,omitempty"`
	State    string `bson:"state,omitempty" json:"state,omitempty"`
	Country  string `bson:"country,omitempty" json:"country,omitempty"`
	Pincode  string `bson:"pincode,omitempty" json:"pincode,omitempty"`
}

type ProfileRating struct {
	Rating   float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Feedback string  `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Comments string  `bson:"comments,omitempty" json:"comments,omitempty"`
}

type JobTiming struct {
	DaysAvailable []string `bson:"daysAvailable,omitempty" json:"daysAvailable,omitempty"`
	TimeSlots     []string `bson:"timeSlots,omitempty" json:"timeSlots,omitempty"`
}

// Profile holds the extended attributes of a user. At most one profile
// exists per user, enforced by a unique index on the user reference.
type Profile struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User               primitive.ObjectID `bson:"user" json:"user"`
	Designation        string             `bson:"designation" json:"designation"`
	Experience         float64            `bson:"experience" json:"experience"`
	Skills             []ProfileSkill     `bson:"skills" json:"skills"`
	Area               ProfileArea        `bson:"area" json:"area"`
	Rating             ProfileRating      `bson:"rating" json:"rating"`
	JobTiming          JobTiming          `bson:"jobTiming" json:"jobTiming"`
	IsProfileCompleted bool               `bson:"isProfileCompleted" json:"isProfileCompleted"`
	HourlyRate         float64            `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasSkill reports whether the profile already carries the given skill id.
func (p Profile) HasSkill(skillID primitive.ObjectID) bool {
	for _, s := range p.Skills {
		if s.Skill == skillID {
			return true
		}
	}
	return false
}

// ProfileUser is the populated slice of user fields attached to profile
// listings.
type ProfileUser struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  UserRole           `bson:"role" json:"role"`
}

// ProfileDetail is a profile joined with its owning user.
type ProfileDetail struct {
	Profile  `bson:",inline"`
	UserInfo ProfileUser `bson:"userInfo" json:"userInfo"`
}
