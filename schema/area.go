package schema

import "go.mongodb.org/mongo-driver/bson/primitive"

const AreaCollection = "areas"

// Area is a standalone serviceable region keyed by pincode.
type Area struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Country string             `bson:"country,omitempty" json:"country,omitempty"`
	State   string             `bson:"state,omitempty" json:"state,omitempty"`
	City    string             `bson:"city,omitempty" json:"city,omitempty"`
	Region  string             `bson:"region,omitempty" json:"region,omitempty"`
	Pincode string             `bson:"pincode" json:"pincode"`
}
