package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RequestCollection = "requests"

// RequestStatus is the engagement state of a service request. Transitions
// are not constrained server-side.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

// PriceType is how the price of a request is interpreted.
type PriceType string

const (
	PriceFixed      PriceType = "fixed"
	PriceHourly     PriceType = "hourly"
	PriceNegotiable PriceType = "negotiable"
)

// ServiceRequest is a service engagement proposal from a needer to a helper
// with a time window and price terms.
type ServiceRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HelperUser     primitive.ObjectID `bson:"helperUser" json:"helperUser"`
	NeederUser     primitive.ObjectID `bson:"neederUser" json:"neederUser"`
	ReqTitle       string             `bson:"reqTitle" json:"reqTitle"`
	ReqDescription string             `bson:"reqDescription" json:"reqDescription"`
	Status         RequestStatus      `bson:"status" json:"status"`
	ReqStartTiming time.Time          `bson:"reqStartTiming" json:"reqStartTiming"`
	ReqEndTiming   time.Time          `bson:"reqEndTiming" json:"reqEndTiming"`
	PriceType      PriceType          `bson:"priceType" json:"priceType"`
	Price          float64            `bson:"price,omitempty" json:"price,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RequestUpdates enumerates the mutable fields of a request. The identifier
// is not part of the type, so it cannot be changed through an update. Unset
// fields are left untouched.
type RequestUpdates struct {
	HelperUser     *primitive.ObjectID `json:"helperUser"`
	NeederUser     *primitive.ObjectID `json:"neederUser"`
	ReqTitle       *string             `json:"reqTitle"`
	ReqDescription *string             `json:"reqDescription"`
	Status         *RequestStatus      `json:"status"`
	ReqStartTiming *time.Time          `json:"reqStartTiming"`
	ReqEndTiming   *time.Time          `json:"reqEndTiming"`
	PriceType      *PriceType          `json:"priceType"`
	Price          *float64            `json:"price"`
	Location       *string             `json:"location"`
	Address        *string             `json:"address"`
}

// SetDocument renders the non-nil fields as a $set document.
func (u RequestUpdates) SetDocument() bson.M {
	set := bson.M{}
	if u.HelperUser != nil {
		set["helperUser"] = *u.HelperUser
	}
	if u.NeederUser != nil {
		set["neederUser"] = *u.NeederUser
	}
	if u.ReqTitle != nil {
		set["reqTitle"] = *u.ReqTitle
	}
	if u.ReqDescription != nil {
		set["reqDescription"] = *u.ReqDescription
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	if u.ReqStartTiming != nil {
		set["reqStartTiming"] = *u.ReqStartTiming
	}
	if u.ReqEndTiming != nil {
		set["reqEndTiming"] = *u.ReqEndTiming
	}
	if u.PriceType != nil {
		set["priceType"] = *u.PriceType
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Location != nil {
		set["location"] = *u.Location
	}
	if u.Address != nil {
		set["address"] = *u.Address
	}
	return set
}

// RequestDetail is a request joined with both referenced users.
type RequestDetail struct {
	ServiceRequest `bson:",inline"`
	Helper         ProfileUser `bson:"helper" json:"helper"`
	Needer         ProfileUser `bson:"needer" json:"needer"`
}
