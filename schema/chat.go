package schema

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ChatThreadCollection = "chat_threads"

// ChatMessage is a single entry in a thread's append-only message log.
type ChatMessage struct {
	From      primitive.ObjectID `bson:"from" json:"from"`
	To        primitive.ObjectID `bson:"to" json:"to"`
	Message   string             `bson:"message" json:"message"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// ChatThread is a per-pair message log. The thread key is a deterministic
// function of its participants, so both parties derive the same thread
// without any coordination.
type ChatThread struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ThreadKey    string               `bson:"threadKey" json:"threadKey"`
	Participants []primitive.ObjectID `bson:"participants" json:"participants"`
	Messages     []ChatMessage        `bson:"messages" json:"messages"`
	LastUpdated  time.Time            `bson:"lastUpdated" json:"lastUpdated"`
}

// PairThreadKey derives the thread key for a direct conversation. The pair
// is sorted so either side derives the same key.
func PairThreadKey(a, b primitive.ObjectID) string {
	lo, hi := a.Hex(), b.Hex()
	if lo > hi {
		lo, hi = hi, lo
	}
	return fmt.Sprintf("chat:%s:%s", lo, hi)
}

// RequestThreadKey derives the thread key for a conversation tied to a
// service request.
func RequestThreadKey(requestID, helperID primitive.ObjectID) string {
	return fmt.Sprintf("request:%s:%s", requestID.Hex(), helperID.Hex())
}

// ValidThreadKey reports whether key has one of the two recognized forms.
func ValidThreadKey(key string) bool {
	parts := strings.Split(key, ":")
	if len(parts) != 3 {
		return false
	}
	if parts[0] != "chat" && parts[0] != "request" {
		return false
	}
	for _, p := range parts[1:] {
		if _, err := primitive.ObjectIDFromHex(p); err != nil {
			return false
		}
	}
	return true
}
