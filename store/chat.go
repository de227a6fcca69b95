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
	ErrThreadNotFound   = fmt.Errorf("chat thread not found")
	ErrNotParticipant   = fmt.Errorf("not a participant of this thread")
	ErrInvalidThreadKey = fmt.Errorf("invalid thread key")
)

type ChatStore interface {
	AppendChatMessage(threadKey string, message schema.ChatMessage) (*schema.ChatThread, error)
	GetChatMessages(threadKey string, userID primitive.ObjectID, after int) ([]schema.ChatMessage, int, error)
	ListChatThreads(userID primitive.ObjectID) ([]schema.ChatThread, error)
}

// AppendChatMessage appends a message to a thread's log, creating the
// thread on first use. The whole append is one upsert so racing sends from
// both parties interleave without loss.
func (m *mongoDB) AppendChatMessage(threadKey string, message schema.ChatMessage) (*schema.ChatThread, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if !schema.ValidThreadKey(threadKey) {
		return nil, ErrInvalidThreadKey
	}

	c := m.client.Database(m.database).Collection(schema.ChatThreadCollection)

	now := time.Now().UTC()
	message.Timestamp = now

	update := bson.M{
		"$push":     bson.M{"messages": message},
		"$addToSet": bson.M{"participants": bson.M{"$each": []primitive.ObjectID{message.From, message.To}}},
		"$set":      bson.M{"lastUpdated": now},
	}

	var thread schema.ChatThread
	err := c.FindOneAndUpdate(ctx, bson.M{"threadKey": threadKey}, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&thread)
	if err != nil {
		return nil, err
	}

	return &thread, nil
}

// GetChatMessages returns the messages after a positional cursor together
// with the new cursor. The log is append-only, so positions are stable.
func (m *mongoDB) GetChatMessages(threadKey string, userID primitive.ObjectID, after int) ([]schema.ChatMessage, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ChatThreadCollection)

	var thread schema.ChatThread
	if err := c.FindOne(ctx, bson.M{"threadKey": threadKey}).Decode(&thread); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, 0, ErrThreadNotFound
		}
		return nil, 0, err
	}

	participant := false
	for _, p := range thread.Participants {
		if p == userID {
			participant = true
			break
		}
	}
	if !participant {
		return nil, 0, ErrNotParticipant
	}

	total := len(thread.Messages)
	if after < 0 {
		after = 0
	}
	if after > total {
		after = total
	}

	return thread.Messages[after:], total, nil
}

// ListChatThreads returns the caller's threads ordered by last activity,
// trimmed to the latest message each.
func (m *mongoDB) ListChatThreads(userID primitive.ObjectID) ([]schema.ChatThread, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ChatThreadCollection)

	cursor, err := c.Find(ctx, bson.M{"participants": userID},
		options.Find().
			SetSort(bson.M{"lastUpdated": -1}).
			SetProjection(bson.M{"messages": bson.M{"$slice": -1}}))
	if err != nil {
		return nil, err
	}

	threads := []schema.ChatThread{}
	if err := cursor.All(ctx, &threads); err != nil {
		return nil, err
	}

	return threads, nil
}
