package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/helperlink/helperlink-api/schema"
	"github.com/helperlink/helperlink-api/store"
)

// threadAllowsSender checks the caller against the participants of the
// thread key. Request-bound threads are resolved against the referenced
// request; only its helper and needer may write, and only to each other.
func (s *Server) threadAllowsSender(key string, from, to primitive.ObjectID) (bool, error) {
	parts := strings.Split(key, ":")
	if len(parts) != 3 {
		return false, nil
	}

	switch parts[0] {
	case "chat":
		return key == schema.PairThreadKey(from, to), nil
	case "request":
		requestID, err := primitive.ObjectIDFromHex(parts[1])
		if err != nil {
			return false, nil
		}
		request, err := s.store.GetRequest(requestID)
		if err != nil {
			if err == store.ErrRequestNotFound {
				return false, nil
			}
			return false, err
		}
		if request.HelperUser.Hex() != parts[2] {
			return false, nil
		}
		pair := func(id primitive.ObjectID) bool {
			return id == request.HelperUser || id == request.NeederUser
		}
		return pair(from) && pair(to) && from != to, nil
	}
	return false, nil
}

// sendChatMessage appends a message to a thread's log. The append is a
// single upsert against the thread document.
func (s *Server) sendChatMessage(c *gin.Context) {
	from := requesterID(c)
	threadKey := c.Param("threadKey")

	var params struct {
		To      primitive.ObjectID `json:"to" binding:"required"`
		Message string             `json:"message" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !schema.ValidThreadKey(threadKey) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidThreadKey)
		return
	}
	allowed, err := s.threadAllowsSender(threadKey, from, params.To)
	if shouldInterupt(err, c) {
		return
	}
	if !allowed {
		abortWithEncoding(c, http.StatusForbidden, errorNotParticipant)
		return
	}

	thread, err := s.store.AppendChatMessage(threadKey, schema.ChatMessage{
		From:    from,
		To:      params.To,
		Message: params.Message,
	})
	if err != nil {
		if err == store.ErrInvalidThreadKey {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidThreadKey)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"threadKey":   thread.ThreadKey,
		"total":       len(thread.Messages),
		"lastUpdated": thread.LastUpdated,
	})
}

// getChatMessages reads a thread's log from a positional cursor. Clients
// poll with the cursor returned from the previous read.
func (s *Server) getChatMessages(c *gin.Context) {
	userID := requesterID(c)
	threadKey := c.Param("threadKey")

	after := 0
	if raw := c.Query("after"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		after = parsed
	}

	messages, next, err := s.store.GetChatMessages(threadKey, userID, after)
	if err != nil {
		switch err {
		case store.ErrThreadNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorThreadNotFound)
		case store.ErrNotParticipant:
			abortWithEncoding(c, http.StatusForbidden, errorNotParticipant)
		default:
			shouldInterupt(err, c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"next":     next,
	})
}

// listChatThreads returns the caller's threads ordered by last activity
func (s *Server) listChatThreads(c *gin.Context) {
	userID := requesterID(c)

	threads, err := s.store.ListChatThreads(userID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"threads": threads})
}
