package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/helperlink/helperlink-api/api/mocks"
	"github.com/helperlink/helperlink-api/schema"
	"github.com/helperlink/helperlink-api/store"
)

func TestSendChatMessage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	from := primitive.NewObjectID()
	to := primitive.NewObjectID()
	threadKey := schema.PairThreadKey(from, to)

	m.EXPECT().
		AppendChatMessage(threadKey, gomock.Any()).
		DoAndReturn(func(_ string, msg schema.ChatMessage) (*schema.ChatThread, error) {
			assert.Equal(t, from, msg.From, "wrong sender")
			assert.Equal(t, to, msg.To, "wrong recipient")
			assert.Equal(t, "hello", msg.Message, "wrong message")
			return &schema.ChatThread{
				ThreadKey:    threadKey,
				Participants: []primitive.ObjectID{from, to},
				Messages:     []schema.ChatMessage{msg},
				LastUpdated:  time.Now().UTC(),
			}, nil
		}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/threads/:threadKey/messages", s.authMiddleware(), s.sendChatMessage)

	body := fmt.Sprintf(`{"to": %q, "message": "hello"}`, to.Hex())
	req := httptest.NewRequest("POST", "/threads/"+threadKey+"/messages", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(t, &s, from, schema.RoleNeeder))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp struct {
		ThreadKey string `json:"threadKey"`
		Total     int    `json:"total"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, threadKey, jResp.ThreadKey, "wrong thread key")
	assert.Equal(t, 1, jResp.Total, "wrong message total")
}

func TestSendChatMessageWrongThread(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	from := primitive.NewObjectID()
	to := primitive.NewObjectID()
	// a thread between two other users
	otherKey := schema.PairThreadKey(primitive.NewObjectID(), primitive.NewObjectID())

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/threads/:threadKey/messages", s.authMiddleware(), s.sendChatMessage)

	body := fmt.Sprintf(`{"to": %q, "message": "hello"}`, to.Hex())
	req := httptest.NewRequest("POST", "/threads/"+otherKey+"/messages", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(t, &s, from, schema.RoleNeeder))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestSendRequestThreadMessage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	helperID := primitive.NewObjectID()
	neederID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()
	threadKey := schema.RequestThreadKey(requestID, helperID)

	m.EXPECT().GetRequest(requestID).Return(&schema.ServiceRequest{
		ID:         requestID,
		HelperUser: helperID,
		NeederUser: neederID,
	}, nil).Times(1)
	m.EXPECT().
		AppendChatMessage(threadKey, gomock.Any()).
		DoAndReturn(func(_ string, msg schema.ChatMessage) (*schema.ChatThread, error) {
			return &schema.ChatThread{
				ThreadKey:    threadKey,
				Participants: []primitive.ObjectID{helperID, neederID},
				Messages:     []schema.ChatMessage{msg},
				LastUpdated:  time.Now().UTC(),
			}, nil
		}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/threads/:threadKey/messages", s.authMiddleware(), s.sendChatMessage)

	body := fmt.Sprintf(`{"to": %q, "message": "when do you arrive?"}`, helperID.Hex())
	req := httptest.NewRequest("POST", "/threads/"+threadKey+"/messages", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(t, &s, neederID, schema.RoleNeeder))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")
}

// a user outside the request's helper/needer pair cannot write into its
// thread, not even by addressing the helper
func TestSendRequestThreadMessageOutsider(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	helperID := primitive.NewObjectID()
	neederID := primitive.NewObjectID()
	outsiderID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()
	threadKey := schema.RequestThreadKey(requestID, helperID)

	m.EXPECT().GetRequest(requestID).Return(&schema.ServiceRequest{
		ID:         requestID,
		HelperUser: helperID,
		NeederUser: neederID,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/threads/:threadKey/messages", s.authMiddleware(), s.sendChatMessage)

	body := fmt.Sprintf(`{"to": %q, "message": "let me in"}`, helperID.Hex())
	req := httptest.NewRequest("POST", "/threads/"+threadKey+"/messages", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(t, &s, outsiderID, schema.RoleNeeder))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

// a key naming a helper who is not the request's helper is rejected
func TestSendRequestThreadMessageHelperMismatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	helperID := primitive.NewObjectID()
	neederID := primitive.NewObjectID()
	requestID := primitive.NewObjectID()
	// key forged around a different helper id
	threadKey := schema.RequestThreadKey(requestID, primitive.NewObjectID())

	m.EXPECT().GetRequest(requestID).Return(&schema.ServiceRequest{
		ID:         requestID,
		HelperUser: helperID,
		NeederUser: neederID,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/threads/:threadKey/messages", s.authMiddleware(), s.sendChatMessage)

	body := fmt.Sprintf(`{"to": %q, "message": "hello"}`, helperID.Hex())
	req := httptest.NewRequest("POST", "/threads/"+threadKey+"/messages", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(t, &s, neederID, schema.RoleNeeder))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestSendChatMessageMalformedKey(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	from := primitive.NewObjectID()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/threads/:threadKey/messages", s.authMiddleware(), s.sendChatMessage)

	body := fmt.Sprintf(`{"to": %q, "message": "hello"}`, primitive.NewObjectID().Hex())
	req := httptest.NewRequest("POST", "/threads/not-a-thread/messages", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(t, &s, from, schema.RoleNeeder))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestGetChatMessagesAfterCursor(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	userID := primitive.NewObjectID()
	peerID := primitive.NewObjectID()
	threadKey := schema.PairThreadKey(userID, peerID)

	m.EXPECT().
		GetChatMessages(threadKey, userID, 2).
		Return([]schema.ChatMessage{
			{From: peerID, To: userID, Message: "are you still coming?"},
		}, 3, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/threads/:threadKey/messages", s.authMiddleware(), s.getChatMessages)

	req := httptest.NewRequest("GET", "/threads/"+threadKey+"/messages?after=2", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, &s, userID, schema.RoleHelper))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Messages []schema.ChatMessage `json:"messages"`
		Next     int                  `json:"next"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Messages, 1, "wrong message count")
	assert.Equal(t, 3, jResp.Next, "wrong next cursor")
}

func TestGetChatMessagesNotParticipant(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	userID := primitive.NewObjectID()
	threadKey := schema.PairThreadKey(primitive.NewObjectID(), primitive.NewObjectID())

	m.EXPECT().
		GetChatMessages(threadKey, userID, 0).
		Return(nil, 0, store.ErrNotParticipant).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/threads/:threadKey/messages", s.authMiddleware(), s.getChatMessages)

	req := httptest.NewRequest("GET", "/threads/"+threadKey+"/messages", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, &s, userID, schema.RoleHelper))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestListChatThreads(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	userID := primitive.NewObjectID()
	peerID := primitive.NewObjectID()

	m.EXPECT().ListChatThreads(userID).Return([]schema.ChatThread{
		{
			ThreadKey:    schema.PairThreadKey(userID, peerID),
			Participants: []primitive.ObjectID{userID, peerID},
			Messages:     []schema.ChatMessage{{From: peerID, To: userID, Message: "hi"}},
		},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/threads", s.authMiddleware(), s.listChatThreads)

	req := httptest.NewRequest("GET", "/threads", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, &s, userID, schema.RoleHelper))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Threads []schema.ChatThread `json:"threads"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp.Threads, 1, "wrong thread count")
}
