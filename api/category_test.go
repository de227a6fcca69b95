package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/helperlink/helperlink-api/api/mocks"
	"github.com/helperlink/helperlink-api/schema"
	"github.com/helperlink/helperlink-api/store"
)

func TestListCategories(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	categories := []schema.Category{
		{ID: primitive.NewObjectID(), Name: "Plumbing", Slug: "plumbing", IsActive: true},
		{ID: primitive.NewObjectID(), Name: "Electrical", Slug: "electrical", IsActive: true},
	}
	// listing is read-only, repeated fetches return the same set
	m.EXPECT().ListCategories().Return(categories, nil).Times(2)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.listCategories)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

		var jResp []schema.Category
		err := json.Unmarshal([]byte(w.Body.String()), &jResp)
		assert.Nil(t, err, "wrong json unmarshal")
		assert.Len(t, jResp, 2, "wrong category count")
		assert.Equal(t, "plumbing", jResp[0].Slug, "wrong slug")
	}
}

func TestAddCategoriesSlugTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	m.EXPECT().CreateCategories(gomock.Any()).Return(nil, store.ErrSlugTaken).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.authMiddleware(), s.addCategories)

	body := `[{"name": "Plumbing", "slug": "plumbing"}]`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken(t, &s, primitive.NewObjectID(), schema.RoleHelper))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
}

func TestUpdateCategoryNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	id := primitive.NewObjectID()
	m.EXPECT().UpdateCategory(id, gomock.Any()).Return(nil, store.ErrCategoryNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/update/:id", s.updateCategory)

	req := httptest.NewRequest("PUT", "/update/"+id.Hex(), strings.NewReader(`{"isActive": false}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestBulkUpdateCategories(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	m.EXPECT().
		BulkUpdateCategories(gomock.Any()).
		Return(&store.BulkUpdateReport{Matched: 2, Modified: 1}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/", s.bulkUpdateCategories)

	body := fmt.Sprintf(`[
		{"_id": %q, "isActive": false},
		{"_id": %q, "name": "Electrical Work"}
	]`, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	req := httptest.NewRequest("PUT", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result store.BulkUpdateReport `json:"result"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(2), jResp.Result.Matched, "wrong matched count")
	assert.Equal(t, int64(1), jResp.Result.Modified, "wrong modified count")
}

func TestBulkUpdateCategoriesWithoutID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMarketStore(ctl)
	s := Server{store: m, cfg: testConfig}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/", s.bulkUpdateCategories)

	body := `[{"name": "Plumbing"}]`
	req := httptest.NewRequest("PUT", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
