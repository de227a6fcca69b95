package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/helperlink/helperlink-api/schema"
	"github.com/helperlink/helperlink-api/store"
)

// createRequest is the API for a needer to propose a service engagement to
// a helper. Missing required fields are itemized; the time window must
// parse, be ordered, and lie in the future.
func (s *Server) createRequest(c *gin.Context) {
	logger := log.WithField("api", "createRequest")

	var params struct {
		HelperUser     string           `json:"helperUser"`
		NeederUser     string           `json:"neederUser"`
		ReqTitle       string           `json:"reqTitle"`
		ReqDescription string           `json:"reqDescription"`
		ReqStartTiming string           `json:"reqStartTiming"`
		ReqEndTiming   string           `json:"reqEndTiming"`
		PriceType      schema.PriceType `json:"priceType"`
		Price          float64          `json:"price"`
		Location       string           `json:"location"`
		Address        string           `json:"address"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorCannotParseRequest.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	missing := []string{}
	if params.HelperUser == "" {
		missing = append(missing, "helperUser")
	}
	if params.NeederUser == "" {
		missing = append(missing, "neederUser")
	}
	if params.ReqTitle == "" {
		missing = append(missing, "reqTitle")
	}
	if params.ReqDescription == "" {
		missing = append(missing, "reqDescription")
	}
	if params.ReqStartTiming == "" {
		missing = append(missing, "reqStartTiming")
	}
	if params.ReqEndTiming == "" {
		missing = append(missing, "reqEndTiming")
	}
	if len(missing) > 0 {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
		})
		return
	}

	helperID, err := primitive.ObjectIDFromHex(params.HelperUser)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	neederID, err := primitive.ObjectIDFromHex(params.NeederUser)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	start, startErr := time.Parse(time.RFC3339, params.ReqStartTiming)
	end, endErr := time.Parse(time.RFC3339, params.ReqEndTiming)
	if startErr != nil || endErr != nil {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "invalid date format",
		})
		return
	}

	now := time.Now()
	if start.After(end) {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "start time cannot be after end time",
		})
		return
	}
	if start.Before(now) || end.Before(now) {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "start and end cannot be in the past",
		})
		return
	}

	request, err := s.store.CreateRequest(schema.ServiceRequest{
		HelperUser:     helperID,
		NeederUser:     neederID,
		ReqTitle:       params.ReqTitle,
		ReqDescription: params.ReqDescription,
		ReqStartTiming: start,
		ReqEndTiming:   end,
		PriceType:      params.PriceType,
		Price:          params.Price,
		Location:       params.Location,
		Address:        params.Address,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, request)
}

// fetchRequests is the API for listing requests, optionally filtered by
// helper or needer. Both user references come back populated.
func (s *Server) fetchRequests(c *gin.Context) {
	var filter store.RequestFilter

	if raw := c.Query("helperUser"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		filter.HelperUser = &id
	}
	if raw := c.Query("neederUser"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		filter.NeederUser = &id
	}

	requests, err := s.store.ListRequests(filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

// updateRequest is the API for mutating a request. The updates body is
// decoded strictly against the set of permitted mutable fields; unknown
// keys are rejected rather than silently written.
func (s *Server) updateRequest(c *gin.Context) {
	var params struct {
		ID      string          `json:"id"`
		Updates json.RawMessage `json:"updates"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	// RawMessage keeps a JSON null as the literal bytes, treat it as absent
	if params.ID == "" || len(params.Updates) == 0 || string(params.Updates) == "null" {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "id and updates required",
		})
		return
	}

	id, err := primitive.ObjectIDFromHex(params.ID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var updates schema.RequestUpdates
	decoder := json.NewDecoder(bytes.NewReader(params.Updates))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&updates); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: fmt.Sprintf("invalid updates: %s", err),
		})
		return
	}

	request, err := s.store.UpdateRequest(id, updates)
	if err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, request)
}

// deleteRequest is the API for physically removing a request. It rides on
// PUT because that is what the deployed clients send.
func (s *Server) deleteRequest(c *gin.Context) {
	var params struct {
		ID string `json:"id"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.ID == "" {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "id required",
		})
		return
	}

	id, err := primitive.ObjectIDFromHex(params.ID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.store.DeleteRequest(id); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Request deleted",
		"id":      id.Hex(),
	})
}
