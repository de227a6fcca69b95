package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/helperlink/helperlink-api/schema"
	"github.com/helperlink/helperlink-api/store"
)

// addCategories is the API for bulk-inserting categories
func (s *Server) addCategories(c *gin.Context) {
	var categories []schema.Category
	if err := c.BindJSON(&categories); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if len(categories) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "please provide an array of categories",
		})
		return
	}

	created, err := s.store.CreateCategories(categories)
	if err != nil {
		if err == store.ErrSlugTaken {
			abortWithEncoding(c, http.StatusConflict, errorSlugTaken)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Categories added successfully!",
		"categories": created,
	})
}

// listCategories is the API for fetching all categories
func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.store.ListCategories()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, categories)
}

// updateCategory is the API for a single field-set update by id
func (s *Server) updateCategory(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var updates map[string]interface{}
	if err := c.BindJSON(&updates); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	category, err := s.store.UpdateCategory(id, updates)
	if err != nil {
		if err == store.ErrCategoryNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorCategoryNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated successfully!",
		"category": category,
	})
}

// bulkUpdateCategories applies an array of {_id, ...fields} entries as
// independent set-operations. Field sets are not validated against the
// category schema; that flexibility is part of the admin contract.
func (s *Server) bulkUpdateCategories(c *gin.Context) {
	var entries []map[string]interface{}
	if err := c.BindJSON(&entries); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if len(entries) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "please provide an array of category updates",
		})
		return
	}

	for _, entry := range entries {
		if _, ok := entry["_id"].(string); !ok {
			abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
				Code:    errorInvalidParameters.Code,
				Message: "each entry must include an _id",
			})
			return
		}
	}

	report, err := s.store.BulkUpdateCategories(entries)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories updated successfully!",
		"result":  report,
	})
}
