package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helperlink/helperlink-api/schema"
	"github.com/helperlink/helperlink-api/store"
)

// createArea is the API for registering a serviceable area
func (s *Server) createArea(c *gin.Context) {
	var params schema.Area
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Pincode == "" {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "pincode is required",
		})
		return
	}

	area, err := s.store.CreateArea(params)
	if err != nil {
		if err == store.ErrAreaExists {
			abortWithEncoding(c, http.StatusConflict, errorAreaExists)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Area created successfully",
		"area":    area,
	})
}

// updateArea is the API for updating an area addressed by pincode
func (s *Server) updateArea(c *gin.Context) {
	pincode := c.Param("pincode")

	var params schema.Area
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	area, err := s.store.UpdateArea(pincode, params)
	if err != nil {
		if err == store.ErrAreaNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAreaNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Area updated successfully",
		"area":    area,
	})
}
