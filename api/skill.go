package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/helperlink/helperlink-api/schema"
)

// addSkill is the API for inserting a single skill
func (s *Server) addSkill(c *gin.Context) {
	var params struct {
		Name        string             `json:"name" binding:"required"`
		Category    primitive.ObjectID `json:"category" binding:"required"`
		Description string             `json:"description" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	skill, err := s.store.CreateSkill(params.Name, params.Category, params.Description)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Skill added",
		"skill":   skill,
	})
}

// addSkillsBulk is the API for inserting many skills at once. The array is
// checked for shape before anything is inserted; the insert itself is a
// single batch call.
func (s *Server) addSkillsBulk(c *gin.Context) {
	var params struct {
		Skills []schema.Skill `json:"skills"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if len(params.Skills) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "please provide an array of skills",
		})
		return
	}

	invalid := []schema.Skill{}
	for _, sk := range params.Skills {
		if sk.Name == "" || sk.Category.IsZero() || sk.Description == "" {
			invalid = append(invalid, sk)
		}
	}
	if len(invalid) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    errorInvalidParameters.Code,
			"message": "each skill must include name, category, and description",
			"invalid": invalid,
		})
		c.Abort()
		return
	}

	created, err := s.store.CreateSkills(params.Skills)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "skills added successfully",
		"count":   len(created),
		"skills":  created,
	})
}

// listSkills is the API for fetching all skills
func (s *Server) listSkills(c *gin.Context) {
	skills, err := s.store.ListSkills()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, skills)
}
