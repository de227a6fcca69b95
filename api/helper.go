package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/helperlink/helperlink-api/schema"
	"github.com/helperlink/helperlink-api/store"
)

// listHelpers is the API for listing every helper joined with their profile
func (s *Server) listHelpers(c *gin.Context) {
	helpers, err := s.store.ListHelperProfiles()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"helpers": helpers})
}

// listHelpersByCategory resolves the skills under a category and returns
// the profiles whose skill list intersects them
func (s *Server) listHelpersByCategory(c *gin.Context) {
	categoryID, err := primitive.ObjectIDFromHex(c.Param("categoryId"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	profiles, err := s.store.ListProfilesByCategory(categoryID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// getProfile is the API to fetch a profile by its owning user
func (s *Server) getProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	profile, err := s.store.GetProfileByUser(userID)
	if err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// createProfile is the API for completing a user's profile. Validation
// order: user id present, user exists, no profile yet, at least one skill,
// every referenced skill exists.
func (s *Server) createProfile(c *gin.Context) {
	logger := log.WithField("api", "createProfile")

	var params schema.Profile
	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.User.IsZero() {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "user id is required",
		})
		return
	}

	profile, err := s.store.CreateCompletedProfile(params)
	if err != nil {
		switch err {
		case store.ErrUserNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
		case store.ErrProfileExists:
			abortWithEncoding(c, http.StatusConflict, errorProfileExists)
		case store.ErrNoSkills:
			abortWithEncoding(c, http.StatusBadRequest, errorNoSkills)
		case store.ErrInvalidSkillRefs:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidSkillRefs)
		default:
			shouldInterupt(err, c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Profile created successfully.",
		"profile": profile,
	})
}

// bulkCreateProfiles is the API for creating many profiles at once. Entries
// referencing unknown users or skills fail the whole batch before anything
// is inserted; entries whose user already has a profile are dropped without
// being reported.
func (s *Server) bulkCreateProfiles(c *gin.Context) {
	logger := log.WithField("api", "bulkCreateProfiles")

	var params struct {
		Profiles []schema.Profile `json:"profiles"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorCannotParseRequest.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if len(params.Profiles) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: "please provide an array of profiles",
		})
		return
	}

	invalid := []schema.Profile{}
	for _, p := range params.Profiles {
		if p.User.IsZero() || p.Designation == "" || len(p.Skills) == 0 {
			invalid = append(invalid, p)
		}
	}
	if len(invalid) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":            errorInvalidParameters.Code,
			"message":         "each profile must include user, designation, and at least one skill",
			"invalidProfiles": invalid,
		})
		c.Abort()
		return
	}

	created, err := s.store.BulkCreateProfiles(params.Profiles)
	if err != nil {
		if verr, ok := err.(*store.BulkProfileValidationError); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    errorInvalidSkillRefs.Code,
				"message": verr.Message,
				"invalid": verr.Invalid,
			})
			c.Abort()
			return
		}
		if err == store.ErrAllUsersProfiled {
			abortWithEncoding(c, http.StatusBadRequest, errorAllUsersProfiled)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "profiles created successfully",
		"count":    len(created),
		"profiles": created,
	})
}

// addUserSkill is the API for appending a skill to the authenticated
// user's profile
func (s *Server) addUserSkill(c *gin.Context) {
	userID := requesterID(c)

	var params struct {
		SkillID   primitive.ObjectID `json:"skillId" binding:"required"`
		SkillName string             `json:"skillName" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	skills, err := s.store.AddProfileSkill(userID, params.SkillID, params.SkillName)
	if err != nil {
		switch err {
		case store.ErrSkillNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorSkillNotFound)
		case store.ErrProfileNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound)
		case store.ErrSkillAlreadyAdded:
			abortWithEncoding(c, http.StatusConflict, errorSkillAlreadyAdded)
		default:
			shouldInterupt(err, c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Skill added to profile",
		"skills":  skills,
	})
}

// upsertProfileSkill appends a skill to a user's profile, creating the
// profile when it doesn't exist yet
func (s *Server) upsertProfileSkill(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		SkillID   primitive.ObjectID `json:"skillId" binding:"required"`
		SkillName string             `json:"skillName" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	profile, err := s.store.UpsertProfileSkill(userID, params.SkillID, params.SkillName)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Skill added successfully",
		"profile": profile,
	})
}
