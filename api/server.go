package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/helperlink/helperlink-api/logmodule"
	"github.com/helperlink/helperlink-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Config carries the runtime settings the server needs. It is resolved
// once at startup and injected here; no handler reads global configuration
// at request time.
type Config struct {
	// JWTSecret signs and verifies bearer tokens
	JWTSecret string

	// TokenExpiry is the lifetime of issued tokens
	TokenExpiry time.Duration

	// Version is reported from the health endpoint
	Version string
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.MarketStore

	// Runtime settings
	cfg Config
}

// NewServer new instance of server
func NewServer(marketStore store.MarketStore, cfg Config) *Server {
	if cfg.TokenExpiry == 0 {
		cfg.TokenExpiry = 24 * time.Hour
	}

	return &Server{
		store: marketStore,
		cfg:   cfg,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/signup", s.signup)
		authRoute.POST("/login", s.login)
		authRoute.POST("/signupBulk", s.bulkSignup)
		authRoute.POST("/signupBulkProfile", s.bulkCreateProfiles)
	}

	requestRoute := apiRoute.Group("/request")
	{
		requestRoute.POST("/create", s.createRequest)
		requestRoute.GET("/fetch", s.fetchRequests)
		requestRoute.PUT("/update", s.updateRequest)
		// deletion goes over PUT, the mobile clients depend on it
		requestRoute.PUT("/delete", s.deleteRequest)
	}

	helperRoute := apiRoute.Group("/helpers")
	{
		helperRoute.GET("", s.listHelpers)
		helperRoute.GET("/category/:categoryId", s.listHelpersByCategory)
		helperRoute.GET("/status", s.helperStatus)
		helperRoute.GET("/profile/:userId", s.getProfile)
		helperRoute.POST("/profile/:userId", s.upsertProfileSkill)
		helperRoute.POST("/profile", s.createProfile)
		helperRoute.POST("/dashboard/addskill", s.authMiddleware(), s.addUserSkill)
	}

	neederRoute := apiRoute.Group("/needers")
	{
		neederRoute.GET("/search", s.neederSearch)
		neederRoute.GET("/request", s.neederRequest)
	}

	areaRoute := apiRoute.Group("/area")
	{
		areaRoute.POST("", s.createArea)
		areaRoute.PUT("/area/:pincode", s.updateArea)
	}

	categoryRoute := apiRoute.Group("/category")
	{
		categoryRoute.POST("/add", s.authMiddleware(), s.addCategories)
		categoryRoute.GET("", s.listCategories)
		categoryRoute.PUT("/update/:id", s.updateCategory)
		categoryRoute.PUT("/bulkupdate", s.bulkUpdateCategories)
	}

	skillRoute := apiRoute.Group("/skill")
	{
		skillRoute.POST("/add", s.authMiddleware(), s.addSkill)
		skillRoute.POST("/addBulk", s.addSkillsBulk)
		skillRoute.GET("/list", s.listSkills)
	}

	chatRoute := apiRoute.Group("/chat")
	chatRoute.Use(s.authMiddleware())
	{
		chatRoute.GET("/threads", s.listChatThreads)
		chatRoute.GET("/threads/:threadKey/messages", s.getChatMessages)
		chatRoute.POST("/threads/:threadKey/messages", s.sendChatMessage)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": s.cfg.Version,
	})
}

func (s *Server) helperStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *Server) neederSearch(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) neederRequest(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
