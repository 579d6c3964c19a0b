// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "plume/docs" // swagger docs
	"plume/internal/cache"
	"plume/internal/config"
	"plume/internal/database"
	"plume/internal/middleware"
	"plume/internal/models"
	"plume/internal/repository"
	"plume/internal/service"
	"plume/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	blobs          storage.BlobStore
	userRepo       repository.UserRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	groupRepo      repository.GroupRepository
	followRepo     repository.FollowRepository
	feedService    *service.FeedService
	postService    *service.PostService
	commentService *service.CommentService
	followService  *service.FollowService
	groupService   *service.GroupService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	blobs, err := storage.NewDiskStore(cfg.MediaRoot, cfg.MaxUploadSizeMB)
	if err != nil {
		return nil, fmt.Errorf("media store init failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, redisClient, blobs)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis first.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, blobs storage.BlobStore) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	followRepo := repository.NewFollowRepository(db)

	prom := middleware.InitMetrics("plume-api")

	var feedTTL time.Duration
	if redisClient != nil && !cfg.FeedCacheOff {
		feedTTL = cache.FeedTTL
		if cfg.FeedCacheSeconds > 0 {
			feedTTL = time.Duration(cfg.FeedCacheSeconds) * time.Second
		}
	}

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		blobs:          blobs,
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		groupRepo:      groupRepo,
		followRepo:     followRepo,
	}
	server.feedService = service.NewFeedService(postRepo, userRepo, groupRepo, followRepo, feedTTL)
	server.postService = service.NewPostService(postRepo, groupRepo)
	server.commentService = service.NewCommentService(commentRepo, postRepo)
	server.followService = service.NewFollowService(followRepo, userRepo)
	server.groupService = service.NewGroupService(groupRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// Tracing
	app.Use(middleware.TracingMiddleware())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Plume Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Static about pages
	api.Get("/about/author", s.AboutAuthor)
	api.Get("/about/tech", s.AboutTech)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Feed views: global first, then the personalized one for signed-in
	// readers. Mutations that require a signed-in user but arrive anonymous
	// redirect here instead of erroring.
	api.Get("/feed", s.GetFeed)
	api.Get("/feed/following", s.AuthRequired(), s.GetFollowingFeed)

	// Group views
	api.Get("/groups", s.GetGroups)
	api.Get("/groups/:slug", s.GetGroup)
	api.Get("/groups/:slug/posts", s.GetGroupFeed)

	// Post creation; anonymous attempts are redirected to the global feed.
	api.Post("/posts", s.AuthOrRedirect("/api/feed"), middleware.RateLimit(
		s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	api.Get("/posts/:id", s.GetPost)

	// Media
	api.Post("/uploads", s.AuthRequired(), middleware.RateLimit(
		s.redis, 10, time.Minute, "upload"), s.UploadImage)
	app.Get("/media/*", s.ServeMedia)

	// Profile views and per-author post routes
	users := api.Group("/users/:username")
	users.Get("/posts", s.GetProfileFeed)
	users.Get("/posts/:id", s.GetAuthorPost)
	users.Put("/posts/:id", s.AuthOrRedirect("/api/feed"), s.UpdatePost)
	users.Post("/posts/:id/comments", s.AuthOrRedirect("/api/feed"), middleware.RateLimit(
		s.redis, 15, time.Minute, "create_comment"), s.AddComment)
	users.Get("/posts/:id/comments", s.GetComments)

	// Follow edges; both complete by redirecting back to the profile.
	users.Post("/follow", s.AuthOrRedirectProfile(), s.FollowAuthor)
	users.Delete("/follow", s.AuthOrRedirectProfile(), s.UnfollowAuthor)

	// Admin console
	admin := api.Group("/admin", s.AuthRequired(), s.AdminRequired())
	admin.Get("/users", s.AdminListUsers)
	admin.Put("/users/:id/role", s.AdminSetUserRole)
	admin.Get("/groups", s.AdminListGroups)
	admin.Post("/groups", s.AdminCreateGroup)
	admin.Put("/groups/:id", s.AdminUpdateGroup)
	admin.Delete("/groups/:id", s.AdminDeleteGroup)
	admin.Get("/posts", s.AdminListPosts)
	admin.Delete("/posts/:id", s.AdminDeletePost)

	// Unknown API routes get a JSON 404 rather than Fiber's plain text one.
	app.Use(s.NotFound)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The app degrades gracefully without Redis; readiness only reports it.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// NotFound is the fallthrough handler for unmatched routes.
func (s *Server) NotFound(c *fiber.Ctx) error {
	return models.RespondWithError(c, fiber.StatusNotFound,
		models.NewNotFoundError("Route", c.Path()))
}

// AuthRequired returns the authentication middleware. Requests without a
// valid token get a JSON 401.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := s.authenticate(c)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}
		setUserContext(c, userID)
		return c.Next()
	}
}

// AuthOrRedirect returns a guard that sends anonymous requests to target
// with 303 See Other instead of a 401. The feed and post mutations use it so
// an expired session degrades to browsing rather than an error page.
func (s *Server) AuthOrRedirect(target string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := s.authenticate(c)
		if !ok {
			return c.Redirect(target, fiber.StatusSeeOther)
		}
		setUserContext(c, userID)
		return c.Next()
	}
}

// AuthOrRedirectProfile is AuthOrRedirect with the profile of the :username
// route parameter as the target.
func (s *Server) AuthOrRedirectProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := s.authenticate(c)
		if !ok {
			return c.Redirect("/api/users/"+c.Params("username")+"/posts", fiber.StatusSeeOther)
		}
		setUserContext(c, userID)
		return c.Next()
	}
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that userID is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)

		admin, err := s.isAdminByUserID(c.Context(), userID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Admin access required"))
		}

		return c.Next()
	}
}

func setUserContext(c *fiber.Ctx, userID uint) {
	c.Locals("userID", userID)
	// Sync to UserContext for logging and downstream services
	ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, userID)
	c.SetUserContext(ctx)
}

// authenticate extracts and validates the bearer token, returning the user id.
func (s *Server) authenticate(c *fiber.Ctx) (uint, bool) {
	authHeader := c.Get("Authorization")
	tokenString := ""
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != "plume-api" {
		return 0, false
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != "plume-client" {
		return 0, false
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(userID), true
}

// optionalUserID extracts the user id when a valid token is present but does
// not enforce one. Public views use it for viewer-specific fields.
func (s *Server) optionalUserID(c *fiber.Ctx) (uint, bool) {
	return s.authenticate(c)
}

// isAdminByUserID reads through the user repository so the cached lookup
// serves repeated admin checks. A deleted user is simply not an admin.
func (s *Server) isAdminByUserID(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if models.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin, nil
}

// generateToken creates a JWT token for the given user ID and username
func (s *Server) generateToken(userID uint, username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      "plume-api",
		"aud":      "plume-client",
		"exp":      now.Add(time.Hour * 24 * 7).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "Plume API",
		BodyLimit: (s.config.MaxUploadSizeMB + 1) * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Logger.Error("unhandled error", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			return err
		}
	}
	return nil
}
