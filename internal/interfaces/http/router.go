// Package http assembles the HTTP surface: repositories, usecases,
// handlers, middleware, and routes.
package http

import (
	gohttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	gameusecases "wordnest/internal/application/game/usecases"
	leaderboardusecases "wordnest/internal/application/leaderboard/usecases"
	lessonusecases "wordnest/internal/application/lesson/usecases"
	quizusecases "wordnest/internal/application/quiz/usecases"
	userusecases "wordnest/internal/application/user/usecases"
	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/auth"
	"wordnest/internal/infrastructure/cache"
	"wordnest/internal/infrastructure/config"
	"wordnest/internal/infrastructure/email"
	"wordnest/internal/infrastructure/permission"
	"wordnest/internal/infrastructure/ratelimit"
	"wordnest/internal/infrastructure/repository"
	"wordnest/internal/interfaces/http/handlers"
	"wordnest/internal/interfaces/http/middleware"
	"wordnest/internal/interfaces/http/routes"
	"wordnest/internal/shared/constants"
	"wordnest/internal/shared/logger"
	"wordnest/internal/shared/services/markdown"
)

// Router owns the gin engine and the background jobs the server schedules.
type Router struct {
	engine *gin.Engine

	// Jobs for the scheduler to register.
	StateCleanupJob    *userusecases.CleanupExpiredStatesJob
	LeaderboardSyncJob *leaderboardusecases.SyncLeaderboardUseCase
}

type RouterConfig struct {
	Config *config.Config
	DB     *gorm.DB
	// Redis is nil when redis is disabled; state storage, rate limiting,
	// and the leaderboard fall back to database or in-memory backends.
	Redis  *redis.Client
	Logger logger.Interface
}

func NewRouter(rc RouterConfig) (*Router, error) {
	cfg := rc.Config
	log := rc.Logger

	if cfg.Server.Mode == "release" || cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	sessions, err := auth.NewSessionTokenService(cfg.Auth.Session.Secret, cfg.Auth.Session.ExpDays)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewArgon2idPasswordHasher(cfg.Auth.Password)
	googleClient := auth.NewGoogleOAuthClient(cfg.OAuth.Google)

	// Repositories.
	userRepo := repository.NewUserRepository(rc.DB, log)
	oauthRepo := repository.NewOAuthAccountRepository(rc.DB, log)
	auditRepo := repository.NewAuditLogRepository(rc.DB, log)
	lessonRepo := repository.NewLessonRepository(rc.DB, log)
	quizRepo := repository.NewQuizRepository(rc.DB, log)
	gameRepo := repository.NewGameScoreRepository(rc.DB, log)
	txManager := repository.NewGormTxManager(rc.DB)

	var stateStore user.OAuthStateStore
	var limiter ratelimit.Limiter
	var ranking leaderboardusecases.Ranking
	if rc.Redis != nil {
		stateStore = cache.NewRedisStateStore(rc.Redis, "oauth_state")
		limiter = ratelimit.NewRedisLimiter(rc.Redis)
		ranking = cache.NewRedisLeaderboard(rc.Redis)
	} else {
		stateStore = repository.NewOAuthStateRepository(rc.DB, log)
		limiter = ratelimit.NewMemoryLimiter()
		ranking = newDBRanking(quizRepo, gameRepo)
	}

	var emailService userusecases.EmailService
	if cfg.Email.Enabled {
		emailService = email.NewSMTPEmailService(cfg.Email, cfg.Server.BaseURL)
	} else {
		emailService = email.NewNoopEmailService(log)
	}

	enforcer, err := permission.NewEnforcer(rc.DB, log)
	if err != nil {
		return nil, err
	}

	renderer := markdown.NewRenderer()

	// Usecases.
	registerUC := userusecases.NewRegisterWithPasswordUseCase(
		userRepo, hasher, sessions, emailService, auditRepo,
		cfg.Auth.Token.VerificationExpiresHours, log)
	loginUC := userusecases.NewLoginWithPasswordUseCase(userRepo, hasher, sessions, log)
	verifyEmailUC := userusecases.NewVerifyEmailUseCase(userRepo, log)
	changePasswordUC := userusecases.NewChangePasswordUseCase(userRepo, hasher, emailService, auditRepo, log)
	initiateOAuthUC := userusecases.NewInitiateOAuthUseCase(googleClient, stateStore, cfg.Auth.StateTTLMinutes, log)
	callbackUC := userusecases.NewHandleOAuthCallbackUseCase(
		userRepo, oauthRepo, stateStore, googleClient, sessions, auditRepo, txManager, log)
	unlinkUC := userusecases.NewUnlinkProviderUseCase(userRepo, oauthRepo, auditRepo, txManager, log)
	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, oauthRepo, log)
	updateProfileUC := userusecases.NewUpdateProfileUseCase(userRepo, log)
	listAuditUC := userusecases.NewListAuditEntriesUseCase(auditRepo, log)

	listLessonsUC := lessonusecases.NewListLessonsUseCase(lessonRepo, log)
	getLessonUC := lessonusecases.NewGetLessonUseCase(lessonRepo, renderer, log)
	completeLessonUC := lessonusecases.NewCompleteLessonUseCase(lessonRepo, log)
	createLessonUC := lessonusecases.NewCreateLessonUseCase(lessonRepo, log)
	updateLessonUC := lessonusecases.NewUpdateLessonUseCase(lessonRepo, log)

	getQuizUC := quizusecases.NewGetQuizUseCase(quizRepo, lessonRepo, log)
	submitAttemptUC := quizusecases.NewSubmitAttemptUseCase(quizRepo, lessonRepo, ranking, log)
	createQuizUC := quizusecases.NewCreateQuizUseCase(quizRepo, lessonRepo, log)

	submitScoreUC := gameusecases.NewSubmitScoreUseCase(gameRepo, ranking, log)

	getLeaderboardUC := leaderboardusecases.NewGetLeaderboardUseCase(ranking, userRepo, log)
	syncLeaderboardUC := leaderboardusecases.NewSyncLeaderboardUseCase(quizRepo, gameRepo, ranking, log)
	cleanupStatesJob := userusecases.NewCleanupExpiredStatesJob(stateStore, log)

	// Middleware.
	authMW := middleware.NewAuthMiddleware(sessions, log)
	permMW := middleware.NewPermissionMiddleware(enforcer, log)
	rateLimiter := middleware.NewRateLimiter(limiter, ratelimit.Config{
		RequestsPerMinute: 10,
		RequestsPerHour:   100,
	}, log)

	// Handlers.
	authHandler := handlers.NewAuthHandler(handlers.AuthHandlerConfig{
		RegisterUC:       registerUC,
		LoginUC:          loginUC,
		VerifyEmailUC:    verifyEmailUC,
		ChangePasswordUC: changePasswordUC,
		InitiateOAuthUC:  initiateOAuthUC,
		CallbackUC:       callbackUC,
		UnlinkUC:         unlinkUC,
		GetProfileUC:     getProfileUC,
		UpdateProfileUC:  updateProfileUC,
		CookieCfg:        cfg.Auth.Cookie,
		SessionSeconds:   sessions.ExpSeconds(),
		FrontendURL:      cfg.Server.FrontendCallbackURL,
		Logger:           log,
	})
	lessonHandler := handlers.NewLessonHandler(listLessonsUC, getLessonUC, completeLessonUC, createLessonUC, updateLessonUC)
	quizHandler := handlers.NewQuizHandler(getQuizUC, submitAttemptUC, createQuizUC)
	gameHandler := handlers.NewGameHandler(submitScoreUC)
	leaderboardHandler := handlers.NewLeaderboardHandler(getLeaderboardUC)
	auditHandler := handlers.NewAuditHandler(listAuditUC)

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(log),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(gohttp.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		AuthMiddleware: authMW,
		RateLimiter:    rateLimiter,
	})
	routes.SetupLessonRoutes(engine, &routes.LessonRouteConfig{
		LessonHandler:        lessonHandler,
		AuthMiddleware:       authMW,
		PermissionMiddleware: permMW,
	})
	routes.SetupQuizRoutes(engine, &routes.QuizRouteConfig{
		QuizHandler:          quizHandler,
		AuthMiddleware:       authMW,
		PermissionMiddleware: permMW,
	})
	routes.SetupGameRoutes(engine, &routes.GameRouteConfig{
		GameHandler:    gameHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupLeaderboardRoutes(engine, &routes.LeaderboardRouteConfig{
		LeaderboardHandler: leaderboardHandler,
		AuthMiddleware:     authMW,
	})
	routes.SetupAdminRoutes(engine, &routes.AdminRouteConfig{
		AuditHandler:         auditHandler,
		AuthMiddleware:       authMW,
		PermissionMiddleware: permMW,
	})

	return &Router{
		engine:             engine,
		StateCleanupJob:    cleanupStatesJob,
		LeaderboardSyncJob: syncLeaderboardUC,
	}, nil
}

func (r *Router) Engine() *gin.Engine { return r.engine }
