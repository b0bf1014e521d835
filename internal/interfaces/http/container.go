// Package http assembles the HTTP interface: dependency wiring, middleware
// stack, and route registration.
package http

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Maple-Lazuli/one-place-v3/internal/application/access"
	appaudit "github.com/Maple-Lazuli/one-place-v3/internal/application/audit"
	appauth "github.com/Maple-Lazuli/one-place-v3/internal/application/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/application/auth/usecases"
	infraauth "github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/auth"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/config"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/ratelimit"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/repository"
	"github.com/Maple-Lazuli/one-place-v3/internal/infrastructure/storage"
	"github.com/Maple-Lazuli/one-place-v3/internal/interfaces/http/handlers"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/db"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/logger"
	"github.com/Maple-Lazuli/one-place-v3/internal/shared/utils"
)

// Container wires repositories, application services, and handlers from the
// process-level resources.
type Container struct {
	AuthHandler        *handlers.AuthHandler
	ProjectHandler     *handlers.ProjectHandler
	PageHandler        *handlers.PageHandler
	EquationHandler    *handlers.EquationHandler
	SnippetHandler     *handlers.SnippetHandler
	CanvasHandler      *handlers.CanvasHandler
	RecipeHandler      *handlers.RecipeHandler
	TranslationHandler *handlers.TranslationHandler
	FileHandler        *handlers.FileHandler
	TodoHandler        *handlers.TodoHandler
	EventHandler       *handlers.EventHandler
	HistoryHandler     *handlers.HistoryHandler

	RateLimiter ratelimit.RateLimiter
}

func NewContainer(gdb *gorm.DB, cfg *config.Config, redisClient *redis.Client) (*Container, error) {
	log := logger.NewLogger()

	// Repositories.
	users := repository.NewUserRepository(gdb)
	sessions := repository.NewSessionRepository(gdb)
	projects := repository.NewProjectRepository(gdb)
	pages := repository.NewPageRepository(gdb)
	equations := repository.NewEquationRepository(gdb)
	snippets := repository.NewSnippetRepository(gdb)
	canvases := repository.NewCanvasRepository(gdb)
	recipes := repository.NewRecipeRepository(gdb)
	translations := repository.NewTranslationRepository(gdb)
	files := repository.NewFileRepository(gdb)
	todos := repository.NewTodoRepository(gdb)
	events := repository.NewEventRepository(gdb)
	requests := repository.NewAccessRequestRepository(gdb)
	owners := repository.NewOwnershipResolver(gdb)

	tm := db.NewTransactionManager(gdb)

	// Application services.
	lifetime := time.Duration(cfg.Auth.Session.LifetimeSeconds) * time.Second
	sessionManager := appauth.NewSessionManager(sessions, lifetime, log.With("component", "sessions"))
	recorder := appaudit.NewRecorder(requests, log.With("component", "audit"))
	resolver := access.NewResolver(sessionManager, owners)
	guard := access.NewGuard(resolver, recorder)
	history := appaudit.NewHistory(requests, files)
	reviewStatus := appaudit.NewReviewStatus(requests)

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	store, err := storage.NewFileStore(cfg.Storage.FileRoot)
	if err != nil {
		return nil, err
	}

	cookieSettings := utils.CookieSettings{
		Domain:   cfg.Auth.Cookie.Domain,
		Path:     cfg.Auth.Cookie.Path,
		Secure:   cfg.Auth.Cookie.Secure,
		SameSite: cfg.Auth.Cookie.SameSite,
	}

	authHandler := handlers.NewAuthHandler(
		usecases.NewSignupUseCase(users, hasher, log.With("usecase", "signup")),
		usecases.NewLoginUseCase(users, hasher, sessionManager, log.With("usecase", "login")),
		usecases.NewLogoutUseCase(sessionManager, log.With("usecase", "logout")),
		usecases.NewRenewSessionUseCase(sessionManager, log.With("usecase", "renew")),
		usecases.NewChangePasswordUseCase(users, hasher, sessionManager, log.With("usecase", "change_password")),
		usecases.NewDeleteAccountUseCase(users, hasher, sessionManager, log.With("usecase", "delete_account")),
		usecases.NewPreferencesUseCase(users, log.With("usecase", "preferences")),
		sessionManager,
		cookieSettings,
		cfg.Auth.Session.LifetimeSeconds,
	)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}

	return &Container{
		AuthHandler:        authHandler,
		ProjectHandler:     handlers.NewProjectHandler(projects, guard, tm),
		PageHandler:        handlers.NewPageHandler(pages, reviewStatus, guard, tm),
		EquationHandler:    handlers.NewEquationHandler(equations, guard, tm),
		SnippetHandler:     handlers.NewSnippetHandler(snippets, guard, tm),
		CanvasHandler:      handlers.NewCanvasHandler(canvases, guard, tm),
		RecipeHandler:      handlers.NewRecipeHandler(recipes, guard, tm),
		TranslationHandler: handlers.NewTranslationHandler(translations, guard, tm),
		FileHandler:        handlers.NewFileHandler(files, store, guard, tm),
		TodoHandler:        handlers.NewTodoHandler(todos, guard, tm),
		EventHandler:       handlers.NewEventHandler(events, guard, tm),
		HistoryHandler:     handlers.NewHistoryHandler(history, guard),
		RateLimiter:        limiter,
	}, nil
}
