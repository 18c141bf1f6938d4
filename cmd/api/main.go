// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/config"
	"github.com/civicdesk/constituent-crm/internal/handler"
	"github.com/civicdesk/constituent-crm/internal/middleware"
	"github.com/civicdesk/constituent-crm/internal/notify"
	"github.com/civicdesk/constituent-crm/internal/repository"
	"github.com/civicdesk/constituent-crm/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment")
	}
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	constituentRepo := repository.NewConstituentRepository(db)
	caseRepo := repository.NewCaseRepository(db)
	eventRepo := repository.NewEventRepository(db)
	tagRepo := repository.NewTagRepository(db)
	optionRepo := repository.NewOptionRepository(db)
	districtRepo := repository.NewDistrictRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize notification service
	notifyService := notify.NewService(notify.NewProvider(cfg))

	// Initialize domain services
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager)
	constituentService := service.NewConstituentService(constituentRepo)
	caseService := service.NewCaseService(caseRepo, userRepo, notifyService)
	eventService := service.NewEventService(eventRepo)
	tagService := service.NewTagService(tagRepo)
	optionService := service.NewOptionService(optionRepo)
	districtService := service.NewDistrictService(districtRepo, cfg.DefaultCity)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, cfg.JWT.ExpiryPeriod)
	constituentHandler := handler.NewConstituentHandler(constituentService)
	caseHandler := handler.NewCaseHandler(caseService)
	eventHandler := handler.NewEventHandler(eventService)
	tagHandler := handler.NewTagHandler(tagService)
	optionHandler := handler.NewOptionHandler(optionService)
	districtHandler := handler.NewDistrictHandler(districtService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Health check endpoint
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok","timestamp":%q,"service":%q}`,
				time.Now().UTC().Format(time.RFC3339), cfg.ServiceName)
		})

		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Post("/auth/login", authHandler.Login)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Route("/constituents", func(r chi.Router) {
				r.Get("/", constituentHandler.List)
				r.Post("/", constituentHandler.Create)
				r.Get("/{id}", constituentHandler.Get)
				r.Put("/{id}", constituentHandler.Update)
				r.Delete("/{id}", constituentHandler.Delete)
				r.Get("/{id}/tags", constituentHandler.GetTags)
				r.Put("/{id}/tags", constituentHandler.ReplaceTags)
				r.Post("/{id}/tags", constituentHandler.AppendTags)
			})

			r.Route("/cases", func(r chi.Router) {
				r.Get("/", caseHandler.List)
				r.Post("/", caseHandler.Create)
				r.Get("/{id}", caseHandler.Get)
				r.Patch("/{id}/status", caseHandler.UpdateStatus)
				r.Get("/{id}/progress", caseHandler.GetProgress)
				r.Post("/{id}/progress", caseHandler.AddProgress)
			})

			r.Route("/events", func(r chi.Router) {
				r.Get("/", eventHandler.List)
				r.Post("/", eventHandler.Create)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", tagHandler.List)
				r.Get("/{id}", tagHandler.Get)

				// Mutations are restricted to office administrators.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", tagHandler.Create)
					r.Put("/{id}", tagHandler.Update)
					r.Delete("/{id}", tagHandler.Delete)
				})
			})

			r.Route("/tag-categories", func(r chi.Router) {
				r.Get("/", tagHandler.ListCategories)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", tagHandler.CreateCategory)
				})
			})

			r.Route("/options", func(r chi.Router) {
				r.Get("/", optionHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", optionHandler.Create)
				})
			})

			r.Get("/districts", districtHandler.List)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						"error", errors.New("panic recovered"),
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"伺服器發生錯誤"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
