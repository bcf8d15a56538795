package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	api "github.com/courseforge/courseforge/internal/api/http"
	auth "github.com/courseforge/courseforge/internal/auth/middleware"
	"github.com/courseforge/courseforge/internal/config"
	"github.com/courseforge/courseforge/internal/course"
	"github.com/courseforge/courseforge/internal/db"
	"github.com/courseforge/courseforge/internal/logging"
	"github.com/courseforge/courseforge/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	log, err := logging.New(cfg.LogLevel, cfg.Mode == config.ModeProd)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	store := course.NewSQLStore(dbh, cfg.DBDriver)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatal("blob store", zap.Error(err))
	}

	authSvc := auth.NewAuthService(cfg.AuthHMACSecret, cfg.AdminUser, cfg.AdminPassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // large courses take a moment to zip

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Public read-only listing; everything that writes or exports needs a token.
	r.Get("/courses", api.ListCoursesHandler(store, log))

	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Post("/courses", api.CreateCourseHandler(store, log))
		pr.Get("/courses/{id}", api.GetCourseHandler(store))
		pr.Delete("/courses/{id}", api.DeleteCourseHandler(store))

		pr.Get("/courses/{id}/export", api.ExportCourseHandler(store, bs, log))
		pr.Get("/courses/{id}/exports", api.ListExportsHandler(store))
		pr.Post("/export", api.ExportInlineHandler(log))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("db", cfg.DBDriver))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
