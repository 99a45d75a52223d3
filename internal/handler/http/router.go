package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/absensi-adk/backend-go/internal/config"
	"github.com/absensi-adk/backend-go/internal/handler/http/middleware"
	"github.com/absensi-adk/backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	allowanceHandler AllowanceHandler,
	performanceHandler PerformanceHandler,
	adkTukinHandler ADKTukinHandler,
	archiveHandler ArchiveHandler,
	gradeHandler EmployeeGradeHandler,
	baselineHandler BaselineHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "absensi-adk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/allowance", func(r chi.Router) {
				r.Post("/calculate", allowanceHandler.Calculate)
				r.Post("/report", allowanceHandler.Report)
				r.Post("/extract", allowanceHandler.GenerateExtract)
			})

			r.Route("/performance", func(r chi.Router) {
				r.Post("/calculate", performanceHandler.Calculate)
				r.Post("/report", performanceHandler.Report)
			})

			r.Route("/adk-tukin", func(r chi.Router) {
				r.Route("/templates", func(r chi.Router) {
					r.Get("/", adkTukinHandler.ListTemplates)
					r.Post("/", adkTukinHandler.UploadTemplate)
				})
				r.Post("/generate", adkTukinHandler.Generate)
			})

			r.Route("/archives", func(r chi.Router) {
				r.Route("/extracts", func(r chi.Router) {
					r.Get("/", archiveHandler.ListExtracts)
					r.Get("/{id}/download", archiveHandler.DownloadExtract)
					r.Delete("/{id}", archiveHandler.DeleteExtract)
				})
				r.Route("/reports", func(r chi.Router) {
					r.Get("/", archiveHandler.ListReports)
					r.Get("/{id}/download", archiveHandler.DownloadReport)
					r.Delete("/{id}", archiveHandler.DeleteReport)
				})
				r.Route("/adk-tukin", func(r chi.Router) {
					r.Get("/", archiveHandler.ListTukin)
					r.Get("/{id}/download", archiveHandler.DownloadTukin)
					r.Delete("/{id}", archiveHandler.DeleteTukin)
				})
			})

			r.Route("/master", func(r chi.Router) {
				r.Route("/grades", func(r chi.Router) {
					r.Get("/", gradeHandler.List)
					r.Post("/", gradeHandler.Create)
					r.Post("/import", gradeHandler.Import)
					r.Put("/{id}", gradeHandler.Update)
					r.Delete("/{id}", gradeHandler.Delete)
				})
				r.Route("/tunjangan", func(r chi.Router) {
					r.Get("/", baselineHandler.List)
					r.Post("/", baselineHandler.Create)
					r.Post("/import", baselineHandler.Import)
					r.Put("/{id}", baselineHandler.Update)
					r.Delete("/{id}", baselineHandler.Delete)
				})
			})
		})
	})
	return r
}
