package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/absensi-adk/backend-go/internal/config"
	appHTTP "github.com/absensi-adk/backend-go/internal/handler/http"
	"github.com/absensi-adk/backend-go/internal/pkg/database"
	"github.com/absensi-adk/backend-go/internal/pkg/jwt"
	"github.com/absensi-adk/backend-go/internal/pkg/storage"
	"github.com/absensi-adk/backend-go/internal/repository/postgresql"
	adkTukinService "github.com/absensi-adk/backend-go/internal/service/adktukin"
	allowanceService "github.com/absensi-adk/backend-go/internal/service/allowance"
	archiveService "github.com/absensi-adk/backend-go/internal/service/archive"
	masterService "github.com/absensi-adk/backend-go/internal/service/master"
	performanceService "github.com/absensi-adk/backend-go/internal/service/performance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "absensi-adk"),
		slog.String("env", cfg.App.Env),
	)

	gradeRepo := postgresql.NewEmployeeGradeRepository(db)
	baselineRepo := postgresql.NewBaselineRepository(db)
	extractArchiveRepo := postgresql.NewExtractArchiveRepository(db)
	reportArchiveRepo := postgresql.NewReportArchiveRepository(db)
	tukinArchiveRepo := postgresql.NewTukinArchiveRepository(db)
	tukinTemplateRepo := postgresql.NewTukinTemplateRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	allowanceSvc := allowanceService.NewAllowanceService(gradeRepo, extractArchiveRepo, logger)
	performanceSvc := performanceService.NewPerformanceService(baselineRepo, reportArchiveRepo, fileStorage, logger)
	adkTukinSvc := adkTukinService.NewADKTukinService(tukinTemplateRepo, tukinArchiveRepo, fileStorage, logger)
	archiveSvc := archiveService.NewArchiveService(extractArchiveRepo, reportArchiveRepo, tukinArchiveRepo, fileStorage, logger)
	gradeSvc := masterService.NewEmployeeGradeService(gradeRepo, logger)
	baselineSvc := masterService.NewBaselineService(baselineRepo, logger)

	allowanceHandler := appHTTP.NewAllowanceHandler(allowanceSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)
	adkTukinHandler := appHTTP.NewADKTukinHandler(adkTukinSvc)
	archiveHandler := appHTTP.NewArchiveHandler(archiveSvc)
	gradeHandler := appHTTP.NewEmployeeGradeHandler(gradeSvc)
	baselineHandler := appHTTP.NewBaselineHandler(baselineSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		allowanceHandler,
		performanceHandler,
		adkTukinHandler,
		archiveHandler,
		gradeHandler,
		baselineHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
