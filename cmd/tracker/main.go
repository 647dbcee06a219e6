package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	database "github.com/finflow/tracker/internal/db"
	"github.com/finflow/tracker/internal/logger"
	"github.com/finflow/tracker/internal/tracker/application"
	"github.com/finflow/tracker/internal/tracker/domain"
	"github.com/finflow/tracker/internal/tracker/etl"
	"github.com/finflow/tracker/internal/tracker/infrastructure"
)

// Batch runner: imports a transactions file for a user, or prints the user's
// dashboard report as JSON.
func main() {
	filePath := flag.String("file", "", "CSV or XLSX file to import")
	userID := flag.String("user", "", "owner user ID (UUID)")
	dashboard := flag.Bool("dashboard", false, "print the user's dashboard report")
	flag.Parse()

	log := logger.New()

	if *userID == "" {
		log.Fatal().Msg("missing -user")
	}
	if *filePath == "" && !*dashboard {
		log.Fatal().Msg("nothing to do: pass -file and/or -dashboard")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer dbService.Close()

	if err := database.RunMigrations(dbService.DB); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	user, err := lookupUser(dbService.DB, *userID)
	if err != nil {
		log.Fatal().Err(err).Str("user", *userID).Msg("look up user")
	}

	transactionRepo := infrastructure.NewPostgresTransactionRepository(dbService.DB)
	categoryRepo := infrastructure.NewPostgresCategoryRepository(dbService.DB)
	budgetRepo := infrastructure.NewPostgresBudgetRepository(dbService.DB)

	if *filePath != "" {
		fileBytes, err := os.ReadFile(*filePath)
		if err != nil {
			log.Fatal().Err(err).Str("file", *filePath).Msg("read upload file")
		}

		pipeline := etl.NewPipeline(
			etl.NewTransformer(nil, ""),
			etl.NewLoader(transactionRepo, categoryRepo),
			log,
		)
		summary, err := pipeline.Run(fileBytes, filepath.Base(*filePath), user)
		if err != nil {
			log.Fatal().Err(err).Msg("import failed")
		}
		fmt.Printf("Imported %d transactions for %s\n", summary.Imported, user.Username)
	}

	if *dashboard {
		dashboardService := application.NewDashboardService(transactionRepo, budgetRepo)
		report, err := dashboardService.ComputeDashboard(user.ID)
		if err != nil {
			log.Fatal().Err(err).Msg("compute dashboard")
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			log.Fatal().Err(err).Msg("encode report")
		}
	}
}

func lookupUser(db *sql.DB, userID string) (domain.User, error) {
	user := domain.User{ID: userID}
	err := db.QueryRow(`SELECT username, role FROM users WHERE id = $1`, userID).
		Scan(&user.Username, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user %s does not exist", userID)
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}
