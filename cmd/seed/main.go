// cmd/seed/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/civicdesk/constituent-crm/internal/auth"
	"github.com/civicdesk/constituent-crm/internal/config"
	"github.com/civicdesk/constituent-crm/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(runCmd)
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed manages the constituent CRM database",
	Long:  `Seed creates the database schema and loads the reference data the API depends on: the default office, admin account, Hualien districts, select options and tag categories.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		db := openGorm(cfg)

		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS citext").Error; err != nil {
			log.Fatalf("Failed to enable citext: %v", err)
		}

		err := db.AutoMigrate(
			&model.Office{},
			&model.User{},
			&model.District{},
			&model.TagCategory{},
			&model.Tag{},
			&model.Constituent{},
			&model.ConstituentTag{},
			&model.Case{},
			&model.CaseConstituent{},
			&model.CaseProgress{},
			&model.Event{},
			&model.EventParticipant{},
			&model.SelectOption{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load default office, accounts and reference data",
	Long:  `Load the default office, admin and staff accounts, Hualien County districts, select options and tag categories. Safe to re-run; existing rows are left alone.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		db := openGorm(cfg)
		ctx := cmd.Context()

		office, err := seedOffice(db, cfg)
		if err != nil {
			log.Fatalf("Failed to seed office: %v", err)
		}

		if err := seedUsers(db, cfg, office); err != nil {
			log.Fatalf("Failed to seed users: %v", err)
		}

		inserted, err := seedDistricts(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to seed districts: %v", err)
		}
		if verbose {
			fmt.Printf("Inserted %d districts\n", inserted)
		}

		if err := seedOptions(db); err != nil {
			log.Fatalf("Failed to seed select options: %v", err)
		}

		if err := seedTagCategories(db); err != nil {
			log.Fatalf("Failed to seed tag categories: %v", err)
		}

		fmt.Println("Seed completed successfully")
		fmt.Printf("Admin account: %s\n", cfg.Seed.AdminEmail)
	},
}

func loadConfig() *config.Config {
	if err := godotenv.Load(); err != nil && verbose {
		fmt.Println("No .env file found, using environment")
	}
	cfg := config.Load()
	if cfg.Seed.AdminPassword == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}
	return cfg
}

func dsn(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)
}

func openGorm(cfg *config.Config) *gorm.DB {
	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func seedOffice(db *gorm.DB, cfg *config.Config) (*model.Office, error) {
	office := &model.Office{
		Name:        cfg.Seed.OfficeName,
		City:        cfg.Seed.OfficeCity,
		Description: "選民服務管理系統",
	}

	var existing model.Office
	err := db.Where("name = ?", office.Name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err := db.Create(office).Error; err != nil {
		return nil, err
	}
	return office, nil
}

func seedUsers(db *gorm.DB, cfg *config.Config, office *model.Office) error {
	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	users := []model.User{
		{
			Email:        cfg.Seed.AdminEmail,
			Name:         "系統管理員",
			PasswordHash: hash,
			Role:         model.RoleAdmin,
			OfficeID:     office.ID,
		},
		{
			Email:        "staff@example.com",
			Name:         "測試助理",
			PasswordHash: hash,
			Role:         model.RoleStaff,
			OfficeID:     office.ID,
		},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&users).Error
}

// seedDistricts bulk-loads the district table through a staging table so the
// copy stays fast while re-runs skip rows that already exist.
func seedDistricts(ctx context.Context, cfg *config.Config) (int64, error) {
	pool, err := pgxpool.New(ctx, dsn(cfg))
	if err != nil {
		return 0, fmt.Errorf("connecting: %w", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		CREATE TEMP TABLE district_staging (
			city text NOT NULL,
			township text NOT NULL,
			village text NOT NULL
		) ON COMMIT DROP`)
	if err != nil {
		return 0, fmt.Errorf("creating staging table: %w", err)
	}

	rows := make([][]any, 0, 256)
	for _, d := range hualienDistricts {
		for _, village := range d.Villages {
			rows = append(rows, []any{"花蓮縣", d.Township, village})
		}
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"district_staging"},
		[]string{"city", "township", "village"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copying districts: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO districts (city, township, village)
		SELECT city, township, village FROM district_staging
		ON CONFLICT (city, township, village) DO NOTHING`)
	if err != nil {
		return 0, fmt.Errorf("inserting districts: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}

	return tag.RowsAffected(), nil
}

func seedOptions(db *gorm.DB) error {
	options := make([]model.SelectOption, len(defaultOptions))
	for i, o := range defaultOptions {
		options[i] = model.SelectOption{
			Category:  o.Category,
			Value:     o.Value,
			Label:     o.Label,
			SortOrder: i,
			IsActive:  true,
		}
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "value"}},
		DoUpdates: clause.AssignmentColumns([]string{"label"}),
	}).Create(&options).Error
}

func seedTagCategories(db *gorm.DB) error {
	categories := []model.TagCategory{
		{Name: "案件類別", SortOrder: 1},
		{Name: "職業身分", SortOrder: 2},
		{Name: "關係等級", SortOrder: 3},
		{Name: "影響力", SortOrder: 4},
		{Name: "地區標籤", SortOrder: 5},
		{Name: "其他", SortOrder: 99},
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"sort_order"}),
	}).Create(&categories).Error
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
