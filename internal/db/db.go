package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fitmarket/trainer-booking/internal/config"
	"github.com/fitmarket/trainer-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Zone{},
		&models.Duration{},
		&models.Service{},
		&models.Booking{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedReferenceData(db)

	return db
}

// seedReferenceData fills the lookup tables on first boot; later boots are a no-op.
func seedReferenceData(db *gorm.DB) {
	var count int64

	db.Model(&models.Category{}).Count(&count)
	if count == 0 {
		db.Create(&[]models.Category{
			{Name: "Strength"},
			{Name: "Cardio"},
			{Name: "Yoga"},
			{Name: "Pilates"},
			{Name: "Crossfit"},
			{Name: "Nutrition"},
		})
	}

	db.Model(&models.Zone{}).Count(&count)
	if count == 0 {
		db.Create(&[]models.Zone{
			{Name: "North"},
			{Name: "South"},
			{Name: "East"},
			{Name: "West"},
			{Name: "Center"},
		})
	}

	db.Model(&models.Duration{}).Count(&count)
	if count == 0 {
		db.Create(&[]models.Duration{
			{Minutes: 30},
			{Minutes: 45},
			{Minutes: 60},
			{Minutes: 90},
		})
	}
}
