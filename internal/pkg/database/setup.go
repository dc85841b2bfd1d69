package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/SJB-Parking/crudpark/app/models"
	"github.com/SJB-Parking/crudpark/internal/pkg/env"
)

var DB *gorm.DB

const maxRetries = 5
const retryDelay = 5 * time.Second

func SetupDatabase() {
	var err error
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                      dsn,
			DefaultStringSize:        256,
			DisableDatetimePrecision: true,
			DontSupportRenameIndex:   true,
			DontSupportRenameColumn:  true,
		}), &gorm.Config{
			// Duplicate-key violations must surface as gorm.ErrDuplicatedKey:
			// the entry flow relies on them to detect lost races.
			TranslateError: true,
		})
		if err == nil {
			DB.AutoMigrate(
				&models.Vehicle{},
				&models.Ticket{},
				&models.FolioCounter{},
				&models.Rate{},
				&models.MonthlySubscription{},
				&models.SubscriptionVehicle{},
				&models.Payment{},
				&models.Operator{},
			)
			seedFolioCounter(DB)

			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// seedFolioCounter makes sure the single counter row exists so folio
// assignment never has to create it mid-entry.
func seedFolioCounter(db *gorm.DB) {
	counter := models.FolioCounter{ID: 1, Value: 0}
	if err := db.FirstOrCreate(&counter, models.FolioCounter{ID: 1}).Error; err != nil {
		log.Printf("Failed to seed folio counter: %v", err)
	}
}

// GetDB returns the shared database handle.
func GetDB() *gorm.DB {
	return DB
}
