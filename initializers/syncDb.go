package initializers

import (
	"log"
	"os"

	"github.com/Kweyu/resto-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.User{},
	)
	if err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return seedAdmin(db)
}

// seedAdmin creates the initial admin account from ADMIN_USERNAME and
// ADMIN_PASSWORD. Skipped when the variables are unset or the user exists.
func seedAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed.")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Fullname: "Administrator",
		Username: username,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded admin account:", username)
	return nil
}
