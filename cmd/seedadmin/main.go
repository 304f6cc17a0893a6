// Command seedadmin creates or updates the admin account used to sign in.
package main

import (
	"flag"
	"log"

	"github.com/Dadssi/Calendrier-Editoriel/internal/config"
	"github.com/Dadssi/Calendrier-Editoriel/internal/database"
	"github.com/Dadssi/Calendrier-Editoriel/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcryptCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var admin models.Admin
	err = db.Where("email = ?", *email).First(&admin).Error
	switch {
	case err == nil:
		admin.PasswordHash = string(hash)
		if err := db.Save(&admin).Error; err != nil {
			log.Fatalf("update admin: %v", err)
		}
		log.Printf("updated password for admin %q (id=%d)", admin.Email, admin.ID)
	case err == gorm.ErrRecordNotFound:
		admin = models.Admin{Email: *email, PasswordHash: string(hash)}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("create admin: %v", err)
		}
		log.Printf("created admin %q (id=%d)", admin.Email, admin.ID)
	default:
		log.Fatalf("lookup admin: %v", err)
	}
}
