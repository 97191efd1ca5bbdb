package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/frahmantamala/hr-directory/internal/auth"
	userDatamodel "github.com/frahmantamala/hr-directory/internal/core/datamodel/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the superadmin account",
	Long:  `Create the initial superadmin account, or reset its password with --reset-password.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		email := getenvDefault("SUPERADMIN_EMAIL", "admin@hr-directory.local")
		password := os.Getenv("SUPERADMIN_PASSWORD")
		if password == "" {
			log.Fatal("SUPERADMIN_PASSWORD must be set")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCostOrDefault())
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		var existing userDatamodel.User
		err = gormDB.Where("email = ?", email).First(&existing).Error
		switch {
		case err == nil:
			if !resetPassword {
				fmt.Println("superadmin already exists:", email)
				return
			}
			updates := map[string]interface{}{
				"password_hash": string(hash),
				"role":          auth.RoleSuperAdmin,
				"is_active":     true,
				"updated_at":    time.Now(),
			}
			if err := gormDB.Model(&userDatamodel.User{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
				log.Fatalf("failed to reset superadmin: %v", err)
			}
			fmt.Println("superadmin password reset:", email)
		case errors.Is(err, gorm.ErrRecordNotFound):
			record := userDatamodel.User{
				ID:           uuid.NewString(),
				Email:        email,
				PasswordHash: string(hash),
				FirstName:    "Super",
				LastName:     "Admin",
				Role:         auth.RoleSuperAdmin,
				IsActive:     true,
			}
			if err := gormDB.Create(&record).Error; err != nil {
				log.Fatalf("failed to create superadmin: %v", err)
			}
			fmt.Println("superadmin created:", email)
		default:
			log.Fatalf("failed to look up superadmin: %v", err)
		}
	},
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
