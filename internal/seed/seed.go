package seed

import (
	"fmt"
	"log"

	"folio/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers        int
	ItemsPerUser    int
	LinksPerUser    int
	MessagesPerUser int
	MaxDays         int
	ShouldClean     bool
	SkipBcrypt      bool
}

// Seed populates the database with demo portfolios.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d demo portfolios...", opts.NumUsers)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db, opts)

	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		for j := 0; j < opts.ItemsPerUser; j++ {
			if _, err := factory.CreateItem(user); err != nil {
				return fmt.Errorf("failed to create item for %s: %w", user.Username, err)
			}
		}

		// Each user gets a distinct subset of platforms.
		for j := 0; j < opts.LinksPerUser && j < len(platforms); j++ {
			if _, err := factory.CreateLink(user, platforms[j]); err != nil {
				return fmt.Errorf("failed to create link for %s: %w", user.Username, err)
			}
		}

		for j := 0; j < opts.MessagesPerUser; j++ {
			if _, err := factory.CreateMessage(user); err != nil {
				return fmt.Errorf("failed to create message for %s: %w", user.Username, err)
			}
		}
	}

	log.Printf("Seeding complete: %d users", opts.NumUsers)
	return nil
}

// clearData removes all seeded rows. Order matters because of foreign keys.
func clearData(db *gorm.DB) error {
	for _, model := range []any{
		&models.ContactMessage{},
		&models.SocialLink{},
		&models.PortfolioItem{},
		&models.User{},
	} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
