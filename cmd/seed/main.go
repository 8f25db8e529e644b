// Command seed populates the database with demo portfolios.
package main

import (
	"flag"
	"log"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "number of demo users to create")
	itemsPerUser := flag.Int("items", 6, "portfolio items per user")
	linksPerUser := flag.Int("links", 3, "social links per user")
	messagesPerUser := flag.Int("messages", 2, "contact messages per user")
	clean := flag.Bool("clean", false, "delete existing data before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "store plaintext passwords (fast local seeding only)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:        *numUsers,
		ItemsPerUser:    *itemsPerUser,
		LinksPerUser:    *linksPerUser,
		MessagesPerUser: *messagesPerUser,
		ShouldClean:     *clean,
		SkipBcrypt:      *skipBcrypt,
	}

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
