// Command seed populates the development database with demo users, books,
// exchanges and reviews.
package main

import (
	"flag"
	"log"

	"bookswap/internal/config"
	"bookswap/internal/database"
	"bookswap/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "number of users to create")
	flag.IntVar(&opts.BooksPerUser, "books", opts.BooksPerUser, "books per user")
	flag.IntVar(&opts.ReviewsPerUser, "reviews", opts.ReviewsPerUser, "reviews per user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.NewFactory(db, opts).Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeded %d users with %d books each", opts.Users, opts.BooksPerUser)
}
