package main

import (
	"context"
	"log"
	"time"

	"github.com/oggyb/gramps-gamification/internal/config"
	"github.com/oggyb/gramps-gamification/internal/db"
	"github.com/oggyb/gramps-gamification/internal/repository"
)

func main() {
	// Load configuration
	cfg := config.New()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	if err := db.SeedTestData(database, time.Now(), cfg.Location()); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	ctx := context.Background()
	ledger := repository.NewTransactionRepository(database)
	for n := 1; n <= db.DemoUsers; n++ {
		id := db.DemoUserID(n)
		entries, err := ledger.CountByUser(ctx, id)
		if err != nil {
			log.Fatalf("failed to count ledger of %s: %v", id, err)
		}
		sum, err := ledger.SumByUser(ctx, id)
		if err != nil {
			log.Fatalf("failed to sum ledger of %s: %v", id, err)
		}
		log.Printf("demo user %d: %s (%d XP over %d entries)", n, id, sum, entries)
	}
	log.Println("Seeding completed.")
}
