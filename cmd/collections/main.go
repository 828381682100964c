package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/samber/lo"

	"shopsync/internal/config"
	"shopsync/internal/highlevel"
)

// Lists a location's product collections, for finding the exact names
// the resolver will see.
func main() {
	var locationID string
	flag.StringVar(&locationID, "location", "", "Location ID (overrides HL_LOCATION_ID)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if locationID != "" {
		cfg.HighLevel.LocationID = locationID
	}

	client, err := highlevel.NewClient(cfg.HighLevel)
	if err != nil {
		log.Fatalf("failed to create catalog client: %v", err)
	}

	cols, err := client.ListCollections(context.Background())
	if err != nil {
		log.Fatalf("failed to list collections: %v", err)
	}
	if len(cols) == 0 {
		fmt.Printf("no collections for location %s\n", cfg.HighLevel.LocationID)
		os.Exit(0)
	}

	names := lo.Map(cols, func(c highlevel.Collection, _ int) string {
		return fmt.Sprintf("%s\t%s", c.ID, c.Name)
	})
	fmt.Printf("Collections for location %s:\n", cfg.HighLevel.LocationID)
	for _, line := range names {
		fmt.Println("- " + line)
	}
}
