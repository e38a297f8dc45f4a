package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/dataprep"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/dataset"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/db"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

func main() {
	// Sub-commands
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	os.Args = os.Args[1:] // Shift args for flag parsing

	switch cmd {
	case "seed":
		seed()
	case "digest":
		digest()
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: tools <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seed    Build the SQLite dataset from a bond CSV extract (or embedded sample data)")
	fmt.Println("  digest  Print the chat advisor's dataset digest")
}

func seed() {
	dbPath := flag.String("db", "data/rentsmart.db", "Database path")
	csvPath := flag.String("csv", "", "Bond lodgement CSV extract (empty: use embedded sample data)")
	geocode := flag.Bool("geocode", false, "Geocode missing suburb centroids via Nominatim")
	flag.Parse()

	database, err := db.Create(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	var suburbs []models.SuburbRecord
	stations := dataprep.SampleStations()
	amenities := dataprep.SampleAmenities()

	if *csvPath == "" {
		log.Println("No CSV given, seeding embedded sample data")
		suburbs = dataprep.SampleSuburbs()
	} else {
		f, err := os.Open(*csvPath)
		if err != nil {
			log.Fatalf("Failed to open CSV: %v", err)
		}
		records, err := dataprep.ParseBondCSV(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to parse bond CSV: %v", err)
		}
		log.Printf("Parsed %d bond records", len(records))
		suburbs = dataprep.Aggregate(records)
	}

	if *geocode {
		geocodeMissing(suburbs)
	}

	if err := dataprep.Seed(database, suburbs, stations, amenities); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Printf("Seeded %d suburbs, %d stations", len(suburbs), len(stations))
}

func geocodeMissing(suburbs []models.SuburbRecord) {
	ctx := context.Background()
	geocoder := dataprep.NewGeocoder()

	for i := range suburbs {
		if suburbs[i].Latitude != 0 || suburbs[i].Longitude != 0 {
			continue
		}
		lat, lng, err := geocoder.GeocodeSuburb(ctx, suburbs[i].Name, suburbs[i].Postcode)
		if err != nil {
			log.Printf("Failed to geocode %s: %v", suburbs[i].SuburbKey, err)
			continue
		}
		suburbs[i].Latitude = lat
		suburbs[i].Longitude = lng
		log.Printf("Geocoded %s -> %.4f, %.4f", suburbs[i].SuburbKey, lat, lng)

		// Nominatim rate limit
		time.Sleep(1 * time.Second)
	}
}

func digest() {
	dbPath := flag.String("db", "data/rentsmart.db", "Database path")
	flag.Parse()

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	data, err := dataset.Load(database)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	fmt.Print(data.Digest())
}
