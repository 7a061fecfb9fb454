// +build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

type listing struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
}

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "map service base URL")
	flag.Parse()

	// Тестовые объявления (Lahore area)
	seeds := []listing{
		{
			Title:       "5 Marla House DHA Phase 5",
			Category:    "Residential",
			Price:       18500000,
			Latitude:    31.4676,
			Longitude:   74.4107,
			Address:     "DHA Phase 5, Lahore",
			Description: "Renovated corner house near park",
		},
		{
			Title:       "Commercial Plaza Gulberg",
			Category:    "Commercial",
			Price:       95000000,
			Latitude:    31.5102,
			Longitude:   74.3441,
			Address:     "Main Boulevard, Gulberg III, Lahore",
			Description: "Ground plus three, rented out",
		},
		{
			Title:       "1 Kanal Plot Bahria Town",
			Category:    "Residential",
			Price:       32000000,
			Latitude:    31.3684,
			Longitude:   74.1822,
			Address:     "Sector C, Bahria Town, Lahore",
			Description: "Possession ready, all dues clear",
		},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	for _, l := range seeds {
		body, err := json.Marshal(l)
		if err != nil {
			log.Fatalf("Failed to marshal listing: %v", err)
		}

		resp, err := client.Post(*apiURL+"/api/v1/listings", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("Failed to submit listing: %v", err)
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
			log.Fatalf("Unexpected status %d: %s", resp.StatusCode, respBody)
		}

		fmt.Printf("✅ Submitted %q → %s\n", l.Title, respBody)
	}

	fmt.Println("\nDone. Markers should appear after the next snapshot refresh.")
}
