// Command diagnose reports whether the blog advertises RSS/Atom feeds
// and what each feed serves, as a JSON summary on stdout.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"vemabot/config"
	"vemabot/feedprobe"
)

func main() {
	pageURL := flag.String("url", config.BaseURL+config.ListingPath, "listing page to inspect for advertised feeds")
	flag.Parse()

	// Log to stderr so JSON output to stdout is clean
	log.SetOutput(os.Stderr)
	log.Printf("Probing %s for advertised feeds", *pageURL)

	results, err := feedprobe.ProbeAll(context.Background(), *pageURL)
	if err != nil {
		log.Fatalf("Feed discovery failed: %v", err)
	}
	if len(results) == 0 {
		log.Printf("No feeds advertised; HTML scraping remains the only source")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		log.Fatalf("Failed to encode JSON: %v", err)
	}
}
