package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/opencouncil/scribe/internal/scrape"
)

// Earliest year with recordings available on the listing pages.
const firstYear = 2008

func main() {
	var (
		yearFrom = flag.Int("year-from", firstYear, "first meeting year to scan")
		yearTo   = flag.Int("year-to", time.Now().Year(), "last meeting year to scan")
	)
	flag.Parse()

	if *yearFrom > *yearTo {
		log.Fatalf("--year-from %d is after --year-to %d", *yearFrom, *yearTo)
	}

	s := scrape.New()
	for year := *yearFrom; year <= *yearTo; year++ {
		urls, err := s.MeetingURLs(year)
		if err != nil {
			log.Printf("Warning: skipping %d: %v", year, err)
			continue
		}
		for _, u := range urls {
			fmt.Println(u)
		}
	}
}
