// Command generate_sample creates a sample Daylio CSV export for trying
// out the converter without a real export at hand.
// Usage: go run cmd/generate_sample/main.go [-out path/to/export.csv]
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
)

const defaultSamplePath = "./sample_daylio.csv"

var header = []string{"full_date", "date", "weekday", "time", "mood", "activities", "note_title", "note"}

var sampleRows = [][]string{
	{"2023-01-01", "Jan 1", "Sunday", "08:00", "good", "reading", "Slow morning", "Started the year with a book and coffee."},
	{"2023-01-01", "Jan 1", "Sunday", "13:30", "rad", "walking | friends", "", "Long walk along the river with Kasia."},
	{"2023-01-01", "Jan 1", "Sunday", "20:00", "bad", "", "", "Headache in the evening, went to bed early."},
	{"2023-01-02", "Jan 2", "Monday", "9:15 AM", "neutral", "work | coding", "", "Back to the office. Mostly code review."},
	{"2023-01-02", "Jan 2", "Monday", "10:45 PM", "good", "guitar", "Small wins", "Finally nailed the F barre chord.\nTook long enough."},
	{"2023-01-04", "Jan 4", "Wednesday", "", "awful", "sick", "", "Caught a cold, stayed in bed all day."},
	{"2023-01-05", "Jan 5", "Thursday", "18:20", "good", "cooking | family", "", "Made pierogi with mom."},
}

func main() {
	outPath := flag.String("out", defaultSamplePath, "path to write the sample CSV export to")
	flag.Parse()

	log.Printf("Generating sample Daylio export at %s...", *outPath)

	file, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create sample file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}
	for _, row := range sampleRows {
		if err := writer.Write(row); err != nil {
			log.Fatalf("Failed to write row: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Fatalf("Failed to flush sample file: %v", err)
	}

	log.Printf("Wrote %d sample entries across 4 days", len(sampleRows))
}
