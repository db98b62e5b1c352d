package hotwords

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Column headers of the hotword table. The value column names the
// variant that produced the file.
const (
	wordColumn  = "word"
	boostColumn = "boost_value"
	freqColumn  = "frequency"
)

// Hotword is one row of a hotword table, as read back by consumers
// such as the transcriber.
type Hotword struct {
	Word  string
	Boost float64
}

// WriteBoosts writes a rescaled hotword table to path. Rows are ordered
// by descending boost, ties broken by term, so output is reproducible.
func WriteBoosts(path string, weights map[string]float64) error {
	rows := make([][]string, 0, len(weights))
	for _, term := range sortedByWeight(weights) {
		rows = append(rows, []string{term, strconv.FormatFloat(weights[term], 'g', -1, 64)})
	}
	return writeTable(path, []string{wordColumn, boostColumn}, rows)
}

// WriteFrequencies writes a raw-count hotword table to path. An empty
// table yields a header-only file.
func WriteFrequencies(path string, freqs map[string]int) error {
	rows := make([][]string, 0, len(freqs))
	for _, term := range sortedByCount(freqs) {
		rows = append(rows, []string{term, strconv.Itoa(freqs[term])})
	}
	return writeTable(path, []string{wordColumn, freqColumn}, rows)
}

func writeTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile parses a hotword table produced by either variant. The value
// column is returned as a float regardless of variant.
func ReadFile(path string) ([]Hotword, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: missing header row", path)
	}

	header := records[0]
	if len(header) != 2 || header[0] != wordColumn {
		return nil, fmt.Errorf("parse %s: unexpected header %v", path, header)
	}
	if header[1] != boostColumn && header[1] != freqColumn {
		return nil, fmt.Errorf("parse %s: unexpected value column %q", path, header[1])
	}

	words := make([]Hotword, 0, len(records)-1)
	for i, rec := range records[1:] {
		boost, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s row %d: %w", path, i+2, err)
		}
		words = append(words, Hotword{Word: rec[0], Boost: boost})
	}
	return words, nil
}

func sortedByWeight(weights map[string]float64) []string {
	terms := make([]string, 0, len(weights))
	for t := range weights {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if weights[terms[i]] != weights[terms[j]] {
			return weights[terms[i]] > weights[terms[j]]
		}
		return terms[i] < terms[j]
	})
	return terms
}

func sortedByCount(freqs map[string]int) []string {
	terms := make([]string, 0, len(freqs))
	for t := range freqs {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freqs[terms[i]] != freqs[terms[j]] {
			return freqs[terms[i]] > freqs[terms[j]]
		}
		return terms[i] < terms[j]
	})
	return terms
}
