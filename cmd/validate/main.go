// Command validate checks a generated cities JSON file against the CSV it was
// produced from. It re-runs the conversion with the domain package and
// verifies value sets, weight/sigma consistency, entry parity and exact
// rendering.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -in data/mock/cities.csv \
//	  -out data/mock/cities.json
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/couchcryptid/city-weights/internal/adapter/csvfile"
	"github.com/couchcryptid/city-weights/internal/domain"
	"github.com/couchcryptid/city-weights/internal/pipeline"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	inCSV := flag.String("in", "", "path to the source cities CSV")
	outJSON := flag.String("out", "", "path to the generated cities JSON")
	flag.Parse()

	if *inCSV == "" || *outJSON == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(*inCSV, *outJSON, os.Stdout))
}

func run(inPath, outPath string, w io.Writer) int {
	fmt.Fprintln(w, "=== City Weights Validation ===")
	fmt.Fprintln(w)

	table, err := csvfile.NewReader(inPath).Extract(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load CSV: %v\n", err)
		return 1
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read JSON: %v\n", err)
		return 1
	}
	actual, err := loadJSON[domain.CityEntry](raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: decode JSON: %v\n", err)
		return 1
	}

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	expected, stats := pipeline.NewTransformer(discard).Transform(table)

	phases := []*phase{
		validateSchema(actual),
		validateParity(expected, actual),
		validateRendering(expected, raw),
	}

	fmt.Fprintln(w)
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(w, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Rows: %d read (%s), %d dropped, %d duplicates; %d expected entries, %d in JSON\n",
		stats.RowsRead, table.Schema, stats.Dropped, stats.Duplicates, len(expected), len(actual))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(w, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(w, "\nValidation FAILED.")
	return 1
}

func loadJSON[T any](data []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ── Phase 1: Schema ──
// Validates value sets and the weight/sigma relationship of every entry.

func validateSchema(entries []domain.CityEntry) *phase {
	p := &phase{name: "Phase 1: Schema (weights, sigma, names)"}

	weights := domain.Weights()
	sigmas := domain.SigmaValues()
	seen := make(map[string]int, len(entries))

	for i := range entries {
		e := &entries[i]
		if e.Name == "" {
			p.errorf("entry %d: name is empty", i)
		} else if first, dup := seen[e.Name]; dup {
			p.errorf("entry %d: name %q duplicates entry %d", i, e.Name, first)
		} else {
			seen[e.Name] = i
		}

		if !slices.Contains(weights, e.Weight) {
			p.errorf("entry %d (%s): weight %d not in %v", i, e.Name, e.Weight, weights)
		}
		if !slices.Contains(sigmas, e.SigmaKm) {
			p.errorf("entry %d (%s): sigmaKm %d not in %v", i, e.Name, e.SigmaKm, sigmas)
		}
		if want := domain.SigmaKm(e.Weight); e.SigmaKm != want {
			p.errorf("entry %d (%s): sigmaKm %d inconsistent with weight %d (want %d)", i, e.Name, e.SigmaKm, e.Weight, want)
		}
	}
	return p
}

// ── Phase 2: Parity ──
// Validates that the JSON holds exactly the entries a fresh conversion yields.

func validateParity(expected, actual []domain.CityEntry) *phase {
	p := &phase{name: "Phase 2: Parity (JSON vs CSV)"}

	if len(expected) != len(actual) {
		p.errorf("entry count: expected %d, got %d", len(expected), len(actual))
	}

	n := min(len(expected), len(actual))
	for i := range n {
		if expected[i] != actual[i] {
			p.errorf("entry %d: expected %+v, got %+v", i, expected[i], actual[i])
		}
	}
	return p
}

// ── Phase 3: Rendering ──
// Validates the file bytes against the canonical serialization.

func validateRendering(expected []domain.CityEntry, raw []byte) *phase {
	p := &phase{name: "Phase 3: Rendering (byte-identical)"}

	want, err := domain.SerializeEntries(expected)
	if err != nil {
		p.errorf("serialize expected entries: %v", err)
		return p
	}
	if !bytes.Equal(want, raw) {
		p.errorf("file differs from canonical output (%d bytes, want %d)", len(raw), len(want))
	}
	return p
}
