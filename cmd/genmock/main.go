// Command genmock writes a reproducible synthetic cities CSV, plus the JSON the
// converter is expected to produce from it. Rows include duplicates, blank
// fields and non-numeric coordinates so the fixture exercises every row rule.
// The expected JSON is computed with the real domain package.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -csv-out data/mock/generated.csv \
//	  -json-out data/mock/generated.json \
//	  -rows 500 -seed 42 -header
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/couchcryptid/city-weights/internal/adapter/csvfile"
	"github.com/couchcryptid/city-weights/internal/adapter/jsonfile"
	"github.com/couchcryptid/city-weights/internal/observability"
	"github.com/couchcryptid/city-weights/internal/pipeline"
)

type options struct {
	rows   int
	seed   uint64
	header bool
}

// populations spans every weight bucket, including exact bounds.
var populations = []int{
	0, 950, 19_999, 20_000, 49_999, 50_000, 119_999, 120_000, 249_999, 250_000,
	499_999, 500_000, 999_999, 1_000_000, 2_999_999, 3_000_000, 7_999_999,
	8_000_000, 12_325_232,
}

var namePrefixes = []string{"North", "South", "East", "West", "New", "Old", "Port", "Fort", "San", "Saint"}
var nameRoots = []string{"Haven", "Brook", "Ridge", "Field", "Ville", "Ford", "Dale", "Mont", "Lake", "Creek", "São Bento", "Zürich"}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvOut := flag.String("csv-out", "", "output path for the generated CSV")
	jsonOut := flag.String("json-out", "", "optional output path for the expected JSON")
	rows := flag.Int("rows", 200, "number of data rows")
	seed := flag.Uint64("seed", 42, "random seed")
	header := flag.Bool("header", false, "write a header row with alias column names")
	flag.Parse()

	if *csvOut == "" || *rows < 1 {
		flag.Usage()
		return fmt.Errorf("missing required flag -csv-out or invalid -rows")
	}

	opts := options{rows: *rows, seed: *seed, header: *header}
	if err := writeCSV(*csvOut, opts); err != nil {
		return fmt.Errorf("writing CSV fixture: %w", err)
	}
	log.Printf("wrote CSV fixture: %s (%d rows)", *csvOut, opts.rows)

	if *jsonOut == "" {
		return nil
	}
	summary, err := writeExpected(*csvOut, *jsonOut)
	if err != nil {
		return fmt.Errorf("writing JSON fixture: %w", err)
	}
	log.Printf("wrote JSON fixture: %s", *jsonOut)
	log.Printf("rows: %d read, %d dropped, %d duplicates, %d entries",
		summary.RowsRead, summary.Dropped, summary.Duplicates, summary.Entries)
	return nil
}

func writeCSV(path string, opts options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := generate(f, opts); err != nil {
		return err
	}
	return f.Close()
}

// generate writes opts.rows city rows to w. The same options always produce
// the same bytes.
func generate(w io.Writer, opts options) error {
	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	cw := csv.NewWriter(w)

	if opts.header {
		if err := cw.Write([]string{"Name", "Latitude", "Longitude", "Pop"}); err != nil {
			return err
		}
	}

	var names []string
	for i := range opts.rows {
		name := randomName(rng)
		// Roughly one row in eight repeats an earlier city.
		if len(names) > 0 && rng.IntN(8) == 0 {
			name = names[rng.IntN(len(names))]
		} else {
			names = append(names, name)
		}

		lat := formatCoord(rng.Float64()*180 - 90)
		lon := formatCoord(rng.Float64()*360 - 180)
		pop := strconv.Itoa(populations[rng.IntN(len(populations))])

		// Every twentieth row carries one unusable field.
		if i%20 == 19 {
			switch rng.IntN(4) {
			case 0:
				lat = "n/a"
			case 1:
				lon = ""
			case 2:
				pop = "NaN"
			case 3:
				name = ""
			}
		}

		if err := cw.Write([]string{name, lat, lon, pop}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func randomName(rng *rand.Rand) string {
	return namePrefixes[rng.IntN(len(namePrefixes))] + " " + nameRoots[rng.IntN(len(nameRoots))]
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 7, 64)
}

// writeExpected runs the real conversion over the generated CSV.
func writeExpected(csvPath, jsonPath string) (pipeline.Summary, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := pipeline.New(
		csvfile.NewReader(csvPath),
		pipeline.NewTransformer(logger),
		logger,
		observability.NewMetrics(),
		jsonfile.NewWriter(jsonPath),
	)
	return p.Run(context.Background())
}
