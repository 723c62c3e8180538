package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// coordPrecision is the number of decimal places kept for lat/lng.
const coordPrecision = 6

// Coord is a rounded coordinate. It always marshals with a fractional part.
type Coord float64

// MarshalJSON writes the shortest round-tripping representation. Decimal
// exponents below -4 or from 16 up use exponent form ("1e-05", "1e+16");
// everything else is plain decimal with at least one fractional digit.
func (c Coord) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("coordinate %v is not finite", f)
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err != nil {
		return nil, fmt.Errorf("coordinate %v: %w", f, err)
	}
	if exp < -4 || exp >= 16 {
		return []byte(e), nil
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}

// Annotate derives weight and sigmaKm for each record and rounds coordinates.
func Annotate(records []CityRecord) []CityEntry {
	out := make([]CityEntry, 0, len(records))
	for _, rec := range records {
		w := Weight(rec.Population)
		out = append(out, CityEntry{
			Name:    rec.City,
			Lat:     roundCoord(rec.Lat),
			Lng:     roundCoord(rec.Lon),
			Weight:  w,
			SigmaKm: SigmaKm(w),
		})
	}
	return out
}

// roundCoord rounds the exact binary value to coordPrecision places, ties to
// even. The sign of zero is kept.
func roundCoord(v float64) Coord {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', coordPrecision, 64), 64)
	if err != nil {
		return Coord(v)
	}
	return Coord(r)
}

// SerializeEntries renders entries as an indented JSON array. A nil or empty
// slice renders as "[]". Output is pure ASCII: non-ASCII characters are
// written as \uXXXX escapes, HTML characters are left alone.
func SerializeEntries(entries []CityEntry) ([]byte, error) {
	if entries == nil {
		entries = []CityEntry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("serialize city entries: %w", err)
	}
	return escapeNonASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// escapeNonASCII rewrites every non-ASCII rune as a lowercase \uXXXX escape,
// using a surrogate pair above the BMP. Encoded JSON only carries non-ASCII
// bytes inside string literals, so the rewrite never touches structure.
func escapeNonASCII(b []byte) []byte {
	if !hasNonASCII(b) {
		return b
	}
	out := make([]byte, 0, len(b)+len(b)/4)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		switch {
		case r < utf8.RuneSelf:
			out = append(out, byte(r))
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			out = fmt.Appendf(out, `\u%04x\u%04x`, hi, lo)
		default:
			out = fmt.Appendf(out, `\u%04x`, r)
		}
	}
	return out
}

func hasNonASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return true
		}
	}
	return false
}
