// Package testcase reads the JSON documents holding encoded sample points:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"},
//	  ...
//	}
//
// Every key other than "keys" is the x-coordinate of a point whose
// y-coordinate is value written in base.
package testcase

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/ugorji/go/codec"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/shaih/go-polyroots/primitives/lagrange"
)

const (
	// MinBase is the smallest supported base
	MinBase = 2
	// MaxBase is the largest supported base, digits are 0-9 then a-z
	MaxBase = 36

	keysEntry = "keys"
)

// Keys is the metadata block of a document.
// N is the number of points provided, K the number needed.
type Keys struct {
	N int
	K int
}

// Point is an encoded point
type Point struct {
	X     int64
	Base  string
	Value string
}

// Document is a decoded test case
type Document struct {
	Keys   Keys
	Points []Point // sorted by X
}

// entry has the fields of both kinds of entries of a document
type entry struct {
	N     int    `codec:"n"`
	K     int    `codec:"k"`
	Base  string `codec:"base"`
	Value string `codec:"value"`
}

// Load reads a document from a file
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a document from r.
// Keys must be present and every other key must be an integer x-coordinate.
func Decode(r io.Reader) (*Document, error) {
	var raw map[string]entry
	if err := codec.NewDecoder(r, new(codec.JsonHandle)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json: %w", err)
	}

	keys, ok := raw[keysEntry]
	if !ok {
		return nil, fmt.Errorf("missing %q object", keysEntry)
	}
	doc := &Document{Keys: Keys{N: keys.N, K: keys.K}}

	for _, key := range maps.Keys(raw) {
		if key == keysEntry {
			continue
		}
		x, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse x-coordinate %q to integer", key)
		}
		e := raw[key]
		doc.Points = append(doc.Points, Point{X: x, Base: e.Base, Value: e.Value})
	}

	slices.SortFunc(doc.Points, func(a, b Point) bool {
		return a.X < b.X
	})
	return doc, nil
}

// Samples decodes the first K points, in increasing x order.
// The y-values are rounded to the nearest float64.
func (d *Document) Samples() ([]lagrange.Sample, error) {
	if d.Keys.K < 1 {
		return nil, fmt.Errorf("k must be at least 1, got %d", d.Keys.K)
	}
	if len(d.Points) < d.Keys.K {
		return nil, fmt.Errorf("not enough points provided: need %d, got %d", d.Keys.K, len(d.Points))
	}

	samples := make([]lagrange.Sample, d.Keys.K)
	for i, p := range d.Points[:d.Keys.K] {
		y, err := p.Decode()
		if err != nil {
			return nil, err
		}
		yf, _ := new(big.Float).SetInt(y).Float64()
		samples[i] = lagrange.Sample{X: float64(p.X), Y: yf}
	}
	return samples, nil
}

// Decode returns the value of the point as an integer
func (p Point) Decode() (*big.Int, error) {
	key := strconv.FormatInt(p.X, 10)

	base, err := strconv.Atoi(strings.TrimSpace(p.Base))
	if err != nil || base < MinBase || base > MaxBase {
		return nil, &InvalidBaseError{Key: key, Base: p.Base}
	}

	digits := strings.ToLower(p.Value)
	if digits == "" {
		return nil, &DecodeError{Key: key, Value: p.Value, Base: base, Pos: -1}
	}
	for i := 0; i < len(digits); i++ {
		if digitValue(digits[i]) >= base {
			return nil, &DecodeError{Key: key, Value: p.Value, Base: base, Pos: i}
		}
	}

	y, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, &DecodeError{Key: key, Value: p.Value, Base: base, Pos: 0}
	}
	return y, nil
}

// digitValue returns the value of a lower case digit, or MaxBase if c is
// not a digit
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	default:
		return MaxBase
	}
}
