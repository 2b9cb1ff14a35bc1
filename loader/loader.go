// Package loader reads candidate road tables from CSV and resolves village
// names to the dense integer indices used by the optimizer.
//
// The expected header follows the field survey sheets the planning office
// produces:
//
//	Asal, Tujuan, Jarak (Km), Biaya (Juta Rp), Benefit (Skor 1-100)
//
// i.e. origin, destination, distance, cost and benefit. Column names can be
// changed with WithColumns. Distance is optional: a missing column or an
// empty cell reads as 0.
//
// Rows that cannot be used (empty or unknown village, bad number, too few
// fields) are skipped with a warning on the configured zerolog.Logger and
// counted in Dataset.Skipped. Structural problems (no header, missing required
// column, unreadable input) are returned as errors.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// ErrEmptyInput indicates the CSV has no header row.
	ErrEmptyInput = errors.New("loader: empty input")

	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("loader: missing required column")

	// ErrDuplicateVillage indicates WithVillages received the same name twice.
	ErrDuplicateVillage = errors.New("loader: duplicate village")
)

// Columns names the CSV header fields.
type Columns struct {
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Distance    string `yaml:"distance"`
	Cost        string `yaml:"cost"`
	Benefit     string `yaml:"benefit"`
}

// DefaultColumns returns the survey sheet header.
func DefaultColumns() Columns {
	return Columns{
		Origin:      "Asal",
		Destination: "Tujuan",
		Distance:    "Jarak (Km)",
		Cost:        "Biaya (Juta Rp)",
		Benefit:     "Benefit (Skor 1-100)",
	}
}

// Road is one resolved CSV row.
type Road struct {
	Origin, Destination int
	Distance            float64
	Cost                float64
	Benefit             float64
}

// Dataset is the loader output: the village universe and the usable roads.
type Dataset struct {
	// Names maps index -> village name.
	Names []string

	// Index maps village name -> index. It is the inverse of Names.
	Index map[string]int

	// Roads in file order.
	Roads []Road

	// Skipped counts rows dropped with a warning.
	Skipped int
}

// Registrar receives road proposals; *optimizer.Optimizer satisfies it.
type Registrar interface {
	RegisterProposal(u, v int, cost, benefit, distance float64)
}

// Register feeds every road to r in file order.
func (d *Dataset) Register(r Registrar) {
	for _, road := range d.Roads {
		r.RegisterProposal(road.Origin, road.Destination, road.Cost, road.Benefit, road.Distance)
	}
}

type options struct {
	columns  Columns
	villages []string
	comma    rune
	log      zerolog.Logger
}

// Option configures Read and Load.
type Option func(*options)

// WithColumns overrides the header names. Empty fields keep their defaults.
func WithColumns(c Columns) Option {
	return func(o *options) {
		def := o.columns
		if c.Origin == "" {
			c.Origin = def.Origin
		}
		if c.Destination == "" {
			c.Destination = def.Destination
		}
		if c.Distance == "" {
			c.Distance = def.Distance
		}
		if c.Cost == "" {
			c.Cost = def.Cost
		}
		if c.Benefit == "" {
			c.Benefit = def.Benefit
		}
		o.columns = c
	}
}

// WithVillages fixes the village universe and its order. Rows naming a
// village outside it are skipped. Without this option the universe is the
// sorted set of names appearing in the file.
func WithVillages(names []string) Option {
	return func(o *options) { o.villages = append([]string(nil), names...) }
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithLogger sets the logger used for skipped-row warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Load opens path and reads it with Read.
func Load(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read parses a road table from r.
func Read(r io.Reader, opts ...Option) (*Dataset, error) {
	o := options{columns: DefaultColumns(), comma: ',', log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1 // short rows are skipped per row, not fatal
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loader: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	cols, err := resolveHeader(records[0], o.columns)
	if err != nil {
		return nil, err
	}
	rows := records[1:]

	ds := &Dataset{}
	if o.villages != nil {
		ds.Names = o.villages
	} else {
		ds.Names = collectNames(rows, cols)
	}
	ds.Index = make(map[string]int, len(ds.Names))
	for i, name := range ds.Names {
		if _, dup := ds.Index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVillage, name)
		}
		ds.Index[name] = i
	}

	for i, rec := range rows {
		line := i + 2 // 1-based, after the header
		road, reason := parseRow(rec, cols, ds.Index)
		if reason != "" {
			ds.Skipped++
			o.log.Warn().Int("line", line).Str("reason", reason).Msg("road row skipped")
			continue
		}
		ds.Roads = append(ds.Roads, road)
	}

	o.log.Info().
		Int("villages", len(ds.Names)).
		Int("roads", len(ds.Roads)).
		Int("skipped", ds.Skipped).
		Msg("road data loaded")

	return ds, nil
}

// columnIndex holds header positions; distance is -1 when absent.
type columnIndex struct {
	origin, destination, distance, cost, benefit int
}

func resolveHeader(header []string, c Columns) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		pos[h] = i
	}
	find := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}

		return i, nil
	}

	var (
		idx columnIndex
		err error
	)
	if idx.origin, err = find(c.Origin); err != nil {
		return idx, err
	}
	if idx.destination, err = find(c.Destination); err != nil {
		return idx, err
	}
	if idx.cost, err = find(c.Cost); err != nil {
		return idx, err
	}
	if idx.benefit, err = find(c.Benefit); err != nil {
		return idx, err
	}
	idx.distance = -1
	if i, ok := pos[c.Distance]; ok {
		idx.distance = i
	}

	return idx, nil
}

func collectNames(rows [][]string, cols columnIndex) []string {
	seen := make(map[string]struct{})
	for _, rec := range rows {
		for _, i := range []int{cols.origin, cols.destination} {
			if i < len(rec) {
				if name := strings.TrimSpace(rec[i]); name != "" {
					seen[name] = struct{}{}
				}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// parseRow returns the resolved road, or a non-empty reason when the row must be skipped.
func parseRow(rec []string, cols columnIndex, index map[string]int) (Road, string) {
	field := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}

		return strings.TrimSpace(rec[i])
	}
	need := max(cols.origin, cols.destination, cols.cost, cols.benefit)
	if len(rec) <= need {
		return Road{}, fmt.Sprintf("expected at least %d fields, got %d", need+1, len(rec))
	}

	var road Road
	for _, ep := range []struct {
		col int
		dst *int
	}{{cols.origin, &road.Origin}, {cols.destination, &road.Destination}} {
		name := field(ep.col)
		if name == "" {
			return Road{}, "empty village name"
		}
		i, ok := index[name]
		if !ok {
			return Road{}, fmt.Sprintf("village %q is not registered", name)
		}
		*ep.dst = i
	}

	var err error
	if road.Cost, err = strconv.ParseFloat(field(cols.cost), 64); err != nil {
		return Road{}, fmt.Sprintf("bad cost %q", field(cols.cost))
	}
	if road.Benefit, err = strconv.ParseFloat(field(cols.benefit), 64); err != nil {
		return Road{}, fmt.Sprintf("bad benefit %q", field(cols.benefit))
	}
	if d := field(cols.distance); d != "" {
		if road.Distance, err = strconv.ParseFloat(d, 64); err != nil {
			return Road{}, fmt.Sprintf("bad distance %q", d)
		}
	}

	return road, ""
}
