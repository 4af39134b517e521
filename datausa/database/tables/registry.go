package tables

import (
	"reflect"
	"sort"
	"strings"

	"github.com/uptrace/bun"

	"github.com/datausa/datausa-go/datausa/attrs"
	"github.com/datausa/datausa-go/datausa/core"
	"github.com/datausa/datausa-go/datausa/filters"
)

type Dataset string

const (
	Pums1 Dataset = "pums_1year"
	Acs1  Dataset = "acs_1year"
	Acs5  Dataset = "acs_5year"
)

type Source struct {
	Title string
	Link  string
}

type Column struct {
	Name     string
	DataType string
}

// MoePair names an estimate column and its margin of error column.
type MoePair struct {
	Estimate string
	Moe      string
}

// Table describes one stats table: where it lives, how it is keyed and how
// it may be filtered.
type Table struct {
	Name    string
	Schema  string
	Dataset Dataset
	Model   any

	PrimaryKey []string
	Columns    []Column
	// ForeignKeys maps key columns to the attribute table naming their codes.
	ForeignKeys map[string]string

	// MedianMoe scales the margin of error of medians drawn from this table.
	MedianMoe float64
	Source    Source

	Dimensions []filters.Dimension
	// Reflected tables only declare their key; the remaining columns are read
	// from the database by Registry.Prepare.
	Reflected bool
}

func (t *Table) FullName() string {
	return t.Schema + "." + t.Name
}

func (t *Table) String() string {
	return t.FullName()
}

func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (t *Table) Dimension(show string) (filters.Dimension, bool) {
	for _, d := range t.Dimensions {
		if d.Show() == show {
			return d, true
		}
	}
	return nil, false
}

func (t *Table) Shows() []string {
	shows := make([]string, 0, len(t.Dimensions))
	for _, d := range t.Dimensions {
		shows = append(shows, d.Show())
	}
	return shows
}

// SupportedLevels maps every show column of the table to its level keys.
func (t *Table) SupportedLevels() map[string][]string {
	levels := make(map[string][]string, len(t.Dimensions))
	for _, d := range t.Dimensions {
		levels[d.Show()] = d.Levels()
	}
	return levels
}

// ShowLevelFilters resolves a show column to level mapping into predicates,
// ordered by show column. Shows requested at attrs.All add no predicate.
func (t *Table) ShowLevelFilters(showsAndLevels map[string]string) ([]filters.Predicate, error) {
	shows := make([]string, 0, len(showsAndLevels))
	for show := range showsAndLevels {
		shows = append(shows, show)
	}
	sort.Strings(shows)

	var result []filters.Predicate
	for _, show := range shows {
		dim, ok := t.Dimension(show)
		if !ok {
			return nil, &core.ShowError{Table: t.FullName(), Show: show, Supported: t.Shows()}
		}
		pred, err := dim.Filter(showsAndLevels[show])
		if err != nil {
			return nil, err
		}
		if !pred.IsTrue() {
			result = append(result, pred)
		}
	}
	return result, nil
}

// MoeColumns pairs every estimate column with its "_moe" column.
func (t *Table) MoeColumns() []MoePair {
	var pairs []MoePair
	for _, c := range t.Columns {
		estimate, ok := strings.CutSuffix(c.Name, "_moe")
		if !ok || !t.HasColumn(estimate) {
			continue
		}
		pairs = append(pairs, MoePair{Estimate: estimate, Moe: c.Name})
	}
	return pairs
}

func (t *Table) clone() *Table {
	c := *t
	c.PrimaryKey = append([]string(nil), t.PrimaryKey...)
	c.Columns = append([]Column(nil), t.Columns...)
	c.Dimensions = append([]filters.Dimension(nil), t.Dimensions...)
	c.ForeignKeys = make(map[string]string, len(t.ForeignKeys))
	for k, v := range t.ForeignKeys {
		c.ForeignKeys[k] = v
	}
	return &c
}

// Registry holds every declared stats table. It is built once at start and
// only read afterwards.
type Registry struct {
	tables []*Table
	byName map[string]*Table
}

// NewRegistry builds the declared tables. Key and declared columns come from
// the bun models.
func NewRegistry(db *bun.DB) *Registry {
	var list []*Table
	for _, ds := range datasets {
		for _, decl := range ds.tables {
			list = append(list, newTable(db, ds, decl))
		}
	}
	return newRegistry(list)
}

func newRegistry(list []*Table) *Registry {
	r := &Registry{
		tables: list,
		byName: make(map[string]*Table, len(list)),
	}
	for _, t := range list {
		r.byName[t.FullName()] = t
	}
	return r
}

func newTable(db *bun.DB, ds datasetDecl, decl declaration) *Table {
	bt := db.Table(reflect.TypeOf(decl.model).Elem())

	t := &Table{
		Name:        decl.name,
		Schema:      ds.schema,
		Dataset:     ds.dataset,
		Model:       decl.model,
		MedianMoe:   decl.medianMoe,
		Source:      ds.source,
		Reflected:   decl.reflected,
		ForeignKeys: make(map[string]string),
	}

	for _, f := range bt.PKs {
		t.PrimaryKey = append(t.PrimaryKey, f.Name)
		if attr, ok := attrTables[f.Name]; ok {
			t.ForeignKeys[f.Name] = attr
		}
		if f.Name != attrs.Year {
			t.Dimensions = append(t.Dimensions, dimensionFor(f.Name, ds.geography))
		}
	}
	for _, f := range bt.Fields {
		t.Columns = append(t.Columns, Column{Name: f.Name})
	}
	return t
}

// Tables returns every table in declaration order.
func (r *Registry) Tables() []*Table {
	return append([]*Table(nil), r.tables...)
}

// Dataset returns the tables of one dataset in declaration order.
func (r *Registry) Dataset(ds Dataset) []*Table {
	var result []*Table
	for _, t := range r.tables {
		if t.Dataset == ds {
			result = append(result, t)
		}
	}
	return result
}

// Lookup finds a table by its schema qualified name.
func (r *Registry) Lookup(name string) (*Table, error) {
	if t, ok := r.byName[name]; ok {
		return t, nil
	}
	return nil, &core.TableError{Name: name, Suggestion: core.Suggest(name, r.Names())}
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tables))
	for _, t := range r.tables {
		names = append(names, t.FullName())
	}
	return names
}
