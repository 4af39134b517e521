package filters

import (
	"strconv"

	"github.com/datausa/datausa-go/datausa/attrs"
	"github.com/datausa/datausa-go/datausa/core"
)

// Dimension is a show column whose rows can be narrowed to a level.
type Dimension interface {
	// Show is the column name used to request the dimension.
	Show() string
	// Levels lists the accepted level keys, attrs.All included.
	Levels() []string
	// Filter resolves a level key to a predicate.
	Filter(level string) (Predicate, error)
}

// Sumlevel pairs a geographic level with its geo id prefix.
type Sumlevel struct {
	Level string
	Code  string
}

// Geography filters a geo id column by sum-level prefix.
type Geography struct {
	Column    string
	Sumlevels []Sumlevel
}

// PUMS geo ids come in three sum-levels only. These prefixes are shared with
// the loader and must not change.
var PumsGeography = Geography{
	Column: attrs.Geo,
	Sumlevels: []Sumlevel{
		{attrs.Nation, attrs.NationCode},
		{attrs.State, attrs.StateCode},
		{attrs.Puma, attrs.PumaCode},
	},
}

var Acs1Geography = Geography{
	Column: attrs.Geo,
	Sumlevels: []Sumlevel{
		{attrs.Nation, attrs.NationCode},
		{attrs.State, attrs.StateCode},
		{attrs.County, attrs.CountyCode},
		{attrs.Msa, attrs.MsaCode},
		{attrs.Place, attrs.PlaceCode},
		{attrs.Puma, attrs.PumaCode},
	},
}

var Acs5Geography = Geography{
	Column: attrs.Geo,
	Sumlevels: []Sumlevel{
		{attrs.Nation, attrs.NationCode},
		{attrs.State, attrs.StateCode},
		{attrs.County, attrs.CountyCode},
		{attrs.Msa, attrs.MsaCode},
		{attrs.Place, attrs.PlaceCode},
		{attrs.Puma, attrs.PumaCode},
		{attrs.Tract, attrs.TractCode},
	},
}

func (g Geography) Show() string {
	return g.Column
}

func (g Geography) Levels() []string {
	levels := make([]string, 0, len(g.Sumlevels)+1)
	for _, s := range g.Sumlevels {
		levels = append(levels, s.Level)
	}
	return append(levels, attrs.All)
}

// Code returns the sum-level prefix of level.
func (g Geography) Code(level string) (string, bool) {
	for _, s := range g.Sumlevels {
		if s.Level == level {
			return s.Code, true
		}
	}
	return "", false
}

// Filter resolves level to a prefix predicate on the geo column. An empty
// level is the same as attrs.All.
func (g Geography) Filter(level string) (Predicate, error) {
	if level == "" || level == attrs.All {
		return True(), nil
	}
	code, ok := g.Code(level)
	if !ok {
		return Predicate{}, core.NewLevelError(g.Column, level, g.Levels())
	}
	return HasPrefix(g.Column, code), nil
}

// Classification filters a hierarchical code column by its precomputed depth,
// stored next to the code as <show>_level.
type Classification struct {
	Column      string
	LevelColumn string
	Depths      []string
}

var Naics = Classification{
	Column:      attrs.Naics,
	LevelColumn: "naics_level",
	Depths:      []string{"0", "1", "2"},
}

var Soc = Classification{
	Column:      attrs.Soc,
	LevelColumn: "soc_level",
	Depths:      []string{"0", "1", "2", "3"},
}

func (c Classification) Show() string {
	return c.Column
}

func (c Classification) Levels() []string {
	levels := make([]string, 0, len(c.Depths)+1)
	levels = append(levels, c.Depths...)
	return append(levels, attrs.All)
}

func (c Classification) Filter(level string) (Predicate, error) {
	if level == "" || level == attrs.All {
		return True(), nil
	}
	for _, d := range c.Depths {
		if d != level {
			continue
		}
		n, err := strconv.Atoi(d)
		if err != nil {
			break
		}
		return Equal(c.LevelColumn, n), nil
	}
	return Predicate{}, core.NewLevelError(c.Column, level, c.Levels())
}

// Key is a primary key column with no level hierarchy. Only attrs.All is
// accepted.
type Key string

func (k Key) Show() string {
	return string(k)
}

func (k Key) Levels() []string {
	return []string{attrs.All}
}

func (k Key) Filter(level string) (Predicate, error) {
	if level == "" || level == attrs.All {
		return True(), nil
	}
	return Predicate{}, core.NewLevelError(string(k), level, k.Levels())
}
