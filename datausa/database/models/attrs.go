package models

import "github.com/uptrace/bun"

// Attribute tables hold the names of the codes the stats tables are keyed by.

type Geo struct {
	bun.BaseModel `bun:"table:attrs.geo_names,alias:g"`

	ID          string `bun:"id,pk"`
	Name        string `bun:"name"`
	DisplayName string `bun:"display_name"`
	Sumlevel    string `bun:"sumlevel"`
	URLName     string `bun:"url_name"`
}

type Cip struct {
	bun.BaseModel `bun:"table:attrs.course,alias:c"`

	ID    string `bun:"id,pk"`
	Name  string `bun:"name"`
	Level int    `bun:"level"`
}

type PumsDegree struct {
	bun.BaseModel `bun:"table:pums_attrs.pums_degree,alias:pd"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name"`
}

type PumsNaics struct {
	bun.BaseModel `bun:"table:pums_attrs.pums_naics,alias:pn"`

	ID     string `bun:"id,pk"`
	Name   string `bun:"name"`
	Level  int    `bun:"level"`
	Parent string `bun:"parent,nullzero"`
}

type PumsSoc struct {
	bun.BaseModel `bun:"table:pums_attrs.pums_soc,alias:ps"`

	ID     string `bun:"id,pk"`
	Name   string `bun:"name"`
	Level  int    `bun:"level"`
	Parent string `bun:"parent,nullzero"`
}

type PumsWage struct {
	bun.BaseModel `bun:"table:pums_attrs.pums_wage_bin,alias:pw"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name"`
}

type PumsRace struct {
	bun.BaseModel `bun:"table:pums_attrs.pums_race,alias:pr"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name"`
}

type PumsSex struct {
	bun.BaseModel `bun:"table:pums_attrs.pums_sex,alias:psx"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name"`
}

type PumsBirthplace struct {
	bun.BaseModel `bun:"table:pums_attrs.pums_birthplace,alias:pb"`

	ID   string `bun:"id,pk"`
	Name string `bun:"name"`
}
