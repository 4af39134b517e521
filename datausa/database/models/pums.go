package models

import "github.com/uptrace/bun"

const (
	PumsSourceTitle = "ACS PUMS 1-year Estimate"
	PumsSourceLink  = "http://census.gov/programs-surveys/acs/technical-documentation/pums.html"
)

type PumsYg struct {
	bun.BaseModel `bun:"table:pums_1year.yg,alias:yg"`

	YearKey
	GeoID
	BasePums
	Personal
}

type PumsYgb struct {
	bun.BaseModel `bun:"table:pums_1year.ygb,alias:ygb"`

	YearKey
	GeoID
	BirthplaceID
	BasePums
	Personal
}

type PumsYgc struct {
	bun.BaseModel `bun:"table:pums_1year.ygc,alias:ygc"`

	YearKey
	GeoID
	CipID
	BasePums
	PersonalWithAge
}

type PumsYgd struct {
	bun.BaseModel `bun:"table:pums_1year.ygd,alias:ygd"`

	YearKey
	GeoID
	DegreeID
	BasePums
	Personal
}

type PumsYgi struct {
	bun.BaseModel `bun:"table:pums_1year.ygi,alias:ygi"`

	YearKey
	GeoID
	NaicsID
	BasePums
	Personal
}

type PumsYgio struct {
	bun.BaseModel `bun:"table:pums_1year.ygio,alias:ygio"`

	YearKey
	GeoID
	NaicsID
	SocID
	BasePums
	Personal
}

type PumsYgo struct {
	bun.BaseModel `bun:"table:pums_1year.ygo,alias:ygo"`

	YearKey
	GeoID
	SocID
	BasePums
	Personal
}

type PumsYgr struct {
	bun.BaseModel `bun:"table:pums_1year.ygr,alias:ygr"`

	YearKey
	GeoID
	RaceID
	BasePums
	Personal
}

type PumsYgs struct {
	bun.BaseModel `bun:"table:pums_1year.ygs,alias:ygs"`

	YearKey
	GeoID
	SexID
	BasePums
	Personal
}

type PumsYgw struct {
	bun.BaseModel `bun:"table:pums_1year.ygw,alias:ygw"`

	YearKey
	GeoID
	WageID
	BasePums
	Personal
}
