package models

import "github.com/uptrace/bun"

const (
	Acs1SourceTitle = "ACS 1-year Estimate"
	Acs5SourceTitle = "ACS 5-year Estimate"
	AcsSourceLink   = "http://www.census.gov/programs-surveys/acs/"
)

// AcsKey is the key of every ACS table. The measure columns of most ACS
// tables are not declared here; they are read from information_schema when
// the registry is prepared.
type AcsKey struct {
	YearKey
	GeoID
}

// 1 year

type Acs1Yg struct {
	bun.BaseModel `bun:"table:acs_1year.yg,alias:a1yg"`
	AcsKey
}

type Acs1YgIncDist struct {
	bun.BaseModel `bun:"table:acs_1year.yg_income_distribution,alias:a1ygid"`
	AcsKey
}

type Acs1YgPovertyRace struct {
	bun.BaseModel `bun:"table:acs_1year.yg_poverty_race,alias:a1ygpr"`
	AcsKey
}

type Acs1YgNatAge struct {
	bun.BaseModel `bun:"table:acs_1year.yg_nativity_age,alias:a1ygna"`
	AcsKey
}

type Acs1YgRace struct {
	bun.BaseModel `bun:"table:acs_1year.yg_race,alias:a1ygr"`
	AcsKey
}

type Acs1YgConflict struct {
	bun.BaseModel `bun:"table:acs_1year.yg_conflict,alias:a1ygc"`
	AcsKey
}

type Acs1YgPropertyValue struct {
	bun.BaseModel `bun:"table:acs_1year.yg_property_value,alias:a1ygpv"`
	AcsKey
}

type Acs1YgPropertyTax struct {
	bun.BaseModel `bun:"table:acs_1year.yg_property_tax,alias:a1ygpt"`
	AcsKey
}

type Acs1YgVehicles struct {
	bun.BaseModel `bun:"table:acs_1year.yg_vehicles,alias:a1ygv"`
	AcsKey
}

type Acs1YgTravelTime struct {
	bun.BaseModel `bun:"table:acs_1year.yg_travel_time,alias:a1ygtt"`
	AcsKey
}

type Acs1YgTransport struct {
	bun.BaseModel `bun:"table:acs_1year.yg_transport,alias:a1ygt"`
	AcsKey
}

// 5 year

type Acs5Yg struct {
	bun.BaseModel `bun:"table:acs.yg,alias:a5yg"`
	AcsKey
}

type Acs5YgConflict struct {
	bun.BaseModel `bun:"table:acs.yg_conflict,alias:a5ygc"`
	AcsKey
}

// Acs5YgIncome is the one ACS table whose measures are declared rather than
// reflected.
type Acs5YgIncome struct {
	bun.BaseModel `bun:"table:acs.yg_income,alias:a5ygi"`
	AcsKey

	Income    float64 `bun:"income,nullzero"`
	IncomeMoe float64 `bun:"income_moe,nullzero"`
}

type Acs5YgIncDist struct {
	bun.BaseModel `bun:"table:acs.yg_income_distribution,alias:a5ygid"`
	AcsKey
}

type Acs5YgNatAge struct {
	bun.BaseModel `bun:"table:acs.yg_nativity_age,alias:a5ygna"`
	AcsKey
}

type Acs5YgPoverty struct {
	bun.BaseModel `bun:"table:acs.yg_poverty,alias:a5ygp"`
	AcsKey
}

type Acs5YgPropertyTax struct {
	bun.BaseModel `bun:"table:acs.yg_property_tax,alias:a5ygpt"`
	AcsKey
}

type Acs5YgPropertyValue struct {
	bun.BaseModel `bun:"table:acs.yg_property_value,alias:a5ygpv"`
	AcsKey
}

type Acs5YgRace struct {
	bun.BaseModel `bun:"table:acs.yg_race,alias:a5ygr"`
	AcsKey
}

type Acs5YgPovertyRace struct {
	bun.BaseModel `bun:"table:acs.yg_poverty_race,alias:a5ygpr"`
	AcsKey
}

type Acs5YgTenure struct {
	bun.BaseModel `bun:"table:acs.yg_tenure,alias:a5ygte"`
	AcsKey
}

type Acs5YgTransport struct {
	bun.BaseModel `bun:"table:acs.yg_transport,alias:a5ygt"`
	AcsKey
}

type Acs5YgTravelTime struct {
	bun.BaseModel `bun:"table:acs.yg_travel_time,alias:a5ygtt"`
	AcsKey
}

type Acs5YgVehicles struct {
	bun.BaseModel `bun:"table:acs.yg_vehicles,alias:a5ygv"`
	AcsKey
}
