package models

// Key and measure columns shared by the PUMS tables. bun inlines embedded
// structs, so a table is declared by embedding the columns it is keyed by.

type YearKey struct {
	Year int `bun:"year,pk"`
}

type GeoID struct {
	Geo string `bun:"geo,pk"`
}

type CipID struct {
	Cip string `bun:"cip,pk"`
}

type DegreeID struct {
	Degree string `bun:"degree,pk"`
}

// NaicsID keys a table by industry. NaicsLevel is the code's depth in the
// NAICS hierarchy, flattened by the loader.
type NaicsID struct {
	Naics      string `bun:"naics,pk"`
	NaicsLevel int    `bun:"naics_level"`
}

// SocID keys a table by occupation. SocLevel is the code's depth in the SOC
// hierarchy, flattened by the loader.
type SocID struct {
	Soc      string `bun:"soc,pk"`
	SocLevel int    `bun:"soc_level"`
}

type WageID struct {
	WageBin string `bun:"wage_bin,pk"`
}

type RaceID struct {
	Race string `bun:"race,pk"`
}

type SexID struct {
	Sex string `bun:"sex,pk"`
}

type BirthplaceID struct {
	Birthplace string `bun:"birthplace,pk"`
}

type Personal struct {
	AvgAge  float64 `bun:"avg_age,nullzero"`
	AvgWage float64 `bun:"avg_wage,nullzero"`
	AvgHrs  float64 `bun:"avg_hrs,nullzero"`
	NumPpl  int64   `bun:"num_ppl,nullzero"`

	AvgAgeMoe  float64 `bun:"avg_age_moe,nullzero"`
	AvgWageMoe float64 `bun:"avg_wage_moe,nullzero"`
	AvgHrsMoe  float64 `bun:"avg_hrs_moe,nullzero"`
	NumPplMoe  float64 `bun:"num_ppl_moe,nullzero"`
}

// PersonalWithAge is Personal without the age average, for tables where age
// is not reported.
type PersonalWithAge struct {
	AvgWage float64 `bun:"avg_wage,nullzero"`
	AvgHrs  float64 `bun:"avg_hrs,nullzero"`
	NumPpl  int64   `bun:"num_ppl,nullzero"`

	AvgWageMoe float64 `bun:"avg_wage_moe,nullzero"`
	AvgHrsMoe  float64 `bun:"avg_hrs_moe,nullzero"`
	NumPplMoe  float64 `bun:"num_ppl_moe,nullzero"`
}

// BasePums carries the columns every PUMS table has.
type BasePums struct {
	NumRecords int64 `bun:"num_records,nullzero"`
}
