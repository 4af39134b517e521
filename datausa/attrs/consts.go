package attrs

// Geographic sum-levels
const (
	Nation = "nation"
	State  = "state"
	County = "county"
	Msa    = "msa"
	Place  = "place"
	Puma   = "puma"
	Tract  = "tract"

	// All disables level filtering for a show column.
	All = "all"
)

// Show columns
const (
	Geo        = "geo"
	Naics      = "naics"
	Soc        = "soc"
	Cip        = "cip"
	Degree     = "degree"
	Race       = "race"
	Sex        = "sex"
	Birthplace = "birthplace"
	WageBin    = "wage_bin"
	Year       = "year"
)

// Sum-level prefixes of census geography ids. A geo id such as "04000US25"
// starts with the three digit sum-level of the area it names.
const (
	NationCode = "010"
	StateCode  = "040"
	CountyCode = "050"
	TractCode  = "140"
	PlaceCode  = "160"
	MsaCode    = "310"
	PumaCode   = "795"
)

// Schemas
const (
	PumsSchema      = "pums_1year"
	PumsAttrsSchema = "pums_attrs"
	AttrsSchema     = "attrs"
	Acs1Schema      = "acs_1year"
	Acs5Schema      = "acs"
)
