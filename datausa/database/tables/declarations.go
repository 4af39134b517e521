package tables

import (
	"github.com/datausa/datausa-go/datausa/attrs"
	"github.com/datausa/datausa-go/datausa/database/models"
	"github.com/datausa/datausa-go/datausa/filters"
)

type declaration struct {
	name      string
	model     any
	medianMoe float64
	reflected bool
}

type datasetDecl struct {
	dataset   Dataset
	schema    string
	source    Source
	geography filters.Geography
	tables    []declaration
}

const pumsMedianMoe = 1

var datasets = []datasetDecl{
	{
		dataset:   Pums1,
		schema:    attrs.PumsSchema,
		source:    Source{Title: models.PumsSourceTitle, Link: models.PumsSourceLink},
		geography: filters.PumsGeography,
		tables: []declaration{
			{name: "yg", model: (*models.PumsYg)(nil), medianMoe: pumsMedianMoe},
			{name: "ygb", model: (*models.PumsYgb)(nil), medianMoe: pumsMedianMoe},
			{name: "ygc", model: (*models.PumsYgc)(nil), medianMoe: pumsMedianMoe},
			{name: "ygd", model: (*models.PumsYgd)(nil), medianMoe: pumsMedianMoe},
			{name: "ygi", model: (*models.PumsYgi)(nil), medianMoe: pumsMedianMoe},
			{name: "ygio", model: (*models.PumsYgio)(nil), medianMoe: pumsMedianMoe},
			{name: "ygo", model: (*models.PumsYgo)(nil), medianMoe: pumsMedianMoe},
			{name: "ygr", model: (*models.PumsYgr)(nil), medianMoe: pumsMedianMoe},
			{name: "ygs", model: (*models.PumsYgs)(nil), medianMoe: pumsMedianMoe},
			{name: "ygw", model: (*models.PumsYgw)(nil), medianMoe: pumsMedianMoe},
		},
	},
	{
		dataset:   Acs1,
		schema:    attrs.Acs1Schema,
		source:    Source{Title: models.Acs1SourceTitle, Link: models.AcsSourceLink},
		geography: filters.Acs1Geography,
		tables: []declaration{
			{name: "yg", model: (*models.Acs1Yg)(nil), medianMoe: 1, reflected: true},
			{name: "yg_income_distribution", model: (*models.Acs1YgIncDist)(nil), medianMoe: 2, reflected: true},
			{name: "yg_poverty_race", model: (*models.Acs1YgPovertyRace)(nil), medianMoe: 2, reflected: true},
			{name: "yg_nativity_age", model: (*models.Acs1YgNatAge)(nil), medianMoe: 1, reflected: true},
			{name: "yg_race", model: (*models.Acs1YgRace)(nil), medianMoe: 1, reflected: true},
			{name: "yg_conflict", model: (*models.Acs1YgConflict)(nil), medianMoe: 2, reflected: true},
			{name: "yg_property_value", model: (*models.Acs1YgPropertyValue)(nil), medianMoe: 1, reflected: true},
			{name: "yg_property_tax", model: (*models.Acs1YgPropertyTax)(nil), medianMoe: 1, reflected: true},
			{name: "yg_vehicles", model: (*models.Acs1YgVehicles)(nil), medianMoe: 1, reflected: true},
			{name: "yg_travel_time", model: (*models.Acs1YgTravelTime)(nil), medianMoe: 1, reflected: true},
			{name: "yg_transport", model: (*models.Acs1YgTransport)(nil), medianMoe: 1, reflected: true},
		},
	},
	{
		dataset:   Acs5,
		schema:    attrs.Acs5Schema,
		source:    Source{Title: models.Acs5SourceTitle, Link: models.AcsSourceLink},
		geography: filters.Acs5Geography,
		tables: []declaration{
			{name: "yg", model: (*models.Acs5Yg)(nil), medianMoe: 1, reflected: true},
			{name: "yg_conflict", model: (*models.Acs5YgConflict)(nil), medianMoe: 2, reflected: true},
			{name: "yg_income", model: (*models.Acs5YgIncome)(nil), medianMoe: 1.2},
			{name: "yg_income_distribution", model: (*models.Acs5YgIncDist)(nil), medianMoe: 2, reflected: true},
			{name: "yg_nativity_age", model: (*models.Acs5YgNatAge)(nil), medianMoe: 1, reflected: true},
			{name: "yg_poverty", model: (*models.Acs5YgPoverty)(nil), medianMoe: 1, reflected: true},
			{name: "yg_property_tax", model: (*models.Acs5YgPropertyTax)(nil), medianMoe: 1, reflected: true},
			{name: "yg_property_value", model: (*models.Acs5YgPropertyValue)(nil), medianMoe: 1, reflected: true},
			{name: "yg_race", model: (*models.Acs5YgRace)(nil), medianMoe: 1, reflected: true},
			{name: "yg_poverty_race", model: (*models.Acs5YgPovertyRace)(nil), medianMoe: 2, reflected: true},
			{name: "yg_tenure", model: (*models.Acs5YgTenure)(nil), medianMoe: 1, reflected: true},
			{name: "yg_transport", model: (*models.Acs5YgTransport)(nil), medianMoe: 1, reflected: true},
			{name: "yg_travel_time", model: (*models.Acs5YgTravelTime)(nil), medianMoe: 1, reflected: true},
			{name: "yg_vehicles", model: (*models.Acs5YgVehicles)(nil), medianMoe: 1, reflected: true},
		},
	},
}

// Attribute tables referenced by key columns.
var attrTables = map[string]string{
	attrs.Geo:        "attrs.geo_names",
	attrs.Cip:        "attrs.course",
	attrs.Degree:     "pums_attrs.pums_degree",
	attrs.Naics:      "pums_attrs.pums_naics",
	attrs.Soc:        "pums_attrs.pums_soc",
	attrs.WageBin:    "pums_attrs.pums_wage_bin",
	attrs.Race:       "pums_attrs.pums_race",
	attrs.Sex:        "pums_attrs.pums_sex",
	attrs.Birthplace: "pums_attrs.pums_birthplace",
}

// AttrModels lists the attribute table models in creation order.
var AttrModels = []any{
	(*models.Geo)(nil),
	(*models.Cip)(nil),
	(*models.PumsDegree)(nil),
	(*models.PumsNaics)(nil),
	(*models.PumsSoc)(nil),
	(*models.PumsWage)(nil),
	(*models.PumsRace)(nil),
	(*models.PumsSex)(nil),
	(*models.PumsBirthplace)(nil),
}

func dimensionFor(column string, geo filters.Geography) filters.Dimension {
	switch column {
	case attrs.Geo:
		return geo
	case attrs.Naics:
		return filters.Naics
	case attrs.Soc:
		return filters.Soc
	}
	return filters.Key(column)
}
