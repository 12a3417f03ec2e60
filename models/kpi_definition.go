package models

import "github.com/guregu/null/v5"

// KpiDefinition is a user defined metric, e.g. "gross_profit_roas = (Revenue - COGS) / Cost".
type KpiDefinition struct {
	Name     string `yaml:"name" validate:"required"`
	Formula  string `yaml:"formula" validate:"required"`
	Decimals int    `yaml:"decimals" validate:"gte=0,lte=6"`
}

// KpiRow is one row of input columns (one day of campaign data, typically).
type KpiRow struct {
	Date      string
	Variables map[string]null.Float
}

type KpiRowResult struct {
	Date    string
	KpiName string
	Value   null.Float
}
