package main

import (
	"flag"
	"log"
	"os"

	"github.com/checkmarble/marble-kpi/cmd"
)

// Populated at build time with -ldflags "-X main.apiVersion=..."
var apiVersion string = "dev"

func main() {
	formula := flag.String("formula", "", "Evaluate a formula, e.g. \"(Revenue - COGS) / Cost\"")
	variables := flag.String("vars", "", "Variables of -formula, e.g. \"Cost=100,Revenue=null\"")
	decimals := flag.Int("decimals", 2, "Number of decimals displayed for -formula")
	explain := flag.Bool("explain", false, "With -formula, print the value of every sub-expression")
	kpisPath := flag.String("kpis", "", "Yaml file of KPI definitions, evaluated over the -rows file")
	rowsPath := flag.String("rows", "", "Json file of input rows for -kpis")
	withHighlights := flag.Bool("highlights", false, "With -kpis, also detect anomalies in the computed KPIs")
	seriesPath := flag.String("series", "", "Json file of metric series, prints the detected anomalies")
	flag.Parse()

	compiledConfig := cmd.CompiledConfig{Version: apiVersion}
	config := cmd.NewCliConfigFromEnv()

	var err error
	switch {
	case *formula != "":
		err = cmd.RunEvaluateFormula(compiledConfig, config, cmd.EvaluateFormulaArgs{
			Formula:   *formula,
			Variables: *variables,
			Decimals:  *decimals,
			Explain:   *explain,
		}, os.Stdout)
	case *kpisPath != "":
		err = cmd.RunEvaluateKpis(compiledConfig, config, cmd.EvaluateKpisArgs{
			KpisPath:   *kpisPath,
			RowsPath:   *rowsPath,
			Highlights: *withHighlights,
		}, os.Stdout)
	case *seriesPath != "":
		err = cmd.RunDetectHighlights(compiledConfig, config, *seriesPath, os.Stdout)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}
