// Command curve420-audit runs the security battery over the frozen curve
// parameters and writes the report as YAML to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/curve420/go-ed420/internal/audit"
	"github.com/curve420/go-ed420/pkg/curve420"
)

func main() {
	cfg := audit.DefaultConfig()
	flag.IntVar(&cfg.MOVSearchMax, "mov-max", cfg.MOVSearchMax, "embedding-degree search bound")
	flag.Uint64Var(&cfg.TrialDivisionBound, "trial-bound", cfg.TrialDivisionBound, "twist trial-division bound")
	flag.IntVar(&cfg.RhoAttempts, "rho-attempts", cfg.RhoAttempts, "randomized factoring attempts")
	flag.IntVar(&cfg.RhoMaxIterations, "rho-iterations", cfg.RhoMaxIterations, "iteration cap per factoring attempt")
	paramsFile := flag.String("params", "", "optional YAML parameter record to check against the frozen set")
	flag.Parse()

	if *paramsFile != "" {
		loaded, err := curve420.LoadParametersFile(*paramsFile)
		if err != nil {
			log.Fatalf("load parameters: %v", err)
		}
		if *loaded.Record() != *curve420.Params().Record() {
			log.Fatalf("parameter record %s does not match the frozen parameter set", *paramsFile)
		}
		fmt.Fprintf(os.Stderr, "parameter record matches the frozen set\n")
	}

	report := audit.Run(cfg)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		log.Fatalf("encode report: %v", err)
	}
	if err := enc.Close(); err != nil {
		log.Fatalf("flush report: %v", err)
	}
}
