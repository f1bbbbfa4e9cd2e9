package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rhartert/wsat/parsers"
	"github.com/rhartert/wsat/sat"
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{instanceFile: flag.Arg(0)}, nil
}

type config struct {
	instanceFile string
}

func run(cfg *config) error {
	f, err := os.Open(cfg.instanceFile)
	if err != nil {
		return fmt.Errorf("could not open instance: %s", err)
	}
	defer f.Close()

	formula, err := parsers.LoadDIMACS(f)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	numVars := 0
	for _, c := range formula {
		for _, l := range c {
			v := l
			if v < 0 {
				v = -v
			}
			if v > numVars {
				numVars = v
			}
		}
	}

	fmt.Printf("c variables:  %d\n", numVars)
	fmt.Printf("c clauses:    %d\n", len(formula))

	t := time.Now()
	model, ok, err := sat.Solve(formula)
	elapsed := time.Since(t)
	if err != nil {
		return fmt.Errorf("could not solve instance: %s", err)
	}

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())

	if !ok {
		fmt.Println("s UNSATISFIABLE")
		return nil
	}
	fmt.Println("s SATISFIABLE")

	var sb []byte
	for _, l := range model {
		sb = append(sb, []byte(fmt.Sprintf("%d ", l))...)
	}
	sb = append(sb, '0')
	fmt.Println("v " + string(sb))

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
