package main

import (
	"flag"
	"go-dispatch/scenario"
	"log"
	"os"
)

func main() {
	path := flag.String("scenario", "", "scenario file (.yaml, .yml, .json or .toml), built-in sequence when empty")
	verbose := flag.Bool("v", false, "log how each call resolves to stderr")
	flag.Parse()

	var (
		s   *scenario.Scenario
		err error
	)
	if *path == "" {
		s, err = scenario.Default()
	} else {
		s, err = scenario.Load(*path)
	}
	if err != nil {
		log.Fatal("scenario: ", err)
	}

	r := &scenario.Runner{Out: os.Stdout}
	if *verbose {
		r.Log = log.New(os.Stderr, "dispatch: ", 0)
	}
	if err := r.Run(s); err != nil {
		log.Fatal("run: ", err)
	}
}
