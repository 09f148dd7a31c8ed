package main

import (
	"flag"
	"log"
	"os"

	"github.com/goccy/go-json"

	"github.com/mcheviron/expiring/internal/scenario"
)

var (
	scenarioPath = flag.String("scenario", "scenario.yaml", "Scenario file to replay")
	verbose      = flag.Bool("v", false, "Log every step to stderr")
)

func main() {
	flag.Parse()

	sc, err := scenario.Load(*scenarioPath)
	if err != nil {
		log.Fatalf("load scenario: %v", err)
	}
	if *verbose {
		log.Printf("replaying %d steps against %s (ttl=%v, max_length=%d)",
			len(sc.Steps), sc.Container, sc.TTL, sc.MaxLength)
	}

	enc := json.NewEncoder(os.Stdout)
	err = scenario.Run(sc, func(r scenario.Result) error {
		if *verbose {
			log.Printf("tick %d: %s %s -> %v %s", r.At, r.Op, r.Key, r.Result, r.Error)
		}
		return enc.Encode(r)
	})
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
}
