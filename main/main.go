package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ohsayan/mathlib/trig"
	log "github.com/sirupsen/logrus"
)

var (
	steps     = flag.Int("steps", 8, "the number of steps in a full turn")
	precision = flag.Int("precision", 64, "float precision, 32 or 64")
	debug     = flag.Bool("debug", false, "log every step")
)

var logger = log.WithFields(log.Fields{
	"pkg": "turns",
})

func main() {
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	err := validate(*steps, *precision)
	if err != nil {
		logger.Errorf("invalid flags: %s", err)
		flag.Usage()
		os.Exit(1)
	}

	logger.Infof("splitting a full turn into %d steps at float%d", *steps, *precision)
	fmt.Println("step     degrees       radians  exact   deg+π/2 rad  rad+90°")

	var inexact int
	if *precision == 32 {
		inexact = run(table[float32](*steps))
	} else {
		inexact = run(table[float64](*steps))
	}

	logger.WithFields(log.Fields{
		"steps":   *steps,
		"inexact": inexact,
	}).Info("done")
}

// run prints the rows, and returns how many of them weren't exact.
func run[T trig.Float](rows []row[T]) int {
	n := 0

	for _, r := range rows {
		logger.Debugf("step=%d deg=%v rad=%v exact=%v", r.Step, r.Deg, r.Rad, r.Exact)
		fmt.Println(r)

		if !r.Exact {
			n += 1
		}
	}

	return n
}
