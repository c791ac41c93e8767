// Command alice-maze prints a shortest path through an Alice maze file.
//
// Usage:
//
//	alice-maze <inputfile>
//
// The result is printed as "(length, [(row, col), ...])", or "no solution"
// when the goal cannot be reached.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/alice-maze/config"
	"github.com/beka-birhanu/alice-maze/mazefile"
	"github.com/beka-birhanu/alice-maze/service"
	"github.com/sirupsen/logrus"
)

const usage = "Usage: alice-maze <inputfile>"

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	logger := config.NewLogger(stderr, logrus.InfoLevel)
	cfg := config.Load(logger)
	logger.SetLevel(cfg.LogLevel)
	log := logger.WithField("component", config.ComponentApp)

	m, err := mazefile.Load(args[0])
	if err != nil {
		log.WithError(err).Errorf("Loading maze %s", args[0])
		return 1
	}

	// The printed result never depends on the environment, so the step
	// limit is left to the server.
	svc, err := service.NewSolveService(&service.SolveOptions{
		Logger: logger.WithField("component", config.ComponentSolver),
	})
	if err != nil {
		log.WithError(err).Error("Creating solve service")
		return 1
	}

	_, res, err := svc.Solve(m)
	if err != nil {
		log.WithError(err).Error("Solving maze")
		return 1
	}

	fmt.Fprintln(stdout, res.String())
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
