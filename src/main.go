package main

import (
	"errors"
	"fmt"
	"github.com/integrii/flaggy"
	"io"
	"log"
	"os"
	"strings"
	"termlife/src/universe"
	"termlife/src/view"
)

type EnvOptions struct {
	preset     bool
	presetFile string
	template   string
	randomData bool
	headless   bool
	printEvery int
	logFile    string
}

func main() {
	eo, uo := initOptions()
	os.Exit(run(eo, uo, os.Stdin, os.Stdout))
}

//run wires the simulation and returns the process exit status
func run(eo *EnvOptions, uo *universe.Options, stdin io.Reader, stdout io.Writer) int {
	logger, closeLog, err := newLogger(eo.logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	seed := universe.NewGrid()
	if err := loadSeed(eo, uo, seed, stdin); err != nil {
		logger.Printf("seeding failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if eo.headless {
		if err := runHeadless(uo, seed, stdout, eo.printEvery, logger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	ui, err := view.NewConsoleUI(logger)
	if err != nil {
		logger.Printf("terminal init failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	sim := universe.NewSimulation(uo, ui, ui, logger)
	sim.Grid().CopyFrom(seed)

	simErr := make(chan error, 1)
	go func() {
		err := sim.Run()
		ui.Stop()
		simErr <- err
	}()

	if err := ui.Start(); err != nil {
		logger.Printf("terminal failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := <-simErr; err != nil && !errors.Is(err, universe.ErrInputClosed) {
		logger.Printf("simulation failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

//runHeadless prints the frames to stdout and starts right away
func runHeadless(uo *universe.Options, seed *universe.Grid, stdout io.Writer, every int, logger *log.Logger) error {
	o := *uo
	o.Linger = 0
	in := universe.NewScriptedInput(universe.KeyEvent{Key: universe.KeyStart})
	sim := universe.NewSimulation(&o, view.NewConsoleOut(stdout, every), in, logger)
	sim.Grid().CopyFrom(seed)
	return sim.Run()
}

//loadSeed settles the grid from the preset stream, the preset file, a template or random data
func loadSeed(eo *EnvOptions, uo *universe.Options, g *universe.Grid, stdin io.Reader) error {
	switch {
	case eo.preset:
		if err := universe.LoadPreset(g, stdin); err != nil {
			return fmt.Errorf("stdin preset: %w", err)
		}
	case eo.presetFile != "":
		f, err := os.Open(eo.presetFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := universe.LoadPreset(g, f); err != nil {
			return fmt.Errorf("preset %v: %w", eo.presetFile, err)
		}
	case eo.template != "":
		if err := universe.SettleTemplate(g, eo.template); err != nil {
			return err
		}
	case eo.randomData:
		g.Randomize(universe.NewRNG(uo.Seed))
	}
	return nil
}

func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return log.New(f, "[simlife] ", log.Ldate|log.Ltime|log.Lshortfile), func() { _ = f.Close() }, nil
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {
	o := universe.DefaultOptions
	uo = &o
	engineNames := make([]string, 0, len(universe.Engines))
	for k := range universe.Engines {
		engineNames = append(engineNames, k)
	}
	eo = &EnvOptions{printEvery: 1}

	flaggy.SetName("termlife")
	flaggy.SetDescription("Conway's Game of Life on a 80x25 torus")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Bool(&eo.preset, "p", "preset", "Read the preset (count followed by 'x y' pairs) from stdin")
	flaggy.String(&eo.presetFile, "f", "preset-file", "Read the preset from the file")
	flaggy.String(&eo.template, "t", "template", "Settle the built-in template ["+strings.Join(universe.TemplateNames(), "|")+"]")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Int64(&uo.Seed, "", "seed", "Random seed, 0 is time based")
	flaggy.Duration(&uo.Interval, "i", "interval", "Initial interval between the steps, for example 150ms")
	flaggy.Bool(&eo.headless, "H", "headless", "Print the frames to stdout instead of the interactive terminal")
	flaggy.Int(&eo.printEvery, "", "every", "Headless: print only every N-th epoch")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 is unlimited")
	flaggy.String(&uo.Engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")
	flaggy.String(&eo.logFile, "l", "log", "Append the log to the file")
	flaggy.Duration(&uo.Linger, "", "linger", "How long the end message stays on the screen")

	flaggy.Parse()

	if _, ok := universe.Engines[uo.Engine]; !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if eo.template != "" {
		if _, ok := universe.Templates[eo.template]; !ok {
			flaggy.ShowHelpAndExit("unknown template")
		}
	}

	return
}
