// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ezrec/utm/internal/trace"
	"github.com/ezrec/utm/machine"
	"github.com/ezrec/utm/rules"
	"github.com/ezrec/utm/translate"
)

func main() {
	var configPath string
	var ordinal bool

	cfg := defaultConfig()

	flag.StringVar(&configPath, "c", "", ".toml run configuration")
	flag.StringVar(&cfg.Program, "p", cfg.Program, "Rule file (.tm, .star, .yaml)")
	flag.StringVar(&cfg.Input, "i", cfg.Input, "Tape input")
	flag.StringVar(&cfg.Start, "start", cfg.Start, "Start state")
	flag.BoolVar(&ordinal, "ordinal", false, "Store states as ordinals on the rules tape")
	flag.IntVar(&cfg.MaxSteps, "max", cfg.MaxSteps, "Abort after this many cycles (0 to never abort)")
	flag.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Delay between displayed cycles")
	flag.BoolVar(&cfg.Show, "show", cfg.Show, "Show the tapes every cycle")
	flag.StringVar(&cfg.Trace, "trace", cfg.Trace, "JSON trace file")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if ordinal {
		cfg.Encoding = rules.Ordinal.String()
	}

	if len(configPath) != 0 {
		file, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("%v: %v", configPath, err)
		}
		set := map[string]bool{}
		flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
		cfg = mergeConfig(file, cfg, set)
	}

	if len(cfg.Program) == 0 {
		log.Fatalf("%v: no rule file, use -p or a configuration", os.Args[0])
	}

	err := run(cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// run loads the program and input of cfg, runs the machine to a halt and
// writes the output and access statistics.
func run(cfg config, stdin io.Reader, stdout io.Writer) (err error) {
	if cfg.Verbose {
		log.Printf("utm: messages in %v", translate.Language())
	}

	dir, name := filepath.Split(cfg.Program)
	if len(dir) == 0 {
		dir = "."
	}

	prog, err := rules.Load(os.DirFS(dir), name, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("%v: %w", cfg.Program, err)
	}

	prog.Encoding, err = rules.ParseEncoding(cfg.Encoding)
	if err != nil {
		return fmt.Errorf("%v: %w", cfg.Encoding, err)
	}

	if len(cfg.Start) != 0 {
		err = prog.SetStart(cfg.Start)
		if err != nil {
			return fmt.Errorf("%v: %w", cfg.Start, err)
		}
	}

	m, err := machine.New(prog)
	if err != nil {
		return fmt.Errorf("%v: %w", cfg.Program, err)
	}
	m.Verbose = cfg.Verbose
	m.MaxSteps = cfg.MaxSteps

	input := stdin
	if cfg.Input != "-" {
		inf, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer inf.Close()
		input = inf
	}

	err = m.LoadInput(input)
	if err != nil {
		return fmt.Errorf("%v: %w", cfg.Input, err)
	}

	var observers []machine.Observer

	if cfg.Show {
		disp := &display{out: stdout, delay: cfg.Delay, sleep: time.Sleep}
		observers = append(observers, disp.observe)
	}

	var logger *slog.Logger
	if len(cfg.Trace) != 0 {
		ouf, err := os.Create(cfg.Trace)
		if err != nil {
			return err
		}
		defer ouf.Close()

		var echo io.Writer
		if cfg.Verbose {
			echo = os.Stderr
		}
		logger = trace.New(ouf, echo, slog.LevelInfo)
		observers = append(observers, trace.Observer(logger))
	}

	if len(observers) != 0 {
		m.Observer = machine.Observers(observers...)
	}

	err = m.Run()

	if logger != nil {
		trace.Halt(logger, m, err)
	}

	if err != nil {
		return
	}

	fmt.Fprintln(stdout, m.Output())
	fmt.Fprintln(stdout, m.Stats().String())

	return
}
