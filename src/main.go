package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"liftscan/src/cli"
	"liftscan/src/config"
	"liftscan/src/display"
	"liftscan/src/elev"
	"liftscan/src/types"
)

// Requests used when no floors are given on the command line.
var demoFloors = []types.Floor{3, 5, 1, 7}

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	envPath := flag.String("env", ".env", "Path to dotenv file with overrides")
	interactive := flag.Bool("i", false, "Read commands from the keyboard")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	if err := elev.InitLogger(cfg.CarID, level, cfg.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}

	elevator := elev.New(cfg, display.NewConsole(os.Stdout))

	if *interactive {
		if err := cli.RunInteractive(elevator, os.Stdout); err != nil {
			slog.Error("Interactive session failed", "err", err)
			os.Exit(1)
		}
		return
	}

	floors, err := parseFloors(flag.Args())
	if err != nil {
		slog.Error("Bad floor argument", "err", err)
		os.Exit(2)
	}
	for _, floor := range floors {
		_ = elevator.SubmitCall(floor)
	}
	elevator.DispatchNext()
	slog.Info("Done", "floor", elevator.CurrentFloor())
}

func parseFloors(args []string) ([]types.Floor, error) {
	if len(args) == 0 {
		return demoFloors, nil
	}
	floors := make([]types.Floor, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("floor %q: %w", arg, err)
		}
		floors = append(floors, types.Floor(n))
	}
	return floors, nil
}
