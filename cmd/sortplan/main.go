package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"valuesort/internal/benchmark/memoryuse"
	"valuesort/internal/config"
	"valuesort/internal/domain"
	"valuesort/internal/selector"
	"valuesort/pkg/logger"
	"valuesort/pkg/sorter"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Fatalf("sortplan: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("sortplan", flag.ContinueOnError)
	var configPath, mannerName, memoryCSV string
	fs.StringVar(&configPath, "config", "", "Path to config file (default $"+config.ConfigPathEnv+" or ~/.config/valuesort/config.yaml)")
	fs.StringVar(&mannerName, "manner", "", "Override solver.value_sorter_manner")
	fs.StringVar(&memoryCSV, "memory-csv", "", "Write a memory use statistic to this CSV file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	start := time.Now()

	// 1. Load config
	var conf *config.Config
	var err error
	if configPath != "" {
		conf, err = config.Load(configPath)
	} else {
		conf, err = config.LoadLocalConfig()
	}
	if err != nil {
		return err
	}
	if err := logger.SetLevel(conf.Logging.Level); err != nil {
		return err
	}
	if mannerName != "" {
		m, err := sorter.ParseManner(mannerName)
		if err != nil {
			return err
		}
		conf.Solver.ValueSorterManner = m
	}

	// 2. Build variable metadata
	solution, err := domain.Build(conf.Domain)
	if err != nil {
		return err
	}

	// 3. Resolve every variable's selector
	factory := selector.Factory{Manner: conf.Solver.ValueSorterManner, Overrides: conf.Solver.VariableSorterManners}
	selectors, err := selector.BuildAll(context.Background(), factory, solution.Variables(), conf.Solver.Parallelism)
	if err != nil {
		return err
	}
	logger.Info("Value selectors built", "variables", len(selectors), "manner", conf.Solver.ValueSorterManner.String())

	// 4. Output
	for _, s := range selectors {
		state := "unsorted"
		if s.Sorted() {
			state = "sorted"
		}
		values := make([]string, 0, len(s.Values()))
		for _, v := range s.Values() {
			values = append(values, fmt.Sprint(v))
		}
		fmt.Fprintf(stdout, "%s [%s]: %s\n", s.Variable().QualifiedName(), state, strings.Join(values, ", "))
	}

	if memoryCSV == "" {
		return nil
	}
	var stat memoryuse.Statistic
	stat.Record(time.Since(start), memoryuse.Measure())
	return writeMemoryCSV(memoryCSV, &stat)
}

func writeMemoryCSV(path string, stat *memoryuse.Statistic) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create memory csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close memory csv: %w", cerr)
		}
	}()
	return stat.WriteCSV(f)
}
