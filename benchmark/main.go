// Package main provides a performance benchmarking tool for the Courtside CLI.
// It measures execution times across different dataset sizes and command types,
// running each test multiple times, treating the first successful run as cold and
// averaging the rest as warm, generating CSV output for performance analysis.
//
// Prerequisites:
// - courtside binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where synthetic datasets are generated
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset     string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	TeamCounts  map[string]int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     time.Minute,
		NoCacheRuns: 3,
		CacheRuns:   4,
		TeamCounts: map[string]int{
			"league":     30,
			"multi-year": 300,
			"synthetic":  3000,
		},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	datasets, err := generateDatasets(config)
	if err != nil {
		fmt.Printf("Failed to generate datasets: %v\n", err)
		os.Exit(1)
	}

	// Clear the cache using courtside cache clear
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("courtside", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config, datasets)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the courtside binary exists.
func checkPrerequisites() error {
	if _, err := exec.LookPath("courtside"); err != nil {
		return fmt.Errorf("courtside binary not found in PATH")
	}
	return nil
}

// generateDatasets writes one synthetic CSV dataset per configured size and
// returns a name -> path map. Team rows use plausible records and scoring
// averages so the analytics paths behave like real seasons.
func generateDatasets(config BenchmarkConfig) (map[string]string, error) {
	rng := rand.New(rand.NewSource(42))
	datasets := make(map[string]string, len(config.TeamCounts))

	for name, teams := range config.TeamCounts {
		path := filepath.Join(config.WorkDir, name+".csv")
		file, err := os.Create(path)
		if err != nil {
			return nil, err
		}

		writer := csv.NewWriter(file)
		_ = writer.Write([]string{"team", "conference", "wins", "losses", "ppg", "oppg"})
		for i := 0; i < teams; i++ {
			conference := "East"
			if i%2 == 0 {
				conference = "West"
			}
			wins := rng.Intn(61) + 10 // 10-70 wins
			losses := 82 - wins
			ppg := 100.0 + rng.Float64()*20.0
			oppg := 100.0 + rng.Float64()*20.0
			_ = writer.Write([]string{
				fmt.Sprintf("Team %04d", i),
				conference,
				fmt.Sprintf("%d", wins),
				fmt.Sprintf("%d", losses),
				fmt.Sprintf("%.1f", ppg),
				fmt.Sprintf("%.1f", oppg),
			})
		}
		writer.Flush()
		if err := file.Close(); err != nil {
			return nil, err
		}
		datasets[name] = path
	}

	return datasets, nil
}

// runBenchmarks executes all benchmark tests across generated datasets.
func runBenchmarks(config BenchmarkConfig, datasets map[string]string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(datasets), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for name, path := range datasets {
		fmt.Printf("Benchmarking %s\n", name)

		results = append(results, runBenchmarkSuite(config, name, path, "standings", nil))
		results = append(results, runBenchmarkSuite(config, name, path, "luck", []string{"--top-n", "10"}))
		results = append(results, runBenchmarkSuite(config, name, path, "matchup", []string{"--home", "Team 0000", "--away", "Team 0001"}))
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, name, datasetPath, command string, extraArgs []string) BenchmarkResult {
	fmt.Printf("Running %s analysis on %s\n", command, name)

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, datasetPath, command, extraArgs, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:     name,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a courtside command multiple times with the specified
// cache backend and returns cold time and warm times.
func runBenchmark(config BenchmarkConfig, datasetPath, command string, extraArgs []string, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, datasetPath, "--cache-backend", cacheBackend}
	args = append(args, extraArgs...)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("courtside", args...)

		done := make(chan bool)
		var cmdErr error

		go func() {
			_, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/courtside_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Dataset, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "standings", "Standings Analysis:")
	printCommandSummary(results, "luck", "Luck Analysis:")
	printCommandSummary(results, "matchup", "Matchup Analysis:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type.
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-cache: %s, Cold: %s, Warm: %s\n", result.Dataset, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}
