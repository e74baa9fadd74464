// Command gid loads an update-stream JSON file, replays it through one or
// all detector algorithms under a timeout, and prints each algorithm's
// timing and resulting partition sizes. If an expected-result JSON file is
// given as the optional second argument, each result is compared against it.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"fortio.org/cli"
	"fortio.org/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gid/detector"
	"github.com/katalvlaran/gid/internal/driver"
	"github.com/katalvlaran/gid/internal/streamio"
	"github.com/katalvlaran/gid/internal/telemetry"
)

const (
	exitSuccess  = 0
	exitMismatch = 1
	exitIOError  = 2
)

var (
	algoFlag    = flag.String("a", "", "run only this algorithm: one of n,s,b,l,j (default: all)")
	excludeFlag = flag.String("e", "", "exclude these algorithms, comma-separated (e.g. n,s)")
	timeoutFlag = flag.Duration("timeout", 10*time.Second, "per-algorithm timeout")
	metricsFlag = flag.Bool("metrics", false, "record OpenTelemetry/Prometheus metrics for the run")
	metricsAddr = flag.String("metrics-addr", ":9090", "address to serve /metrics on, when -metrics is set")
)

func main() {
	cli.ArgsHelp = "input.json [expect.json]"
	cli.MinArgs = 1
	cli.MaxArgs = 2
	cli.Main()

	os.Exit(run())
}

func run() int {
	if *metricsFlag {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: *metricsAddr, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Errf("metrics server: %v", err)
			}
		}()
		defer server.Close()
	}

	args := flag.Args()
	inputPath := args[0]
	expectPath := ""
	if len(args) == 2 {
		expectPath = args[1]
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		log.Errf("reading %s: %v", inputPath, err)
		return exitIOError
	}
	records, err := streamio.Decode(raw)
	if err != nil {
		log.Errf("decoding %s: %v", inputPath, err)
		return exitIOError
	}

	var expect *detector.Snapshot
	if expectPath != "" {
		expectRaw, err := os.ReadFile(expectPath)
		if err != nil {
			log.Errf("reading %s: %v", expectPath, err)
			return exitIOError
		}
		snap, err := streamio.DecodeDocument(expectRaw)
		if err != nil {
			log.Errf("decoding %s: %v", expectPath, err)
			return exitIOError
		}
		expect = &snap
	}

	algos, err := selectAlgorithms(*algoFlag, *excludeFlag)
	if err != nil {
		log.Errf("%v", err)
		return exitIOError
	}

	mismatch := false
	for _, algo := range algos {
		result, err := runOne(algo, records)
		if err != nil {
			log.Errf("%s: %v", algo, err)
			return exitIOError
		}
		log.Infof("[%s] %-6s %8.3fms  live=%d dead=%d unknown=%d open=%d",
			result.RunID, algo, float64(result.Elapsed.Microseconds())/1000.0,
			len(result.Snapshot.Live), len(result.Snapshot.Dead),
			len(result.Snapshot.Unknown), len(result.Snapshot.Open))

		if expect != nil && !snapshotsMatch(*expect, result.Snapshot) {
			log.Errf("%s: result does not match %s", algo, expectPath)
			mismatch = true
		}
	}

	if mismatch {
		return exitMismatch
	}
	return exitSuccess
}

func runOne(algo detector.Algorithm, records []streamio.Record) (driver.Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	var tel *telemetry.Provider
	if *metricsFlag {
		p, err := telemetry.NewProvider(ctx, telemetry.DefaultConfig(algo.String()))
		if err != nil {
			return driver.Result{}, err
		}
		defer p.Shutdown(context.Background())
		tel = p
	}

	return driver.Run(ctx, algo, records, tel)
}

func selectAlgorithms(only, exclude string) ([]detector.Algorithm, error) {
	excluded := make(map[detector.Algorithm]bool)
	for _, flagValue := range splitNonEmpty(exclude) {
		a, ok := detector.ParseAlgorithm(flagValue)
		if !ok {
			return nil, fmt.Errorf("unknown algorithm flag %q in -e", flagValue)
		}
		excluded[a] = true
	}

	if only != "" {
		a, ok := detector.ParseAlgorithm(only)
		if !ok {
			return nil, fmt.Errorf("unknown algorithm flag %q in -a", only)
		}
		if excluded[a] {
			return nil, nil
		}
		return []detector.Algorithm{a}, nil
	}

	var algos []detector.Algorithm
	for _, a := range detector.All() {
		if !excluded[a] {
			algos = append(algos, a)
		}
	}
	return algos, nil
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func snapshotsMatch(a, b detector.Snapshot) bool {
	return equalSet(a.Live, b.Live) && equalSet(a.Dead, b.Dead) &&
		equalSet(a.Unknown, b.Unknown) && equalSet(a.Open, b.Open)
}

func equalSet(a, b []detector.VertexID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[detector.VertexID]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		if !seen[v] {
			return false
		}
	}
	return true
}
