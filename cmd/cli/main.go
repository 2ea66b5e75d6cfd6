package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/cricket-tournament/external/cricketapi"
	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
	"github.com/riskibarqy/cricket-tournament/internal/platform/resilience"
)

var (
	baseURL    string
	timeout    time.Duration
	maxRetries int
	dryRun     bool
	verbose    bool

	breakerThreshold int
	breakerCooldown  time.Duration
	noBreaker        bool
)

var rootCmd = &cobra.Command{
	Use:           "cricket-cli",
	Short:         "A CLI for the cricket tournament administration API",
	Long:          "Checks health, seeds demo registrations and runs end-to-end smoke flows against a running server.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&baseURL, "host", "http://localhost:8080", "base URL of the API server")
	flags.DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	flags.IntVar(&maxRetries, "retries", 2, "retries for idempotent requests")
	flags.BoolVar(&dryRun, "dry-run", false, "print curl previews of writes without sending them")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every request")

	breaker := resilience.DefaultCircuitBreakerConfig()
	flags.IntVar(&breakerThreshold, "breaker-threshold", breaker.FailureThreshold, "consecutive transient failures (per worker) before the client stops calling the server")
	flags.DurationVar(&breakerCooldown, "breaker-cooldown", breaker.OpenTimeout, "how long the open breaker rejects calls before probing again")
	flags.BoolVar(&noBreaker, "no-breaker", false, "disable the client circuit breaker")

	rootCmd.AddCommand(healthCmd, statsCmd, seedCmd, smokeCmd)
}

// newClient builds the API client for a command running the given number of concurrent workers.
func newClient(workers int) (*cricketapi.Client, error) {
	breaker, err := breakerConfig(workers)
	if err != nil {
		return nil, err
	}

	level := logging.LevelInfo
	if verbose {
		level = logging.LevelDebug
	}
	return cricketapi.NewClient(cricketapi.ClientConfig{
		BaseURL:        baseURL,
		Timeout:        timeout,
		MaxRetries:     maxRetries,
		Logger:         logging.NewJSON(level),
		CircuitBreaker: breaker,
		DryRun:         dryRun,
	}), nil
}

func breakerConfig(workers int) (resilience.CircuitBreakerConfig, error) {
	cfg := resilience.DefaultCircuitBreakerConfig()
	cfg.Enabled = !noBreaker
	cfg.FailureThreshold = breakerThreshold
	cfg.OpenTimeout = breakerCooldown
	if err := cfg.Validate(); err != nil {
		return resilience.CircuitBreakerConfig{}, err
	}
	return cfg.ForWorkers(workers), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cricket-cli: %v\n", err)
		os.Exit(1)
	}
}
