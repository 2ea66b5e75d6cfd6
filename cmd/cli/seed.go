package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/cricket-tournament/external/cricketapi"
)

var (
	seedPlayers int
	seedWorkers int
	seedBatch   int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Register generated demo players through the public registration endpoint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		batch := seedBatch
		if batch <= 0 {
			batch = time.Now().Unix()
		}
		client, err := newClient(seedWorkers)
		if err != nil {
			return err
		}
		result, err := seedRegistrations(cmd.Context(), client, seedPlayers, seedWorkers, batch)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded players=%d created=%d duplicates=%d failed=%d duration=%s\n",
			seedPlayers, result.Created, result.Duplicates, result.Failed, result.Duration.Round(time.Millisecond))
		if result.Failed > 0 {
			return fmt.Errorf("%d registration(s) failed; first error: %w", result.Failed, result.FirstErr)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedPlayers, "players", 20, "number of players to register")
	seedCmd.Flags().IntVar(&seedWorkers, "workers", 4, "concurrent registration workers")
	seedCmd.Flags().Int64Var(&seedBatch, "batch", 0, "batch number used to derive unique emails and phone numbers (default: unix time)")
}

type seedResult struct {
	Created    int
	Duplicates int
	Failed     int
	FirstErr   error
	Duration   time.Duration
}

var (
	seedFirstNames = []string{"Ravi", "Arjun", "Kiran", "Suresh", "Manoj", "Rahul", "Deepak", "Vinay", "Naveen", "Prakash"}
	seedLastNames  = []string{"Kumar", "Gowda", "Shetty", "Rao", "Naik", "Hegde", "Patil", "Reddy"}
	seedDistricts  = []string{"Bengaluru Urban", "Mysuru", "Mangaluru", "Hubballi", "Belagavi", "Udupi"}
)

// demoRegistration builds the i-th valid registration of a batch; email and WhatsApp number are unique per (batch, i).
func demoRegistration(batch int64, i int) cricketapi.Registration {
	first := seedFirstNames[i%len(seedFirstNames)]
	last := seedLastNames[(i/len(seedFirstNames))%len(seedLastNames)]
	serial := (batch*10_000 + int64(i)) % 1_000_000_000

	reg := cricketapi.Registration{
		FullName:       first + " " + last,
		Email:          fmt.Sprintf("%s.%s.%d.%d@example.com", strings.ToLower(first), strings.ToLower(last), batch, i),
		WhatsAppNumber: fmt.Sprintf("9%09d", serial),
		State:          "Karnataka",
		District:       seedDistricts[i%len(seedDistricts)],
		Pincode:        fmt.Sprintf("5600%02d", i%100),
	}
	switch i % 3 {
	case 0:
		reg.Type = "Batsman"
		reg.BatsmanHanded = []string{"Right", "Left"}[i%2]
	case 1:
		reg.Type = "Bowler"
		reg.BowlerHanded = "Right Handed"
		reg.BowlerType = []string{"Pace/Fast", "Medium", "Spin/Slow"}[(i/3)%3]
	default:
		reg.Type = "All Rounder"
		reg.BatsmanHanded = "Right"
		reg.BowlerHanded = "Left Handed"
		reg.BowlerType = "Spin/Slow"
	}
	return reg
}

func seedRegistrations(ctx context.Context, client *cricketapi.Client, players, workers int, batch int64) (seedResult, error) {
	if players <= 0 {
		return seedResult{}, fmt.Errorf("--players must be > 0")
	}
	if workers <= 0 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return seedResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	started := time.Now()
	var (
		created    atomic.Int32
		duplicates atomic.Int32
		failed     atomic.Int32
		firstErr   error
		errOnce    sync.Once
		wg         sync.WaitGroup
	)

	for i := 0; i < players; i++ {
		reg := demoRegistration(batch, i)
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			_, err := client.Register(ctx, reg)
			switch {
			case err == nil:
				created.Add(1)
			case cricketapi.IsStatus(err, http.StatusConflict):
				duplicates.Add(1)
			default:
				failed.Add(1)
				errOnce.Do(func() { firstErr = err })
			}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return seedResult{}, fmt.Errorf("submit registration to worker pool: %w", err)
		}
	}
	wg.Wait()

	return seedResult{
		Created:    int(created.Load()),
		Duplicates: int(duplicates.Load()),
		Failed:     int(failed.Load()),
		FirstErr:   firstErr,
		Duration:   time.Since(started),
	}, nil
}
