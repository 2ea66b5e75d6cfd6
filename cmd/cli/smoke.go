package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/cricket-tournament/external/cricketapi"
)

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run the registration and tournament end-to-end flows against the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dryRun {
			return crerr.New("smoke cannot run with --dry-run")
		}
		client, err := newClient(1)
		if err != nil {
			return err
		}
		return runSmoke(cmd.Context(), client, cmd.OutOrStdout(), time.Now().UTC())
	},
}

type smokeStep struct {
	name string
	run  func(ctx context.Context) error
}

// runSmoke creates its own records and removes them again; it stops at the first failing step.
func runSmoke(ctx context.Context, client *cricketapi.Client, out io.Writer, now time.Time) error {
	var (
		userID       string
		tournamentID string
		matchID      string
	)
	batch := now.UnixNano() % 1_000_000
	registration := cricketapi.Registration{
		FullName:       "Smoke Test Bowler",
		Email:          fmt.Sprintf("smoke.%d@example.com", batch),
		WhatsAppNumber: fmt.Sprintf("8%09d", batch),
		State:          "Karnataka",
		District:       "Mysuru",
		Pincode:        "570001",
		Type:           "Bowler",
		BowlerHanded:   "Right Handed",
		BowlerType:     "Pace/Fast",
	}
	start := now.Add(60 * 24 * time.Hour).Truncate(24 * time.Hour)

	steps := []smokeStep{
		{"health", func(ctx context.Context) error {
			health, err := client.Health(ctx)
			if err != nil {
				return err
			}
			return expect("health status", health.Status, "ok")
		}},
		{"register player", func(ctx context.Context) error {
			item, err := client.Register(ctx, registration)
			if err != nil {
				return err
			}
			userID = item.ID
			return expect("registration status", item.Status, "Pending")
		}},
		{"duplicate registration rejected", func(ctx context.Context) error {
			_, err := client.Register(ctx, registration)
			if !cricketapi.IsStatus(err, http.StatusConflict) {
				return crerr.Newf("expected 409 conflict, got %v", err)
			}
			return nil
		}},
		{"approve player", func(ctx context.Context) error {
			if _, err := client.SetUserStatus(ctx, userID, cricketapi.StatusChange{Status: "Approved"}); err != nil {
				return err
			}
			item, err := client.GetUser(ctx, userID)
			if err != nil {
				return err
			}
			return expect("user status", item.Status, "Approved")
		}},
		{"create tournament", func(ctx context.Context) error {
			item, err := client.CreateTournament(ctx, cricketapi.Tournament{
				Title:                fmt.Sprintf("Smoke Cup %d", batch),
				Description:          "Created by cricket-cli smoke",
				Venue:                "Chinnaswamy Stadium",
				StartDate:            start,
				EndDate:              start.Add(10 * 24 * time.Hour),
				RegistrationDeadline: start.Add(-7 * 24 * time.Hour),
				MaxTeams:             8,
				RegistrationFee:      5000,
				PrizePool:            50000,
				Status:               "upcoming",
				TournamentType:       "league",
				Format:               "t20",
				ContactPerson:        cricketapi.ContactPerson{Name: "Organiser", Phone: "9876543210", Email: "organiser@example.com"},
			})
			if err != nil {
				return err
			}
			tournamentID = item.ID
			return expect("tournament status", item.Status, "upcoming")
		}},
		{"tournament listed", func(ctx context.Context) error {
			items, err := client.ListTournaments(ctx)
			if err != nil {
				return err
			}
			for _, item := range items {
				if item.ID == tournamentID {
					return nil
				}
			}
			return crerr.Newf("tournament %s missing from list", tournamentID)
		}},
		{"complete tournament", func(ctx context.Context) error {
			if _, err := client.SetTournamentStatus(ctx, tournamentID, "completed"); err != nil {
				return err
			}
			item, err := client.GetTournament(ctx, tournamentID)
			if err != nil {
				return err
			}
			return expect("tournament status", item.Status, "completed")
		}},
		{"schedule match", func(ctx context.Context) error {
			item, err := client.CreateMatch(ctx, cricketapi.Match{
				TournamentID:  tournamentID,
				MatchNumber:   1,
				TeamA:         "Mysuru Warriors",
				TeamB:         "Bengaluru Blasters",
				ScheduledDate: start.Add(10 * time.Hour),
				Venue:         "Chinnaswamy Stadium",
			})
			if err != nil {
				return err
			}
			matchID = item.ID
			return nil
		}},
		{"delete tournament keeps matches", func(ctx context.Context) error {
			if err := client.DeleteTournament(ctx, tournamentID); err != nil {
				return err
			}
			if _, err := client.GetTournament(ctx, tournamentID); !cricketapi.IsStatus(err, http.StatusNotFound) {
				return crerr.Newf("expected 404 after delete, got %v", err)
			}
			matches, err := client.ListMatchesByTournament(ctx, tournamentID)
			if err != nil {
				return err
			}
			if len(matches) != 1 || matches[0].ID != matchID {
				return crerr.Newf("expected orphaned match %s, got %d match(es)", matchID, len(matches))
			}
			return nil
		}},
		{"cleanup", func(ctx context.Context) error {
			if err := client.DeleteMatch(ctx, matchID); err != nil {
				return err
			}
			return client.DeleteUser(ctx, userID)
		}},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			fmt.Fprintf(out, "FAIL %s: %v\n", step.name, err)
			return crerr.Wrapf(err, "smoke step %q", step.name)
		}
		fmt.Fprintf(out, "ok   %s\n", step.name)
	}
	return nil
}

func expect(what, got, want string) error {
	if got != want {
		return crerr.Newf("%s: got %q, want %q", what, got, want)
	}
	return nil
}
