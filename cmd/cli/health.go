package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(1)
		if err != nil {
			return err
		}
		health, err := client.Health(cmd.Context())
		if err != nil {
			return fmt.Errorf("health check: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "status=%s storage=%s time=%s\n", health.Status, health.Storage, health.Time)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the admin dashboard counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(1)
		if err != nil {
			return err
		}
		stats, err := client.DashboardStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("dashboard stats: %w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "users:       %d (pending %d, approved %d)\n", stats.TotalUsers, stats.PendingUsers, stats.ApprovedUsers)
		fmt.Fprintf(out, "tournaments: %d (active %d)\n", stats.TotalTournaments, stats.ActiveTournaments)
		fmt.Fprintf(out, "matches:     %d\n", stats.TotalMatches)
		return nil
	},
}
