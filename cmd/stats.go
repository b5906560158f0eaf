package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ppmconsultants/ppmsite/internal/analytics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show page views and tracked events",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, err := openDB(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		tracker, err := analytics.NewTracker(database, nil, cfg.Analytics.Enabled, cfg.Analytics.Exclude)
		if err != nil {
			return err
		}
		ctx := context.Background()
		views, err := tracker.PageViews(ctx)
		if err != nil {
			return fmt.Errorf("reading page views: %w", err)
		}
		events, err := tracker.Events(ctx)
		if err != nil {
			return fmt.Errorf("reading events: %w", err)
		}

		if !tracker.Enabled() {
			fmt.Println("Analytics is disabled; showing previously recorded data.")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PATH\tVIEWS")
		for _, v := range views {
			fmt.Fprintf(w, "%s\t%d\n", v.Path, v.Views)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "CATEGORY\tACTION\tCOUNT")
		for _, e := range events {
			fmt.Fprintf(w, "%s\t%s\t%d\n", e.Category, e.Action, e.Count)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
