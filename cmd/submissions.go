package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ppmconsultants/ppmsite/internal/contact"
)

var submissionsCmd = &cobra.Command{
	Use:     "submissions",
	Aliases: []string{"subs"},
	Short:   "Review contact form submissions",
	Long:    `List, show and mark contact form submissions stored in the site database.`,
}

var submissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submissions, newest first",
	RunE:  runSubmissionsList,
}

var submissionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one submission in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubmissionsShow,
}

var submissionsMarkCmd = &cobra.Command{
	Use:   "mark <id> <new|read|answered>",
	Short: "Set the status of a submission",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubmissionsMark,
}

func init() {
	submissionsListCmd.Flags().String("status", "", "only show submissions with this status")
	submissionsListCmd.Flags().Int("limit", 50, "maximum number of rows")
	submissionsListCmd.Flags().Int("offset", 0, "rows to skip")

	submissionsCmd.AddCommand(submissionsListCmd)
	submissionsCmd.AddCommand(submissionsShowCmd)
	submissionsCmd.AddCommand(submissionsMarkCmd)
	rootCmd.AddCommand(submissionsCmd)
}

func parseStatus(s string) (contact.Status, error) {
	switch st := contact.Status(strings.ToLower(strings.TrimSpace(s))); st {
	case "", contact.StatusNew, contact.StatusRead, contact.StatusAnswered:
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q (want new, read or answered)", s)
}

func runSubmissionsList(cmd *cobra.Command, args []string) error {
	statusFlag, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")
	status, err := parseStatus(statusFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	store := contact.NewStore(database, nil)
	ctx := context.Background()
	subs, err := store.List(ctx, contact.ListFilter{Status: status, Limit: limit, Offset: offset})
	if err != nil {
		return fmt.Errorf("listing submissions: %w", err)
	}

	if len(subs) == 0 {
		fmt.Println("No submissions found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tRECEIVED\tSTATUS\tNAME\tEMAIL\tSUBJECT")
	for _, s := range subs {
		subject := s.Subject
		if subject == "" {
			subject = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Status, s.Name, s.Email, subject)
	}
	w.Flush()

	total, err := store.Count(ctx, status)
	if err != nil {
		return fmt.Errorf("counting submissions: %w", err)
	}
	fmt.Printf("\nShowing %d of %d\n", len(subs), total)
	return nil
}

func runSubmissionsShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	s, err := contact.NewStore(database, nil).Get(context.Background(), args[0])
	if errors.Is(err, contact.ErrNotFound) {
		return fmt.Errorf("no submission with id %q", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Printf("ID:       %s\n", s.ID)
	fmt.Printf("Received: %s\n", s.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Status:   %s\n", s.Status)
	fmt.Printf("Name:     %s\n", s.Name)
	fmt.Printf("Email:    %s\n", s.Email)
	if s.Phone != "" {
		fmt.Printf("Phone:    %s\n", s.Phone)
	}
	if s.Subject != "" {
		fmt.Printf("Subject:  %s\n", s.Subject)
	}
	fmt.Printf("\n%s\n", s.Message)
	return nil
}

func runSubmissionsMark(cmd *cobra.Command, args []string) error {
	status, err := parseStatus(args[1])
	if err != nil {
		return err
	}
	if status == "" {
		return errors.New("status is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	database, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	err = contact.NewStore(database, nil).SetStatus(context.Background(), args[0], status)
	if errors.Is(err, contact.ErrNotFound) {
		return fmt.Errorf("no submission with id %q", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Printf("Submission %s marked %s\n", args[0], status)
	return nil
}
