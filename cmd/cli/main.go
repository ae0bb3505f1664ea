package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &clientOptions{}

	rootCmd := &cobra.Command{
		Use:           "fiscledger-cli",
		Short:         "fiscledger CLI tool",
		Long:          `A command line interface for the fiscledger journal API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "url", envOr("FISCLEDGER_URL", "http://localhost:8080"), "Base URL of the fiscledger API")
	rootCmd.PersistentFlags().StringVar(&opts.userID, "user", os.Getenv("FISCLEDGER_USER"), "User ID sent as X-User-ID")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		entriesCmd(opts),
		fiscalYearsCmd(opts),
		ledgerCmd(opts),
	)

	return rootCmd
}

func entriesCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Journal entry operations",
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().do(cmd, "GET", "/api/v1/entries/"+args[0], nil)
		},
	}

	var fiscalYear, journal, status string
	var limit, offset int
	list := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/entries" + query(map[string]string{
				"fiscal_year_id": fiscalYear,
				"journal_code":   journal,
				"status":         status,
				"limit":          fmt.Sprint(limit),
				"offset":         fmt.Sprint(offset),
			})
			return opts.client().do(cmd, "GET", path, nil)
		},
	}
	list.Flags().StringVar(&fiscalYear, "fiscal-year", "", "Filter by fiscal year ID")
	list.Flags().StringVar(&journal, "journal", "", "Filter by journal code")
	list.Flags().StringVar(&status, "status", "", "Filter by status (draft, posted, voided)")
	list.Flags().IntVar(&limit, "limit", 20, "Page size")
	list.Flags().IntVar(&offset, "offset", 0, "Page offset")

	var file, idempotencyKey string
	create := &cobra.Command{
		Use:   "create --file entry.json",
		Short: "Create a draft entry from a JSON file (- for stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(cmd, file)
			if err != nil {
				return err
			}
			c := opts.client()
			c.idempotencyKey = idempotencyKey
			return c.do(cmd, "POST", "/api/v1/entries", body)
		},
	}
	create.Flags().StringVarP(&file, "file", "f", "", "Path to the entry JSON")
	create.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency-Key header value")
	_ = create.MarkFlagRequired("file")

	cmd.AddCommand(get, list, create,
		actionCmd(opts, "post", "Post a balanced draft entry", "POST", "/api/v1/entries/%s/post"),
		actionCmd(opts, "void", "Void a draft entry", "POST", "/api/v1/entries/%s/void"),
		actionCmd(opts, "delete", "Delete an unposted entry", "DELETE", "/api/v1/entries/%s"),
	)

	return cmd
}

func fiscalYearsCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fiscal-years",
		Aliases: []string{"fy"},
		Short:   "Fiscal year operations",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List fiscal years",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().do(cmd, "GET", "/api/v1/fiscal-years", nil)
		},
	}

	var year int
	var start, end string
	create := &cobra.Command{
		Use:   "create",
		Short: "Open a fiscal year",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().doJSON(cmd, "POST", "/api/v1/fiscal-years", map[string]any{
				"year_number": year,
				"start_date":  start,
				"end_date":    end,
			})
		},
	}
	create.Flags().IntVar(&year, "year", 0, "Year number")
	create.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	create.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = create.MarkFlagRequired("year")
	_ = create.MarkFlagRequired("start")
	_ = create.MarkFlagRequired("end")

	var closingEntry string
	closeCmd := &cobra.Command{
		Use:   "close <id>",
		Short: "Close a fiscal year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().doJSON(cmd, "POST", "/api/v1/fiscal-years/"+args[0]+"/close", map[string]any{
				"closing_entry_id": closingEntry,
			})
		},
	}
	closeCmd.Flags().StringVar(&closingEntry, "closing-entry", "", "ID of the closing entry")

	cmd.AddCommand(list, create, closeCmd,
		actionCmd(opts, "lock", "Lock an open fiscal year", "POST", "/api/v1/fiscal-years/%s/lock"),
	)

	return cmd
}

func ledgerCmd(opts *clientOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistency := &cobra.Command{
		Use:   "consistency <fiscal-year-id>",
		Short: "Check that posted debits equal posted credits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().do(cmd, "GET", "/api/v1/fiscal-years/"+args[0]+"/consistency", nil)
		},
	}

	cmd.AddCommand(consistency)
	return cmd
}

// actionCmd builds a command that sends method to pathFmt with its single ID argument.
func actionCmd(opts *clientOptions, use, short, method, pathFmt string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.client().do(cmd, method, fmt.Sprintf(pathFmt, args[0]), nil)
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
