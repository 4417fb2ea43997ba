package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/calloway/showroom/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	var opts app.Options

	root := &cobra.Command{
		Use:           "showroom",
		Short:         "Browse and manage a furniture catalog in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	root.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "", "override preferences path (optional)")

	browse := &cobra.Command{
		Use:   "browse",
		Short: "Open the read-only storefront",
		Long: "Open the storefront: browse the catalog by category, sort by " +
			"newest or price, and watch edits from the admin surface appear live.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunStorefront(cmd.Context(), opts)
		},
	}

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Open the product editor",
		Long: "Open the admin surface: log in, then add, edit, and delete " +
			"products in the shared catalog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunAdmin(cmd.Context(), opts)
		},
	}

	root.AddCommand(browse, adminCmd)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "showroom: %v\n", err)
		return 1
	}
	return 0
}
