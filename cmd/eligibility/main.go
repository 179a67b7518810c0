package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/eligibility-mapper/cli/internal/api"
	"github.com/gravitrone/eligibility-mapper/cli/internal/cmd"
	"github.com/gravitrone/eligibility-mapper/cli/internal/logging"
	"github.com/gravitrone/eligibility-mapper/cli/internal/ui"
)

type rootFlags struct {
	offerID    string
	configPath string
	logFile    string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:   "eligibility",
		Short: "Eligibility mapper - link segments to offers",
		Long:  "Eligibility CLI: search market segments and include or exclude them from an offer's eligibility.",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logging.New(flags.logFile, flags.debug)
			if err != nil {
				return err
			}
			cmd.Logger = logger
			cmd.ConfigPath = flags.configPath
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&flags.offerID, "offer", "", "offer record id to edit")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.eligibility/config)")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write JSON logs to this file")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log at debug level")

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.DataspacesCmd())
	root.AddCommand(cmd.SegmentsCmd())
	root.AddCommand(cmd.IncludeCmd())
	root.AddCommand(cmd.ExcludeCmd())
	return root
}

func runTUI(flags rootFlags) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		fmt.Println("not logged in. run 'eligibility login' first.")
		return err
	}

	logger := cmd.Logger
	if flags.logFile == "" && cfg.LogFile != "" {
		if logger, err = logging.New(cfg.LogFile, flags.debug); err != nil {
			return err
		}
	}
	defer logger.Sync() //nolint:errcheck

	client := api.NewClientForServer(cfg.ServerURL, cfg.APIKey)
	client.SetLogger(logger.Named("api"))
	app := ui.NewApp(client, cfg, flags.offerID, logger)

	logger.Info("starting form", zap.String("server", client.BaseURL()), zap.String("offer_id", flags.offerID))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
