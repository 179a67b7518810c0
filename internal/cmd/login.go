package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/gravitrone/eligibility-mapper/cli/internal/api"
	"github.com/gravitrone/eligibility-mapper/cli/internal/config"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("login aborted")

// Prompter asks the user for login details.
type Prompter interface {
	Input(message, def string) (string, error)
	Password(message string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(survey.Required)); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Password(message string) (string, error) {
	var out string
	prompt := &survey.Password{Message: message}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(survey.Required)); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// LoginOptions carries values given on the command line. Empty fields are
// prompted for.
type LoginOptions struct {
	ServerURL string
	APIKey    string
}

// RunLogin collects credentials, checks them against the server and saves
// the config.
func RunLogin(p Prompter, opts LoginOptions, out io.Writer) error {
	serverURL := strings.TrimSpace(opts.ServerURL)
	if serverURL == "" {
		v, err := p.Input("server url:", api.DefaultBaseURL)
		if err != nil {
			return err
		}
		serverURL = strings.TrimSpace(v)
	}

	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		v, err := p.Password("api key:")
		if err != nil {
			return err
		}
		apiKey = strings.TrimSpace(v)
	}
	if apiKey == "" {
		return fmt.Errorf("api key is required")
	}

	client := api.NewClientForServer(serverURL, apiKey)
	client.SetLogger(Logger)
	dataspaces, err := client.ListDataspaces()
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cfg := &config.Config{
		APIKey:    apiKey,
		ServerURL: client.BaseURL(),
		Theme:     "dark",
	}
	path, err := saveConfig(cfg)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "logged in to %s (%d dataspaces)\n", cfg.ServerURL, len(dataspaces))
	fmt.Fprintf(out, "config saved to %s\n", path)
	return nil
}

// LoginCmd returns the `eligibility login` command.
func LoginCmd() *cobra.Command {
	var opts LoginOptions
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with an eligibility server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunLogin(surveyPrompter{}, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.ServerURL, "server", "", "server url (prompted when empty)")
	cmd.Flags().StringVar(&opts.APIKey, "api-key", "", "api key (prompted when empty)")
	return cmd
}
