package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/vidyasagar/webhub/internal/app"
	"github.com/vidyasagar/webhub/internal/browser"
	"github.com/vidyasagar/webhub/internal/transcript"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:     "webhub",
		Short:   "webhub - a terminal shell for your favourite sites",
		Version: version,
		Long: `webhub keeps a named list of sites and opens them in your browser.

Run without arguments to start the interactive shell, then type 'help'.`,
		Example: `  webhub                        # start the shell
  webhub --theme nord           # use the nord theme
  webhub --backend json         # keep sites in a JSON file
  webhub run add go https://go.dev
  webhub run ls -l`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.theme, "theme", "", "color theme (default, dracula, gruvbox, nord)")
	rootCmd.PersistentFlags().StringVar(&opts.backend, "backend", "", "storage backend (sqlite, json, memory)")
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory for the site store and log (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&opts.scope, "scope", "", "scope shown in the prompt")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	runCmd := &cobra.Command{
		Use:   "run <line...>",
		Short: "Run one shell line and print its output",
		Long: `Joins the arguments with single spaces, runs the line exactly as the
interactive shell would, and prints the resulting output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(cmd, opts, args)
		},
	}
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)

	return rootCmd
}

// runInteractive starts the bubbletea shell.
func runInteractive(cmd *cobra.Command, opts options) error {
	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.close()

	m := app.New(s.shell, app.Options{
		Config:   s.config,
		Renderer: browser.NewRenderer(),
		Logger:   s.logger,
	})
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running shell: %w", err)
	}
	return nil
}

// runLine submits one line and prints everything but the echoed prompt.
func runLine(cmd *cobra.Command, opts options, args []string) error {
	s, err := openSession(cmd, opts)
	if err != nil {
		return err
	}
	defer s.close()

	s.shell.Submit(joinArgs(args))

	out := cmd.OutOrStdout()
	for _, l := range s.shell.Transcript().Lines() {
		switch l.Kind {
		case transcript.Echo:
			continue
		case transcript.Rich:
			fmt.Fprintln(out, browser.PlainText(l.Text))
		default:
			fmt.Fprintln(out, l.Text)
		}
	}
	return nil
}
