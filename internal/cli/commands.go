// Package cli implements the hecate command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tansive/hecate/internal/accessor"
	"github.com/tansive/hecate/internal/common/logtrace"
)

var okLabel = color.New(color.FgGreen)
var errorLabel = color.New(color.FgRed)

// globalOptions holds the persistent flags of one command tree.
type globalOptions struct {
	configFile string
	url        string
	username   string
	password   string
	verbose    bool
}

// NewRootCmd builds the hecate command tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}
	rootCmd := &cobra.Command{
		Use:   "hecate [command] [flags]",
		Short: "hecate CLI - command line access to a hecate server",
		Long: `hecate CLI is a command line interface for a hecate map-data server.

Examples:
  # Fetch server metadata, prompting for credentials if the server requires them
  hecate server get

  # Fetch server statistics without prompting, suitable for piping
  hecate server stats --script | jq .`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			w := cmd.ErrOrStderr()
			f, isFile := w.(*os.File)
			logtrace.InitLoggerTo(w, logtrace.LevelFor(g.verbose), isFile && term.IsTerminal(int(f.Fd())))
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.configFile, "config", "", "", "Path to configuration file to override default")
	rootCmd.PersistentFlags().StringVar(&g.url, "url", "", "URL of the hecate server (overrides config and "+EnvURL+")")
	rootCmd.PersistentFlags().StringVar(&g.username, "username", "", "Username for basic auth")
	rootCmd.PersistentFlags().StringVar(&g.password, "password", "", "Password for basic auth")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log requests to stderr")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newServerCmd(g))
	return rootCmd
}

// Execute runs the CLI and exits non-zero on any error.
// This is called by main.main().
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

// run executes rootCmd with args and returns the process exit code. Errors
// are printed to stderr; stdout only ever carries command output.
func run(rootCmd *cobra.Command, args []string, stderr io.Writer) int {
	rootCmd.SilenceErrors = true // Prevent Cobra from printing the error
	rootCmd.SilenceUsage = true  // Prevent Cobra from printing usage on error
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		errorLabel.Fprintf(stderr, "Error: %s\n", errorLine(err))
		return 1
	}
	return 0
}

// errorLine formats err for the terminal, prefixing server rejections with
// their HTTP status code.
func errorLine(err error) string {
	var statusErr *accessor.UnexpectedStatusError
	if errors.As(err, &statusErr) {
		coded := statusErr.StatusError()
		return fmt.Sprintf("HTTP %d: %s", coded.StatusCode(), coded.Error())
	}
	return err.Error()
}

// newVersionCmd creates and returns a new version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hecate CLI",
		Run: func(cmd *cobra.Command, args []string) {
			configPath, err := GetDefaultConfigPath()
			if err != nil {
				configPath = "unknown"
			}
			cmd.Printf("hecate CLI %s\n", getCLIVersion())
			cmd.Printf("Config file: %s\n", configPath)
		},
	}
}

// getCLIVersion returns the current CLI version
func getCLIVersion() string {
	return fmt.Sprintf("v%s", cliVersion)
}

const cliVersion = "0.1.0"
