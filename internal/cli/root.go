package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// Command-line flags.
var (
	flagConfig     string
	flagInputFile  string
	flagSearch     string
	flagReplace    string
	flagOutputFile string
	flagYes        bool
)

// rootCmd is the single command of the renamer; all behaviour is
// selected via flags, mirroring the tool's four-step flow
// (list, plan, preview, apply).
var rootCmd = &cobra.Command{
	Use:   "harenamer",
	Short: "Bulk-rename Home Assistant entity IDs",
	Long: `harenamer lists Home Assistant entities, previews a regex-based rename
plan as a table, and applies confirmed renames through the hub's
WebSocket API.

Run with --search alone to preview matching entities, add --replace to
compute renames, or feed a CSV of renames back in with --input-file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := validateFlags(); err != nil {
			return err
		}

		// With nothing to do, show usage instead of erroring.
		if flagSearch == "" && flagInputFile == "" {
			return cmd.Help()
		}

		r := &runner{
			confirm: newStdinConfirmer(),
			stdout:  cmd.OutOrStdout(),
		}
		return r.run(cmd.Context(), Options{
			ConfigPath: flagConfig,
			InputFile:  flagInputFile,
			Search:     flagSearch,
			Replace:    flagReplace,
			HasReplace: flagReplace != "",
			OutputFile: flagOutputFile,
			AssumeYes:  flagYes,
		})
	},
}

// validateFlags rejects flag combinations that would make the run
// ambiguous. No action is taken when validation fails. An empty
// --replace counts as absent, so replacing matches with nothing is
// not expressible; use --input-file for that.
func validateFlags() error {
	if flagSearch != "" && flagInputFile != "" {
		return errors.New("--search and --input-file cannot be used together")
	}
	if flagReplace != "" && flagSearch == "" {
		return errors.New("--replace requires --search")
	}
	return nil
}

// defaultConfigPath resolves the config file location: the
// HARENAMER_CONFIG environment variable when set, otherwise the
// conventional configs/config.yaml.
func defaultConfigPath() string {
	if v := os.Getenv("HARENAMER_CONFIG"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

// SetVersion records the build version for --version output and log
// fields.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version

	rootCmd.Flags().StringVar(&flagInputFile, "input-file", "",
		"CSV file with Friendly Name, Current Entity ID, and New Entity ID columns")
	rootCmd.Flags().StringVar(&flagSearch, "search", "",
		"Regular expression matched against entity IDs")
	rootCmd.Flags().StringVar(&flagReplace, "replace", "",
		"Replacement applied to --search matches to compute new entity IDs")
	rootCmd.Flags().StringVar(&flagOutputFile, "output-file", "",
		"CSV file to export the plan to (overwritten if present)")
	rootCmd.Flags().StringVar(&flagConfig, "config", defaultConfigPath(),
		"Path to the YAML configuration file")
	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false,
		"Skip the confirmation prompt")
}
