package initproject

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type CLIConfig struct {
	Root        string
	Placeholder string
	DryRun      bool
	NoAnimation bool
	Completion  string
}

var cfg = &CLIConfig{}

var rootCmd = &cobra.Command{
	Use:   "initproject <new_package_name>",
	Short: "Rename the template's placeholder package.",
	Long: `Rename the template package from its placeholder to a new name.

Renames src/<placeholder> and tests/<placeholder>, updates pyproject.toml,
and rewrites imports in the renamed packages.

Example: initproject my_new_project`,
	Args: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Completion != "" {
			return handleCompletion(cmd)
		}

		appCfg := &Config{
			Root:        cfg.Root,
			Placeholder: cfg.Placeholder,
			NewName:     strings.TrimSpace(args[0]),
			DryRun:      cfg.DryRun,
		}

		app, err := NewApp(appCfg)
		if err != nil {
			return err
		}

		ui := NewTUI(app, cfg.NoAnimation)
		return ui.Run()
	},
}

func handleCompletion(cmd *cobra.Command) error {
	switch cfg.Completion {
	case "bash":
		return cmd.Root().GenBashCompletion(os.Stdout)
	case "zsh":
		return cmd.Root().GenZshCompletion(os.Stdout)
	case "fish":
		return cmd.Root().GenFishCompletion(os.Stdout, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
	default:
		return fmt.Errorf("unsupported shell for completion: %s", cfg.Completion)
	}
}

func init() {
	rootCmd.Flags().StringVar(&cfg.Completion, "completion", "", "Generate completion script")
	rootCmd.Flags().StringVarP(&cfg.Root, "root", "C", "", "Template root to operate on (default: current directory)")
	rootCmd.Flags().StringVar(&cfg.Placeholder, "placeholder", DefaultPlaceholder, "Placeholder package name to replace")
	rootCmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Show what would change without touching files")
	rootCmd.Flags().BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable spinner")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func Execute() error {
	return rootCmd.Execute()
}
