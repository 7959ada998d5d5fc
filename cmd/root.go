package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/marcus/overlay/internal/demo"
	"github.com/marcus/overlay/pkg/overlay"
)

var version string

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "overlay-demo",
	Short: "Showcase for the overlay modal dialog library",
	Long: `overlay-demo runs a small TUI that exercises the overlay library:
animated modal dialogs with cancel handling, auto-close between dialogs,
custom transition profiles, spring motion, and mouse/backdrop routing.

Press ? inside the demo for a tour.`,
	RunE: runDemo,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int("fps", 60, "Animation frame rate")
	rootCmd.Flags().Bool("reduced-motion", false, "Shorten all transitions")
	rootCmd.Flags().Bool("no-mouse", false, "Disable mouse support")
	rootCmd.Flags().SetNormalizeFunc(normalizeFlag)
}

// normalizeFlag accepts snake_case spellings of the long flags.
func normalizeFlag(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("overlay-demo must run in a terminal")
	}

	fps, _ := cmd.Flags().GetInt("fps")
	reduced, _ := cmd.Flags().GetBool("reduced-motion")
	noMouse, _ := cmd.Flags().GetBool("no-mouse")

	app := demo.New()
	app.ReducedMotion = reduced
	prov := overlay.New(app, overlay.WithFPS(fps))
	app.Setup(prov)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(prov, opts...).Run(); err != nil {
		slog.Error("demo exited", "error", err)
		return err
	}
	return nil
}
