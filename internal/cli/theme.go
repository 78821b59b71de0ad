package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ami93120/mosque-calendar/internal/config"
)

var flagThemeOutput string

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme <pattern.svg>",
		Short: "Recolor the background pattern with the client brand color",
		Long:  "Read the background pattern SVG and substitute the stock gold with\nthe brand color from the client document given via --client, so a\ndeployment ships its own colorway of the printed asset.",
		Args:  cobra.ExactArgs(1),
		RunE:  runTheme,
	}
	cmd.Flags().StringVar(&flagThemeOutput, "output", "", "Output file (default: stdout)")
	return cmd
}

func runTheme(cmd *cobra.Command, args []string) error {
	if loadedClient == nil {
		return fmt.Errorf("theme requires --client")
	}
	brand := loadedClient.Theme.ColorBrand
	if brand == "" {
		return fmt.Errorf("client %q defines no brand color", FlagClient)
	}

	svg, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read pattern file: %w", err)
	}
	recolored := config.RecolorPattern(svg, brand)

	if flagThemeOutput == "" {
		_, err := os.Stdout.Write(recolored)
		return err
	}
	if err := os.WriteFile(flagThemeOutput, recolored, 0o644); err != nil {
		return fmt.Errorf("cannot write recolored pattern: %w", err)
	}
	fmt.Fprintf(os.Stderr, "pattern written to %s\n", flagThemeOutput)
	return nil
}
