package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ami93120/mosque-calendar/internal/prayer"
)

var (
	flagConvertStart  string
	flagConvertOutput string
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <table-file>",
		Short: "Convert a delimited timetable into an override file",
		Long:  "Read a tab/comma/semicolon-delimited timetable (six columns:\nFajr, Sunrise, Dhuhr, Asr, Maghrib, Isha; one row per day starting\nat --start) and emit the date-keyed JSON override file consumed at\nrender time.",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	cmd.Flags().StringVar(&flagConvertStart, "start", "", "Date of the first data row (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&flagConvertOutput, "output", "", "Output file (default: stdout)")
	cmd.MarkFlagRequired("start")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	start, err := time.Parse("2006-01-02", flagConvertStart)
	if err != nil {
		return fmt.Errorf("invalid --start date %q: %w", flagConvertStart, err)
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("cannot open table file: %w", err)
	}
	defer in.Close()

	overrides, skipped, err := prayer.ParseOverrideTable(in, start)
	if err != nil {
		return err
	}
	for _, s := range skipped {
		fmt.Fprintf(os.Stderr, "warning: %s\n", s)
	}

	out := os.Stdout
	if flagConvertOutput != "" {
		out, err = os.Create(flagConvertOutput)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer out.Close()
	}

	if err := overrides.WriteJSON(out); err != nil {
		return err
	}

	if flagConvertOutput != "" {
		fmt.Fprintf(os.Stderr, "%d days written to %s\n", len(overrides), flagConvertOutput)
	}
	return nil
}
