package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ami93120/mosque-calendar/internal/calendar"
)

func newYearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "year [YYYY]",
		Short: "Render all twelve months of a year",
		Long:  "Render the full-year calendar, one monthly page per month.\nDefaults to the current year.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runYear,
	}
}

func runYear(cmd *cobra.Command, args []string) error {
	ctx, err := newRenderContext()
	if err != nil {
		return err
	}

	year, err := parseYearArg(args, time.Now().In(ctx.loc).Year())
	if err != nil {
		return err
	}

	renderThenRefresh(ctx, func() {
		printClientHeader(ctx.client)
		for m := time.January; m <= time.December; m++ {
			view := calendar.BuildMonth(year, m, ctx.conv, ctx.calc,
				ctx.cls, ctx.cal, ctx.ov, ctx.loc)
			printMonth(view)
		}
		printClientFooter(ctx.client)
	})
	return nil
}
