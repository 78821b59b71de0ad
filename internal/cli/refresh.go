package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh holiday data from the official sources",
		Long:  "Fetch public holidays and school vacations, merge them into the\nlocal configuration, and persist the result to the cache.\nWithin the cache freshness window no network call is made.",
		RunE:  runRefresh,
	}
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx, err := newRenderContext()
	if err != nil {
		return err
	}

	if ctx.src.Refresh() {
		fmt.Printf("Holiday data up to date: %d public holidays, %d school vacation periods.\n",
			len(ctx.cal.PublicHolidays), len(ctx.cal.SchoolHolidays))
		return nil
	}

	fmt.Println("No data fetched (offline?). Local configuration remains in force.")
	return nil
}
