package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [search]",
	Short: "Fetch and print one page of the product list",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().Int("page", 1, "Page number, 1-based")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if err := requireUpstream(); err != nil {
		return err
	}

	ctrl, _, renderer := newDashboardStack(context.Background())
	page, _ := cmd.Flags().GetInt("page")

	if len(args) > 0 {
		// goes through the debounce path, same as typing in the search box
		ctrl.OnSearchInput(args[0])
		if err := renderer.wait(); err != nil {
			return err
		}
		if page <= 1 {
			return nil
		}
		ctrl.SetPage(page)
		return renderer.wait()
	}

	if page > 1 {
		ctrl.SetPage(page)
	} else {
		ctrl.Refresh()
	}
	return renderer.wait()
}
