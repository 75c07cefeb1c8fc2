package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [product_id]",
	Short: "Fetch one product and print the upstream payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	if err := requireUpstream(); err != nil {
		return err
	}

	svc := newService()
	body, err := svc.FetchOne(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("fetch product: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(body))
	return nil
}
