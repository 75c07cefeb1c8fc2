package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prodash/prodash/dashboard"
	"github.com/prodash/prodash/product"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product through the form",
	RunE:  runCreate,
}

var updateCmd = &cobra.Command{
	Use:   "update [product_id]",
	Short: "Edit an existing product through the form",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

func init() {
	for _, c := range []*cobra.Command{createCmd, updateCmd} {
		c.Flags().String("title", "", "Product title")
		c.Flags().String("price", "", "Whole-unit price; thousands separators accepted")
		c.Flags().String("category", "", "Category label")
		c.Flags().String("description", "", "Free-text description")
		c.Flags().String("image", "", "Image URL")
	}
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := requireUpstream(); err != nil {
		return err
	}

	ctrl, form, renderer := newDashboardStack(context.Background())
	ctrl.OpenCreate()
	applyFormFlags(cmd, form)

	return confirmAndWait(ctrl, form, renderer)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if err := requireUpstream(); err != nil {
		return err
	}

	// load the editing target so untouched fields keep their values
	svc := newService()
	body, err := svc.FetchOne(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("fetch product: %w", err)
	}
	var target product.Product
	if err := json.Unmarshal(body, &target); err != nil {
		return fmt.Errorf("decode product: %w", err)
	}

	ctrl, form, renderer := newDashboardStack(context.Background())
	ctrl.OpenEdit(target)
	applyFormFlags(cmd, form)

	return confirmAndWait(ctrl, form, renderer)
}

func applyFormFlags(cmd *cobra.Command, form *dashboard.Form) {
	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		form.SetTitle(v)
	}
	if cmd.Flags().Changed("price") {
		v, _ := cmd.Flags().GetString("price")
		form.SetPrice(v)
	}
	if cmd.Flags().Changed("category") {
		v, _ := cmd.Flags().GetString("category")
		form.SetCategory(v)
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		form.SetDescription(v)
	}
	if cmd.Flags().Changed("image") {
		v, _ := cmd.Flags().GetString("image")
		form.SetImage(v)
	}
}

func confirmAndWait(ctrl *dashboard.ListController, form *dashboard.Form, renderer *consoleRenderer) error {
	if err := ctrl.ConfirmForm(); err != nil {
		if errors.Is(err, dashboard.ErrInvalid) {
			for _, fe := range form.FieldErrors() {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", fe.Field, fe.Message)
			}
		}
		return err
	}
	// the mutation triggered a refresh; show the resulting list
	return renderer.wait()
}
