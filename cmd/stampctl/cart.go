package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"stampshop/internal/cart"
	"stampshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func cartCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local cart",
	}

	cmd.AddCommand(cartAddCmd(opts))
	cmd.AddCommand(cartListCmd(opts))
	cmd.AddCommand(cartRemoveCmd(opts))
	cmd.AddCommand(cartClearCmd(opts))

	return cmd
}

func cartAddCmd(opts *cliOptions) *cobra.Command {
	var (
		cfg          entity.StampConfiguration
		shape, color string
		licenseFile  string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Price a stamp design and add it to the cart",
		Example: `  stampctl cart add --shape round --color blue --company "Acme Trading" --logo
  stampctl cart add --shape oval --company "Acme" --license-no 12345 --show-license --trade-license ./license.pdf`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Shape = entity.StampShape(shape)
			cfg.Color = entity.InkColor(color)
			if !cfg.Shape.IsValid() {
				return errors.Errorf("unknown shape %q", shape)
			}
			if !cfg.Color.IsValid() {
				return errors.Errorf("unknown color %q", color)
			}
			if cfg.CompanyName == "" {
				return errors.New("--company is required")
			}

			if licenseFile != "" {
				url, err := opts.client().UploadDocument(cmd.Context(), licenseFile)
				if err != nil {
					return errors.Wrap(err, "failed to upload trade license")
				}
				cfg.TradeLicenseURL = url
			}

			store, err := opts.openCart(cmd)
			if err != nil {
				return err
			}

			item, err := store.Add(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s AED) as %s\n", cfg.DisplayName(), item.Price.StringFixed(2), item.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Cart total: %s AED\n", store.Total().StringFixed(2))

			return nil
		},
	}

	cmd.Flags().StringVar(&shape, "shape", string(entity.ShapeRound), "round, square, rectangle or oval")
	cmd.Flags().StringVar(&color, "color", string(entity.ColorBlue), "black, blue, red or green")
	cmd.Flags().StringVar(&cfg.CompanyName, "company", "", "company name in English")
	cmd.Flags().StringVar(&cfg.CompanyNameAr, "company-ar", "", "company name in Arabic")
	cmd.Flags().StringVar(&cfg.LicenseNumber, "license-no", "", "trade license number")
	cmd.Flags().BoolVar(&cfg.ShowLicenseNumber, "show-license", false, "print the license number on the stamp")
	cmd.Flags().StringVar(&cfg.Emirate, "emirate", "", "issuing emirate")
	cmd.Flags().BoolVar(&cfg.HasLogo, "logo", false, "add a custom logo")
	cmd.Flags().StringVar(&licenseFile, "trade-license", "", "trade license document to upload (pdf, png or jpeg)")

	return cmd
}

func cartListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.openCart(cmd)
			if err != nil {
				return err
			}

			printCart(cmd.OutOrStdout(), store)

			return nil
		},
	}
}

func cartRemoveCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove one item from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return errors.Errorf("invalid item id %q", args[0])
			}

			store, err := opts.openCart(cmd)
			if err != nil {
				return err
			}

			if err := store.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)

			return nil
		},
	}
}

func cartClearCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.openCart(cmd)
			if err != nil {
				return err
			}

			return store.Clear(cmd.Context())
		},
	}
}

func printCart(w io.Writer, store *cart.Store) {
	items := store.Items()
	if len(items) == 0 {
		fmt.Fprintln(w, "Cart is empty")

		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTAMP\tCOLOR\tCOMPANY\tPRICE")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			item.ID,
			item.Configuration.DisplayName(),
			item.Configuration.Color,
			item.Configuration.CompanyName,
			item.Price.StringFixed(2),
		)
	}
	fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\n", store.Total().StringFixed(2))
	_ = tw.Flush()
}
