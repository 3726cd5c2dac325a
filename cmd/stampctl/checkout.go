package main

import (
	"fmt"
	"strings"

	"stampshop/internal/domain/entity"
	"stampshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func checkoutCmd(opts *cliOptions) *cobra.Command {
	var (
		input    usecase.SubmitOrderInput
		delivery string
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order and open a payment session",
		Long: `Submit the cart as an order and open a payment session.

The cart is cleared once the payment session exists. Open the printed URL
to pay; the order is confirmed by email after payment.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.openCart(cmd)
			if err != nil {
				return err
			}
			if store.Len() == 0 {
				return errors.New("cart is empty")
			}

			input.DeliveryMethod = strings.ToUpper(delivery)
			input.Items = orderItems(store.Items())
			input.TotalPrice = store.Total()

			client := opts.client()
			order, err := client.SubmitOrder(cmd.Context(), &input)
			if err != nil {
				return errors.Wrap(err, "failed to submit order")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s created\n", order.OrderID)

			session, err := client.CreateCheckout(cmd.Context(), order.OrderID)
			if err != nil {
				return errors.Wrap(err, "failed to open payment session")
			}

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Pay at: %s\n", session.URL)

			return nil
		},
	}

	cmd.Flags().StringVar(&input.CustomerName, "name", "", "customer full name")
	cmd.Flags().StringVar(&input.CustomerEmail, "email", "", "email for the confirmation and receipt")
	cmd.Flags().StringVar(&input.CustomerPhone, "phone", "", "phone number, used to track the order")
	cmd.Flags().StringVar(&delivery, "delivery", string(entity.DeliveryMethodPickup), "DELIVERY or PICKUP")
	cmd.Flags().StringVar(&input.Address, "address", "", "delivery address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func orderItems(items []entity.CartItem) []usecase.OrderItemInput {
	out := make([]usecase.OrderItemInput, 0, len(items))
	for _, item := range items {
		cfg := item.Configuration
		out = append(out, usecase.OrderItemInput{
			Shape:             string(cfg.Shape),
			Color:             string(cfg.Color),
			CompanyName:       cfg.CompanyName,
			CompanyNameAr:     cfg.CompanyNameAr,
			LicenseNumber:     cfg.LicenseNumber,
			ShowLicenseNumber: cfg.ShowLicenseNumber,
			Emirate:           cfg.Emirate,
			HasLogo:           cfg.HasLogo,
			TradeLicenseURL:   cfg.TradeLicenseURL,
			Price:             item.Price,
		})
	}

	return out
}

func uploadCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a trade license document and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := opts.client().UploadDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)

			return nil
		},
	}
}
