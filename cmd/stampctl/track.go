package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func trackCmd(opts *cliOptions) *cobra.Command {
	var id, phone string

	cmd := &cobra.Command{
		Use:     "track",
		Short:   "Look up an order by its SS- id and phone number",
		Example: "  stampctl track --id SS-7K2Q9X --phone 0501234567",
		RunE: func(cmd *cobra.Command, _ []string) error {
			order, err := opts.client().TrackOrder(cmd.Context(), id, phone)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Order:    %s\n", order.FriendlyID)
			fmt.Fprintf(w, "Status:   %s\n", order.Status)
			fmt.Fprintf(w, "          %s\n", order.Status.CustomerMessage())
			fmt.Fprintf(w, "Delivery: %s\n", order.DeliveryMethod)
			fmt.Fprintf(w, "Placed:   %s\n", order.CreatedAt.Local().Format("2006-01-02 15:04"))

			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "order id, e.g. SS-7K2Q9X")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number used at checkout")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}
