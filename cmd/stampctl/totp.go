package main

import (
	"fmt"
	"os"

	"stampshop/config"
	"stampshop/internal/infra/auth"
	"stampshop/internal/infra/qrcode"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func totpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totp",
		Short: "Admin authenticator helpers",
	}

	cmd.AddCommand(totpEnrollCmd())

	return cmd
}

func totpEnrollCmd() *cobra.Command {
	var issuer, account, out string
	var size int

	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Generate a new admin TOTP secret and its QR code",
		Long: `Generate a new admin TOTP secret.

Set the printed secret as admin.totpSecret (ADMIN_TOTPSECRET) and scan the
QR code with an authenticator app. Every storefront instance must share it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enrollment, err := auth.GenerateEnrollment(issuer, account)
			if err != nil {
				return err
			}

			qr := qrcode.NewQRCodeService(&config.Config{
				QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: "M"},
			})
			png, err := qr.GeneratePNG(enrollment.URL)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, png, 0o600); err != nil {
				return errors.Wrapf(err, "failed to write %s", out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Secret: %s\n", enrollment.Secret)
			fmt.Fprintf(w, "URI:    %s\n", enrollment.URL)
			fmt.Fprintf(w, "QR:     %s\n", out)

			return nil
		},
	}

	cmd.Flags().StringVar(&issuer, "issuer", "Supreme Stamps", "issuer shown in the authenticator app")
	cmd.Flags().StringVar(&account, "account", "admin", "account name shown in the authenticator app")
	cmd.Flags().StringVarP(&out, "out", "o", "admin-totp.png", "where to write the QR code PNG")
	cmd.Flags().IntVar(&size, "size", 256, "QR code size in pixels")

	return cmd
}
