package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"stampshop/internal/cart"

	"github.com/spf13/cobra"
)

var Version = "dev"

type cliOptions struct {
	apiURL   string
	cartPath string
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "stampctl",
		Short:         "Supreme Stamps storefront and back-office tool",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", envOr("STAMPSHOP_API", "http://localhost:8080"), "storefront API base URL")
	rootCmd.PersistentFlags().StringVar(&opts.cartPath, "cart", os.Getenv("STAMPSHOP_CART"), "cart file (defaults to the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(cartCmd(opts))
	rootCmd.AddCommand(uploadCmd(opts))
	rootCmd.AddCommand(checkoutCmd(opts))
	rootCmd.AddCommand(trackCmd(opts))
	rootCmd.AddCommand(totpCmd())
	rootCmd.AddCommand(migrateCmd())

	return rootCmd
}

func (o *cliOptions) logger() *slog.Logger {
	if !o.verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func (o *cliOptions) openCart(cmd *cobra.Command) (*cart.Store, error) {
	path := o.cartPath
	if path == "" {
		var err error
		if path, err = cart.DefaultPath(); err != nil {
			return nil, err
		}
	}

	return cart.Open(cmd.Context(), cart.NewFilePersister(path), o.logger()), nil
}

func (o *cliOptions) client() *storefrontClient {
	return newStorefrontClient(o.apiURL)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
