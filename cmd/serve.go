package cmd

import (
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Render the icon in memory and serve it over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeLog, err := newApp()
		if err != nil {
			return err
		}
		defer closeLog()
		a.Out = cmd.OutOrStdout()

		ctx, cancel := signalContext()
		defer cancel()
		return a.Serve(ctx)
	},
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().Bool("dev", false, "allow cross-origin requests for local development")
	serveCmd.Flags().Bool("qr", false, "print the server URL as a QR code")
	bindFlags(serveCmd.Flags(), map[string]string{
		"serve.listen": "listen",
		"serve.dev":    "dev",
		"serve.qr":     "qr",
	})

	rootCmd.AddCommand(serveCmd)
}
