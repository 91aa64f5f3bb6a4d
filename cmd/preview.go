package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the icon on the Linux framebuffer until F4 or Ctrl-C",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, closeLog, err := newApp()
		if err != nil {
			return err
		}
		defer closeLog()

		// Best-effort: the console is in graphics mode while previewing, so
		// panics would otherwise be invisible.
		if path := a.Config.Preview.StdioLog; path != "" {
			if err := redirectStdIO(path); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "stdio log redirect error:", err)
			}
		}

		ctx, cancel := signalContext()
		defer cancel()
		return a.Preview(ctx)
	},
}

func init() {
	previewCmd.Flags().String("device", "/dev/fb0", "framebuffer device")
	previewCmd.Flags().String("stdio-log", "", "redirect stdout+stderr (including panics) to this file")
	bindFlags(previewCmd.Flags(), map[string]string{
		"preview.device":    "device",
		"preview.stdio_log": "stdio-log",
	})

	rootCmd.AddCommand(previewCmd)
}
