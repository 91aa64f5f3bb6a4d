package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rook-computer/glassicon/internal/app"
	"github.com/rook-computer/glassicon/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "glassicon",
	Short: "Generate the glassmorphism app icon",
	Long: "glassicon renders a gradient icon with a frosted glass panel, code brackets and sparkles,\n" +
		"and writes icon.png plus downscaled variants into the output directory.",
	SilenceUsage: true,
	RunE:         runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .glassicon.toml)")
	rootCmd.PersistentFlags().Bool("debug", false, "log render stages to stderr")
	rootCmd.PersistentFlags().String("log-file", "", "append logs to this file")
	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"debug":    "debug",
		"log_file": "log-file",
	})

	rootCmd.Flags().StringP("out", "o", ".", "output directory (must exist)")
	rootCmd.Flags().IntSlice("variants", []int{128, 64}, "additional square sizes to write")
	rootCmd.Flags().Bool("antialias", false, "keep partial edge coverage on shapes")
	rootCmd.Flags().Bool("watch", false, "regenerate whenever the config file changes")
	bindFlags(rootCmd.Flags(), map[string]string{
		"out_dir":   "out",
		"variants":  "variants",
		"antialias": "antialias",
		"watch":     "watch",
	})
}

// bindFlags binds viper keys to the named flags of fs.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = viper.BindPFlag(key, fs.Lookup(name))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".glassicon")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.BindEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// newApp loads configuration and builds an App with its logger. The
// returned close function releases the log file, if any.
func newApp() (*app.App, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, closeLog, err := app.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}
	a := app.New(cfg)
	a.Logger = logger
	return a, closeLog, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	a, closeLog, err := newApp()
	if err != nil {
		return err
	}
	defer closeLog()
	a.Out = cmd.OutOrStdout()

	ctx, cancel := signalContext()
	defer cancel()

	if a.Config.Watch {
		return a.Watch(ctx, viper.ConfigFileUsed(), reloadConfig)
	}
	_, err = a.Generate(ctx)
	return err
}

// reloadConfig re-reads the config file before a watch regeneration.
func reloadConfig() (config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}
	return config.Load()
}
