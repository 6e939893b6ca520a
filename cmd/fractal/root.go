package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/fractal"
)

var (
	cfgFile string
	verbose int
)

var rootCmd = &cobra.Command{
	Use:   "fractal",
	Short: "Escape-time fractal renderer",
	Long: `fractal computes escape-time fractals (Mandelbrot, Julia, Burning Ship)
in parallel over shared row buffers and writes the smoothed escape
counts out as PNG or PGM images.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose == 0 {
			return
		}
		level := slog.LevelInfo
		if verbose > 1 {
			level = slog.LevelDebug
		}
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command. main reports any error through the
// process exit code; cobra already printed it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches . and $HOME/.config/fractal)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log progress to stderr (-v info, -vv debug)")
}

// initConfig wires the viper lookup chain: explicit file, then search
// paths, then FRACTAL_* environment variables, with flag bindings on
// top of both.
func initConfig() {
	setConfigDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fractal")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/fractal")
	}

	viper.SetEnvPrefix("FRACTAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Missing config files are fine; defaults and flags cover everything.
	_ = viper.ReadInConfig()
}
