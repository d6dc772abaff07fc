package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/npillmayer/racetrack/boundary"
	"github.com/npillmayer/racetrack/catalog"
	"github.com/npillmayer/racetrack/internal/config"
	"github.com/npillmayer/racetrack/internal/log"
)

const envPrefix = "TRACKS"

var cfgFile string

// newRootCmd creates the command tree. Each call returns a fresh tree, which
// keeps flag state of tests apart.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tracks",
		Short: "Edit and inspect race track catalogs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig(cmd.Root())
			if err := log.Init(config.LogLevel); err != nil {
				return fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.tracks.yml)")
	rootCmd.PersistentFlags().StringVarP(&config.File, "file", "f",
		"racetracks"+catalog.Extension,
		"track catalog file")
	rootCmd.PersistentFlags().Float64Var(&config.HalfWidth, "half-width",
		boundary.DefaultHalfWidth,
		"distance of the track edges from the center curve")
	rootCmd.PersistentFlags().IntVar(&config.SamplesPerSegment, "samples-per-segment",
		boundary.DefaultSamplesPerSegment,
		"boundary samples per curve segment")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "warn",
		"log level (debug, info, warn, error)")

	// add commands here
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newNextCmd())
	rootCmd.AddCommand(newPrevCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newAddPointCmd())
	rootCmd.AddCommand(newDeletePointCmd())
	rootCmd.AddCommand(newMeshCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newWatchCmd())
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig(rootCmd *cobra.Command) {
	v := viper.New()
	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".tracks" (without extension).
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".tracks")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}

	bindFlags(rootCmd, v)
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, v)
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	bind := func(flags *pflag.FlagSet) {
		flags.VisitAll(func(f *pflag.Flag) {
			// Environment variables can't have dashes in them, so bind them to their
			// equivalent keys with underscores, e.g. --half-width to TRACKS_HALF_WIDTH
			if strings.Contains(f.Name, "-") {
				envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
				if err := v.BindEnv(f.Name,
					fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
					fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
				}
			}
			// Apply the viper config value to the flag when the flag is not set and viper
			// has a value
			if !f.Changed && v.IsSet(f.Name) {
				val := v.Get(f.Name)
				if err := flags.Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
					fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v", f.Name, err)
				}
			}
		})
	}
	bind(cmd.PersistentFlags())
	bind(cmd.Flags())
}
