package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/infercast/infercast/pkg/errors"
	"github.com/infercast/infercast/pkg/logging"
)

var (
	configFile string
	configErr  error
	jsonOutput bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "infercast",
	Short: "Transformer resource and cost estimator",
	Long: `Infercast estimates the resource consumption of transformer language
models: parameter counts, memory footprint, throughput, inference latency,
and cloud cost, with GPU recommendations from a built-in hardware catalog.

All estimates are closed-form analytical approximations intended for
capacity planning, not benchmarks.`,
	PersistentPreRunE: setupLogging,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.infercast.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of tables")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("Failed to bind verbose flag: %v", err))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// .env files carry optional credentials such as HF_TOKEN.
	_ = godotenv.Load()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".infercast")
		}
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// A missing default config file is fine; a file the user named with
	// --config must load.
	if err := viper.ReadInConfig(); err != nil && configFile != "" {
		configErr = errors.NewConfigError("cli", "reading "+configFile, err)
	}
}

// setupLogging configures the global logger from flags and environment. It
// also surfaces any config-load failure recorded during initialization.
func setupLogging(_ *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}
	if viper.GetBool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logging.SetDefault(logging.Default().Level(zerolog.DebugLevel))
	}
	return nil
}
