// Package commands implements the CLI commands for prodclean.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "prodclean",
	Short: "Deterministic cleaner for Amazon-style product metadata",
	Long: `Prodclean joins raw product metadata with attribute labels, flattens
the text-bearing fields into paragraphs, and applies a deterministic
cleaning pass that strips markup, styling noise, and malformed text.

Examples:
  # Clean a metadata file against a label file
  prodclean clean --metadata metadata.jsonl --labels labels.jsonl -o clean.jsonl

  # Also write a statistics file with the output document count
  prodclean clean --metadata metadata.jsonl --labels labels.jsonl \
      -o clean.jsonl --stats clean-stats.json`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.prodclean.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only show errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".prodclean")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("PRODCLEAN")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
