package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	LogLevelKey  = "log.level"
	LogFormatKey = "log.format"

	OutputKey = "output"
	FormatKey = "format"
	PathKey   = "path"
)

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("execution failed")
		os.Exit(1)
	}
}

// NewRootCommand builds the issuerid command tree with its own viper
// instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var userConfig string

	rootCmd := &cobra.Command{
		Use:   "issuerid",
		Short: "Extract the issuer identifier from document verification fragments",
		Long: `issuerid reads the verification fragments produced by a document
verification pipeline, selects the valid issuer identity fragment and prints
the issuer identifier(s) it proves (DNS name, DNS-DID location or DID).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, configErr := initConfig(v, userConfig)
			initLogging(v, cmd.ErrOrStderr())
			if configErr != nil { // handle error after logging is initialized
				return configErr
			}
			if configPath != "" {
				log.Debug().Msgf("using config file: %s", configPath)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&userConfig, "config", "",
		"Configuration file for default values (default is ./.issuerid.yaml or $HOME/.issuerid.yaml)")

	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	_ = v.BindPFlag(LogLevelKey, flags.Lookup("log-level"))

	flags.String("log-format", "console", "Log format (console, json)")
	_ = v.BindPFlag(LogFormatKey, flags.Lookup("log-format"))

	flags.StringP("output", "o", "table", "Output format (table, json, yaml)")
	_ = v.BindPFlag(OutputKey, flags.Lookup("output"))

	flags.StringP("format", "f", "auto", "Input format (auto, json, yaml)")
	_ = v.BindPFlag(FormatKey, flags.Lookup("format"))

	flags.StringP("path", "p", "", "jq-style path to the fragment list inside the input document, e.g. .result.fragments")
	_ = v.BindPFlag(PathKey, flags.Lookup("path"))

	v.SetEnvPrefix("ISSUERID")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(newResolveCommand(v), newSelectCommand(v))
	return rootCmd
}

func initConfig(v *viper.Viper, userConfig string) (string, error) {
	if userConfig != "" {
		v.SetConfigFile(userConfig)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".issuerid")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundError) {
			return "", err
		}
		return "", nil
	}
	return v.ConfigFileUsed(), nil
}
