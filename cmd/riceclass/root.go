// Package riceclass - CLI entry point for the rice grain classifier.
package riceclass

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "RICECLASS"

// DefaultModelPath mirrors the conversion pipeline's output location.
const DefaultModelPath = "../models/tflite/rice_classifier.tflite"

var rootCmd = &cobra.Command{
	Use:   "riceclass [flags] image",
	Short: "Rice grain variety classification",
	Long: "Classifies an image of a rice grain into one of five varieties\n" +
		"(Karacadag, Ipsala, Arborio, Basmati, Jasmine) using a pre-trained\n" +
		"quantized model.",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		viper.SetEnvPrefix(envPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(`-`, `_`))
		viper.AutomaticEnv()

		return viper.BindPFlags(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(viper.GetBool("verbose"))
		if err != nil {
			return errors.Wrap(err, "failed to build logger")
		}
		defer logger.Sync()

		return run(cmd.OutOrStdout(), logger, viper.GetString("model"), args[0])
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("model", "m", DefaultModelPath, "path to the serialized model artifact")
	flags.BoolP("verbose", "v", false, "enable debug logging on stderr")

	viper.BindPFlag("model", flags.Lookup("model"))
	viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

// newLogger returns a nop logger unless verbose diagnostics were requested,
// keeping stdout reserved for the report and stderr for terminal errors.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Execute runs the root command and maps failures to the process exit code.
// Pre-flight missing-file failures have already been reported on stdout;
// everything else goes to stderr. Both exit 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errPreflight) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}
