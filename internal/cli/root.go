package cli

import (
	"github.com/spf13/cobra"

	"github.com/ssaunders/site/internal/config"
	"github.com/ssaunders/site/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "site",
	Short: "Personal portfolio website with a shuffling cat picture",
	Long: `Site serves a small portfolio website. The homepage shows one of a
fixed set of cat pictures; each click on "Shuffle cats" moves to the next
picture in order, wrapping around at the end.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("site version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "Path to the site config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
}

// Execute runs the root command.
func Execute() error {
	defer logging.Default().Sync()
	return rootCmd.Execute()
}

// loadConfig reads the config file named by --config and applies the log
// level to the default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigFile(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel()
	if verbose {
		level = logging.LevelDebug
	}
	logging.SetLevel(level)

	return cfg, nil
}
