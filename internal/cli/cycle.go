package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ssaunders/site/internal/applier"
	"github.com/ssaunders/site/internal/config"
	"github.com/ssaunders/site/internal/cycler"
	"github.com/ssaunders/site/internal/logging"
)

var cycleCount int

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Print the order cat pictures are shown in",
	Long: `Print the image paths the homepage would show for the next --count
shuffles, starting from a fresh cycle.

Example:
  site cycle
  site cycle --count 8`,
	Args: cobra.NoArgs,
	RunE: runCycle,
}

func init() {
	cycleCmd.Flags().IntVarP(&cycleCount, "count", "n", 4, "Number of shuffles to print")
	rootCmd.AddCommand(cycleCmd)
}

func runCycle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return printCycle(cmd.OutOrStdout(), cfg, cycleCount)
}

// printCycle writes the first n image paths of a fresh cycle, one per line.
func printCycle(w io.Writer, cfg *config.Config, n int) error {
	if n < 0 {
		return fmt.Errorf("count must not be negative: %d", n)
	}

	c := cycler.New(cfg.Cats.Images, cycler.WithLogger(logging.Default()))
	a := applier.New(c, applier.WithPrefix(cfg.Cats.Prefix))

	for i := 0; i < n; i++ {
		name, err := c.MustNext()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, a.Path(name))
	}
	return nil
}
