package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logFile    string
	bcryptCost int
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "HRIS admin panel in the terminal",
	Long: `Terminal admin panel for the HRIS user directory.

Commands:
  add-user  - open the add-user form`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (default: logging disabled while the form is open)")
	rootCmd.PersistentFlags().IntVar(&bcryptCost, "bcrypt-cost", 0, "bcrypt cost for new passwords (default from BCRYPT_COST)")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
