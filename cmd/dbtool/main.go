// dbtool manages the logistics database: schema migration and fake data.
//
// Usage:
//
//	dbtool migrate
//	dbtool seed create [--vehicles=2] [--jobs=10] [--seed=0]
//	dbtool seed destroy
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootFlags struct {
	envFile string
}

var rootCmd = &cobra.Command{
	Use:          "dbtool",
	Short:        "Manage the logistics database",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.envFile, "env-file", ".env", "Optional file with environment variables")

	seedCmd.AddCommand(seedCreateCmd)
	seedCmd.AddCommand(seedDestroyCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
