package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cellgame",
	Short: "cellgame evolves a network of lineage-tracking cells generation by generation",
	Long: `cellgame runs small cellular automata whose cells keep their full
ancestor/descendant lineage. Each tick derives a complete new generation,
rewires the neighbor graph onto it and notifies any attached viewers.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
}
