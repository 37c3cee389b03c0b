package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cellgame/pkg/cell"
	"cellgame/pkg/cellnet"
	"cellgame/pkg/event"
)

var triangleCmd = &cobra.Command{
	Use:   "triangle",
	Short: "Walk the three-cell integer triangle through its generations",
	Long: `triangle builds three integer cells that are mutual neighbors and
advances them. Each generation, every cell becomes the sum of the other
two cells' previous states.`,
	RunE: runTriangle,
}

func init() {
	triangleCmd.Flags().Int("generations", 3, "generations to advance")
	triangleCmd.Flags().IntSlice("states", []int{1, 5, 7}, "initial states for cells A, B, C")
	rootCmd.AddCommand(triangleCmd)
}

func runTriangle(cmd *cobra.Command, args []string) error {
	generations, _ := cmd.Flags().GetInt("generations")
	states, _ := cmd.Flags().GetIntSlice("states")
	if len(states) != 3 {
		return fmt.Errorf("need exactly 3 initial states, got %d", len(states))
	}

	bus := event.NewBus()
	a := cell.NewInteger("A", states[0], cell.WithBus(bus))
	b := cell.NewInteger("B", states[1], cell.WithBus(bus))
	c := cell.NewInteger("C", states[2], cell.WithBus(bus))
	net := cellnet.New(cellnet.NewTriangle(a, b, c), bus)

	printStates(net)
	for i := 0; i < generations; i++ {
		if err := net.Tick(1); err != nil {
			return err
		}
		printStates(net)
	}
	return nil
}

func printStates(net *cellnet.Net) {
	fmt.Printf("gen %d:", net.Generation())
	for _, c := range net.Cells() {
		fmt.Printf("  %s=%s", c.ID(), c.Kind().Format(c.State()))
	}
	fmt.Println()
}
