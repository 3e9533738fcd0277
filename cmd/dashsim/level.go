package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/dashcore/levels"
)

var levelCmd = &cobra.Command{
	Use:   "level <name>",
	Short: "Describe a level",
	Long:  `Loads a level the same way the game does and prints its solid count, bounds and spawn.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLevel,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the bundled levels",
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := levels.LoadFrom(cfg.Level.Dir, args[0], cfg.Level.BlockSize)
	if err != nil {
		return err
	}
	bb := g.Bounds()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "level:  %s\n", args[0])
	fmt.Fprintf(out, "solids: %d\n", g.Len())
	fmt.Fprintf(out, "block:  %gx%g\n", g.BlockSize().X, g.BlockSize().Y)
	fmt.Fprintf(out, "bounds: (%g, %g) - (%g, %g)\n", bb.L, bb.B, bb.R, bb.T)
	fmt.Fprintf(out, "spawn:  (%g, %g)\n", g.Spawn().X, g.Spawn().Y)
	return nil
}

func runLevels(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	for _, name := range levels.Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}
}
