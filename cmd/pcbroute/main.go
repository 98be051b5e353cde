// Command pcbroute is a demonstration driver for the routing world model:
// it builds a small board, exercises branch/squash/revert navigation and
// collision queries, and can render the resulting world to a PNG.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pcb-router/internal/rules"
	"pcb-router/internal/version"
	"pcb-router/internal/world"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "pcbroute",
		Short:   "Exercise the push-and-shove routing world model",
		Version: version.Full(),
	}

	root.PersistentFlags().String("rules", "", "rule configuration file")
	root.PersistentFlags().Int("max-clearance", world.DefaultMaxClearance,
		"index query expansion radius in nm")
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")

	_ = viper.BindPFlag("rules", root.PersistentFlags().Lookup("rules"))
	_ = viper.BindPFlag("max_clearance", root.PersistentFlags().Lookup("max-clearance"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(newDemoCmd())
	root.AddCommand(newRenderCmd())
	return root
}

// newNode builds a Node from the CLI configuration.
func newNode() (*world.Node, error) {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := rules.LoadConfig(viper.GetString("rules"))
	if err != nil {
		return nil, err
	}

	opts := world.DefaultNodeOptions()
	opts.Logger = logger
	opts.Rules = cfg.Resolver()
	if mc := viper.GetInt("max_clearance"); mc > 0 {
		opts.MaxClearance = mc
	} else if cfg.MaxClearance > 0 {
		opts.MaxClearance = cfg.MaxClearance
	}

	return world.NewNode(opts), nil
}
