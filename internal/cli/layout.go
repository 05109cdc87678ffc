package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ringgraph/pkg/graph"
	"github.com/matzehuels/ringgraph/pkg/pipeline"
)

// layoutCommand creates the layout command for computing node positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags     graphFlags
		output    string
		showNodes bool
	)

	cmd := &cobra.Command{
		Use:   "layout [graph]",
		Short: "Compute ring positions for a graph",
		Long: `Compute ring positions for a graph.

The layout command places every node on its tier ring and writes the result
to a layout file (default: <input>.layout.json). The file can be passed to
'render --layout' to draw the graph again without recomputing positions.

A summary of the rings is printed; --nodes also lists every position.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runLayout(ctx, args[0], &flags, opts, output, showNodes)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&showNodes, "nodes", false, "print a table of node positions")

	return cmd
}

// runLayout loads the graph, computes the layout and writes it.
func (c *CLI) runLayout(ctx context.Context, input string, flags *graphFlags, opts pipeline.Options, output string, showNodes bool) error {
	g, err := flags.loadGraph(input)
	if err != nil {
		return err
	}
	opts.Logger = loggerFromContext(ctx)

	l, err := c.newRunner().Layout(ctx, g.Nodes, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}

	exported := l.Export()
	if err := graph.WriteLayoutFile(exported, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printKeyValue("Canvas", fmt.Sprintf("%gx%g", l.FrameWidth, l.FrameHeight))
	printKeyValue("Radius", fmt.Sprintf("%.2f", l.Radius))
	printNewline()
	fmt.Println(ringTable(exported.Rings))
	if showNodes {
		printNewline()
		fmt.Println(nodeTable(exported.Nodes))
	}
	printNewline()
	printNextStep("Render", appName+" render "+input+" --layout "+outputPath)

	return nil
}
