package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/ringgraph/pkg/errors"
	"github.com/matzehuels/ringgraph/pkg/interact"
	"github.com/matzehuels/ringgraph/pkg/pipeline"
	"github.com/matzehuels/ringgraph/pkg/render/draw"
)

// inspectCommand creates the inspect command for exploring click targets.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		flags graphFlags
		list  bool
		at    string
	)

	cmd := &cobra.Command{
		Use:   "inspect [graph]",
		Short: "Browse and activate the click targets of a diagram",
		Long: `Browse and activate the click targets of a diagram.

Every node or edge with an on_click handle becomes a click target. By default
an interactive list is shown; press enter to activate the selected target.

  --list       print the targets as a table and exit
  --at X,Y     hit-test a canvas point and activate whatever is under it`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			canvas, err := c.buildCanvas(ctx, args[0], &flags, opts)
			if err != nil {
				return err
			}
			reg := c.newActionRegistry(ctx, canvas)

			switch {
			case at != "":
				return runHitTest(ctx, canvas, reg, at)
			case list:
				fmt.Println(targetTable(interact.Targets(canvas)))
				return nil
			default:
				return runTargetBrowser(ctx, canvas, reg)
			}
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&list, "list", false, "print click targets and exit")
	cmd.Flags().StringVar(&at, "at", "", "hit-test the point X,Y and activate the target under it")

	return cmd
}

// buildCanvas lays out and draws the graph without serializing it.
func (c *CLI) buildCanvas(ctx context.Context, input string, flags *graphFlags, opts pipeline.Options) (draw.Canvas, error) {
	g, err := flags.loadGraph(input)
	if err != nil {
		return draw.Canvas{}, err
	}
	opts.Logger = loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return draw.Canvas{}, err
	}

	l, err := c.newRunner().Layout(ctx, g.Nodes, opts)
	if err != nil {
		return draw.Canvas{}, err
	}
	return draw.Build(l, g.Edges, opts.Options), nil
}

// newActionRegistry registers a logging callback for every handle in c.
// The CLI has no host page, so activating a target just reports it.
func (c *CLI) newActionRegistry(ctx context.Context, canvas draw.Canvas) *interact.Registry {
	logger := loggerFromContext(ctx)
	reg := interact.NewRegistry()
	for _, t := range interact.Targets(canvas) {
		handle := t.Action
		reg.Register(handle, func() {
			logger.Debug("action fired", "handle", handle)
		})
	}
	return reg
}

func runHitTest(ctx context.Context, canvas draw.Canvas, reg *interact.Registry, at string) error {
	x, y, err := parsePoint(at)
	if err != nil {
		return err
	}
	t, ok := interact.HitTest(canvas, x, y)
	if !ok {
		printWarning("No click target at %g,%g", x, y)
		return nil
	}
	if err := reg.Activate(ctx, t.Action); err != nil {
		return err
	}
	printSuccess("Activated %s", StyleValue.Render(t.Action))
	printKeyValue("Element", t.ID)
	if t.Tooltip != "" {
		printKeyValue("Tooltip", t.Tooltip)
	}
	return nil
}

func runTargetBrowser(ctx context.Context, canvas draw.Canvas, reg *interact.Registry) error {
	targets := interact.Targets(canvas)
	if len(targets) == 0 {
		printInfo("No click targets in this graph")
		return nil
	}
	m := NewTargetListModel(ctx, targets, reg)
	_, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(os.Stdout)).Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// parsePoint parses "x,y" into canvas coordinates.
func parsePoint(s string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errs.New(errs.ErrCodeInvalidInput, "point must be X,Y, got %q", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, errs.New(errs.ErrCodeInvalidInput, "invalid x coordinate %q", xs)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, errs.New(errs.ErrCodeInvalidInput, "invalid y coordinate %q", ys)
	}
	return x, y, nil
}
