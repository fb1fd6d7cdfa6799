package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termgrid/pkg/graph"
	"github.com/matzehuels/termgrid/pkg/render"
)

// newRenderCmd creates the render command for drawing a graph to a
// text stream. The input is a JSON graph file, or stdin when the
// argument is "-" or omitted.
//
// Default settings:
//   - 3 nodes per level, unlimited level width
//   - one blank line between connector lanes
//   - colors disabled, ASCII glyphs, nodes labelled by ID
func newRenderCmd() *cobra.Command {
	var (
		output     string
		configPath string
	)
	opts := defaultOpts()

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a JSON graph as a text diagram",
		Long: `Draw a JSON graph as a layered text diagram.

The input file holds a graph as {"nodes": [{"id", "label"}], "edges":
[{"from", "to"}]}. Cycles are allowed: a minimal set of edges is drawn
upward as back edges. Pass "-" (or no argument) to read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mergeOpts(cmd, &opts, configPath); err != nil {
				return err
			}
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runRender(cmd.Context(), input, output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with drawing options")
	addDrawFlags(cmd, &opts)

	return cmd
}

// addDrawFlags registers the drawing option flags shared by render and
// view.
func addDrawFlags(cmd *cobra.Command, opts *drawOpts) {
	cmd.Flags().IntVar(&opts.MaxPerLevel, "max-per-level", opts.MaxPerLevel, "maximum nodes per level")
	cmd.Flags().IntVar(&opts.MaxGlyphWidth, "max-width", opts.MaxGlyphWidth, "maximum characters per level (0 = unlimited)")
	cmd.Flags().IntVar(&opts.Spacing, "spacing", opts.Spacing, "blank lines between connector lanes")
	cmd.Flags().StringVar(&opts.Colors, "colors", opts.Colors, `edge colors: "default", "off" or a comma-separated list of names or ANSI codes`)
	cmd.Flags().StringVar(&opts.Glyphs, "glyphs", opts.Glyphs, "line glyphs as vertical,horizontal,crossing,arrow")
	cmd.Flags().StringVar(&opts.Label, "label", opts.Label, `node labels: "id" or "value"`)
	cmd.Flags().BoolVar(&opts.NoReorder, "no-reorder", opts.NoReorder, "keep connector discovery order instead of minimizing crossings")
}

// mergeOpts resolves the final options: defaults, then the config
// file, then any flag the user set explicitly.
func mergeOpts(cmd *cobra.Command, opts *drawOpts, configPath string) error {
	if configPath != "" {
		fromFile := defaultOpts()
		if err := loadOptsFile(configPath, &fromFile); err != nil {
			return err
		}
		flagged := *opts
		*opts = fromFile
		for name, apply := range map[string]func(){
			"max-per-level": func() { opts.MaxPerLevel = flagged.MaxPerLevel },
			"max-width":     func() { opts.MaxGlyphWidth = flagged.MaxGlyphWidth },
			"spacing":       func() { opts.Spacing = flagged.Spacing },
			"colors":        func() { opts.Colors = flagged.Colors },
			"glyphs":        func() { opts.Glyphs = flagged.Glyphs },
			"label":         func() { opts.Label = flagged.Label },
			"no-reorder":    func() { opts.NoReorder = flagged.NoReorder },
		} {
			if cmd.Flags().Changed(name) {
				apply()
			}
		}
	}
	return opts.validate()
}

// runRender loads the graph, draws it and writes the result.
func runRender(ctx context.Context, input, output string, opts drawOpts) error {
	// Every log line of one invocation carries the same render ID, so
	// interleaved verbose output stays attributable.
	logger := loggerFromContext(ctx).With("render", uuid.NewString())
	logger.Debugf("input=%s output=%s", input, displayPath(output))

	g, err := loadGraph(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	if g.IsEmpty() {
		logger.Warn("Graph is empty, nothing to draw")
		return nil
	}

	p := newProgress(logger)
	var out strings.Builder
	if err := render.FDisplay(g, opts.renderConfig(), &out); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Drew %d nodes", g.NodeCount()))
	logger.Debugf("drawing is %d bytes", out.Len())

	if output == "" {
		_, err = io.WriteString(os.Stdout, out.String())
		return err
	}
	return os.WriteFile(output, []byte(out.String()), 0o644)
}

// loadGraph reads the input graph from a file or stdin.
func loadGraph(input string) (*graph.Graph[string, string], error) {
	if input == "-" {
		return graph.ReadGraph(os.Stdin)
	}
	return graph.ReadGraphFile(input)
}

func displayPath(path string) string {
	if path == "" {
		return "stdout"
	}
	return path
}
