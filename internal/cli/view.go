package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/termgrid/pkg/render"
)

// newViewCmd creates the view command: the graph is drawn once and the
// result opens in a scrollable full-screen viewer, which helps with
// drawings taller or wider than the terminal.
func newViewCmd() *cobra.Command {
	var configPath string
	opts := defaultOpts()

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a drawing in an interactive viewer",
		Long: `Draw a JSON graph and browse the result interactively.

Arrow keys or hjkl scroll, g/G jump to the top/bottom, q quits. The
drawing itself is identical to what 'render' produces.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mergeOpts(cmd, &opts, configPath); err != nil {
				return err
			}
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runView(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with drawing options")
	addDrawFlags(cmd, &opts)

	return cmd
}

// runView draws the graph and hands the result to the viewer model.
func runView(ctx context.Context, input string, opts drawOpts) error {
	logger := loggerFromContext(ctx)

	g, err := loadGraph(input)
	if err != nil {
		return err
	}
	if g.IsEmpty() {
		logger.Warn("Graph is empty, nothing to view")
		return nil
	}

	// Colors are disabled in the viewer: scrolling slices lines, and a
	// sliced escape sequence would bleed into the rest of the screen.
	cfg := opts.renderConfig().DisableColors()
	var out strings.Builder
	if err := render.FDisplay(g, cfg, &out); err != nil {
		return err
	}

	model := newViewerModel(input, out.String())
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// viewerModel is the bubbletea model for the drawing viewer: a plain
// pager over the rendered lines.
type viewerModel struct {
	title  string
	lines  []string
	top    int // first visible line
	left   int // first visible column
	width  int
	height int
}

func newViewerModel(title, drawing string) viewerModel {
	return viewerModel{
		title:  title,
		lines:  strings.Split(strings.TrimRight(drawing, "\n"), "\n"),
		width:  80,
		height: 24,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.top > 0 {
				m.top--
			}
		case "down", "j":
			if m.top < m.maxTop() {
				m.top++
			}
		case "left", "h":
			if m.left > 0 {
				m.left -= 4
				if m.left < 0 {
					m.left = 0
				}
			}
		case "right", "l":
			m.left += 4
		case "pgup":
			m.top -= m.pageSize()
			if m.top < 0 {
				m.top = 0
			}
		case "pgdown", " ":
			m.top += m.pageSize()
			if m.top > m.maxTop() {
				m.top = m.maxTop()
			}
		case "g", "home":
			m.top = 0
			m.left = 0
		case "G", "end":
			m.top = m.maxTop()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.top > m.maxTop() {
			m.top = m.maxTop()
		}
	}
	return m, nil
}

func (m viewerModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("termgrid"))
	b.WriteString(" ")
	b.WriteString(styleStatus.Render(m.title))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("↑/↓ scroll  ←/→ pan  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	end := m.top + m.pageSize()
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for i := m.top; i < end; i++ {
		b.WriteString(m.slice(m.lines[i]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("line %d-%d of %d", m.top+1, end, len(m.lines))))
	return b.String()
}

// pageSize is the number of drawing lines that fit between the header
// and the status line.
func (m viewerModel) pageSize() int {
	size := m.height - 5
	if size < 1 {
		return 1
	}
	return size
}

func (m viewerModel) maxTop() int {
	max := len(m.lines) - m.pageSize()
	if max < 0 {
		return 0
	}
	return max
}

// slice clips one line to the visible horizontal window.
func (m viewerModel) slice(line string) string {
	runes := []rune(line)
	if m.left >= len(runes) {
		return ""
	}
	runes = runes[m.left:]
	if m.width > 0 && len(runes) > m.width {
		runes = runes[:m.width]
	}
	return string(runes)
}
