package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"go.jacobcolvin.com/ponder/annotation"
	"go.jacobcolvin.com/ponder/preview"
	"go.jacobcolvin.com/ponder/render"
)

func (a *app) newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [flags] <file>",
		Short: "Step through the annotations of a file interactively",
		Long: `view opens a full screen viewer listing each annotation of the file with
its preview image. Use n and p (or the arrow keys) to move between
annotations and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			records := a.parser.Scan(doc)

			// Log output would tear the alternate screen.
			slog.SetDefault(slog.New(slog.DiscardHandler))

			m := newViewModel(cmd.Context(), doc, records, a.renderCfg.Options())

			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(a.out),
			)

			_, err = p.Run()
			if err != nil {
				return fmt.Errorf("run viewer: %w", err)
			}

			return nil
		},
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// imageMsg carries a loaded preview image.
type imageMsg struct {
	img   image.Image
	err   error
	index int
}

// viewModel is the bubbletea model for the annotation viewer.
type viewModel struct {
	ctx     context.Context //nolint:containedctx // Scopes image loads to the program.
	loader  preview.Loader
	images  map[int]image.Image
	errs    map[int]error
	loading map[int]bool
	name    string
	records []annotation.Record
	buf     strings.Builder
	cols    int
	width   int
	index   int
}

func newViewModel(
	ctx context.Context,
	doc annotation.Document,
	records []annotation.Record,
	opts render.Options,
) *viewModel {
	return &viewModel{
		ctx:     ctx,
		name:    displayName(doc.URI()),
		records: records,
		images:  make(map[int]image.Image),
		errs:    make(map[int]error),
		loading: make(map[int]bool),
		cols:    preview.Columns(opts.PreviewSize),
	}
}

// Init starts loading the first preview.
func (m *viewModel) Init() tea.Cmd {
	return m.load(m.index)
}

// Update handles navigation, resize, and loaded images.
func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n", "j", "right", "down", "space":
			if m.index < len(m.records)-1 {
				m.index++
			}

			return m, m.load(m.index)
		case "p", "k", "left", "up":
			if m.index > 0 {
				m.index--
			}

			return m, m.load(m.index)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case imageMsg:
		delete(m.loading, msg.index)

		if msg.err != nil {
			m.errs[msg.index] = msg.err
		} else {
			m.images[msg.index] = msg.img
		}
	}

	return m, nil
}

// load returns a command that loads the preview of record i, or nil when
// it is loaded, loading, or out of range.
func (m *viewModel) load(i int) tea.Cmd {
	if i < 0 || i >= len(m.records) {
		return nil
	}

	if _, ok := m.images[i]; ok || m.loading[i] || m.errs[i] != nil {
		return nil
	}

	m.loading[i] = true

	ctx, loader, ref := m.ctx, m.loader, m.records[i].Preview

	return func() tea.Msg {
		img, err := loader.Load(ctx, ref)

		return imageMsg{index: i, img: img, err: err}
	}
}

// View renders the current annotation and its preview.
func (m *viewModel) View() tea.View {
	m.buf.Reset()

	if len(m.records) == 0 {
		fmt.Fprintf(&m.buf, "%s\n\nNo annotations in %s.\n\n%s\n",
			titleStyle.Render(render.Title), m.name, dimStyle.Render("q quit"))
	} else {
		m.writeRecord(&m.buf)
	}

	v := tea.NewView(m.buf.String())
	v.AltScreen = true

	return v
}

func (m *viewModel) writeRecord(sb *strings.Builder) {
	rec := m.records[m.index]

	fmt.Fprintf(sb, "%s  %s\n\n", titleStyle.Render(render.Title),
		dimStyle.Render(fmt.Sprintf("%d/%d  %s:%d-%d", m.index+1, len(m.records),
			m.name, rec.Span.Start+1, rec.Span.End+1)))

	if rec.Description != "" {
		fmt.Fprintf(sb, "%s\n\n", rec.Description)
	}

	fmt.Fprintf(sb, "preview:  %s\ndetailed: %s\n\n", rec.Preview, rec.Detailed)

	cols := m.cols
	if m.width > 0 {
		cols = min(cols, m.width)
	}

	switch {
	case m.images[m.index] != nil:
		sb.WriteString(preview.Render(m.images[m.index], cols))
	case m.errs[m.index] != nil:
		sb.WriteString(errStyle.Render(fmt.Sprintf("preview unavailable: %v", m.errs[m.index])))
		sb.WriteString("\n")
	default:
		sb.WriteString("loading preview...\n")
	}

	sb.WriteString("\n" + dimStyle.Render("n next  p previous  q quit") + "\n")
}
