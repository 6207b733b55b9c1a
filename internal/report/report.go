// Package report renders leaderboard query results for the terminal.
// The aggregation core stays render-free; everything presentational
// lives here.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gfxboard/gfxboard/internal/leaderboard"
)

// Renderer formats leaderboard output. The reference implementation's
// sentinel key is mapped to a display name; plain mode drops all styling
// for non-TTY consumers.
type Renderer struct {
	reference string
	plain     bool

	header   lipgloss.Style
	complete lipgloss.Style
	partial  lipgloss.Style
	zero     lipgloss.Style
	muted    lipgloss.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain disables colors and emphasis.
func WithPlain() Option {
	return func(r *Renderer) {
		r.plain = true
	}
}

// New creates a Renderer labeling the reference implementation column with
// the given display name.
func New(reference string, opts ...Option) *Renderer {
	r := &Renderer{
		reference: reference,
		header:    lipgloss.NewStyle().Bold(true),
		complete:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		partial:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		zero:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Board renders the full leaderboard: one row per version, one column per
// tracked driver, completed/total per cell. Drivers keeps column order; a
// nil slice means every driver seen on the board, reference first.
func (r *Renderer) Board(board *leaderboard.Leaderboard, drivers []string) string {
	versions := board.Versions()
	if len(versions) == 0 {
		return r.style(r.muted, "no versions on the board") + "\n"
	}
	if drivers == nil {
		drivers = board.Drivers()
	}

	nameWidth := len("API")
	for _, v := range versions {
		if w := len(v.ID()); w > nameWidth {
			nameWidth = w
		}
	}

	var sb strings.Builder
	sb.WriteString(r.style(r.header, pad("API", nameWidth)))
	for _, d := range drivers {
		sb.WriteString("  " + r.style(r.header, pad(r.label(d), cellWidth(r.label(d)))))
	}
	sb.WriteString("\n")

	for _, v := range versions {
		sb.WriteString(pad(v.ID(), nameWidth))
		for _, d := range drivers {
			cell := fmt.Sprintf("%d/%d", v.CompletedBy(d), v.TotalExtensions())
			sb.WriteString("  " + r.style(r.cellStyle(v, d), pad(cell, cellWidth(r.label(d)))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Ranking renders the driver ranking, one line per driver, descending.
func (r *Renderer) Ranking(board *leaderboard.Leaderboard) string {
	scores := board.DriverRanking()
	if len(scores) == 0 {
		return r.style(r.muted, "no drivers on the board") + "\n"
	}
	total := board.TotalExtensions()

	var sb strings.Builder
	sb.WriteString(r.style(r.header, fmt.Sprintf("%d extensions tracked", total)) + "\n")
	for i, s := range scores {
		line := fmt.Sprintf("%2d. %-12s %d/%d", i+1, r.label(s.Driver), s.Completed, total)
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// Latest renders, for each named API, the highest version the driver fully
// supports, scanning per the leaderboard's prefix rule.
func (r *Renderer) Latest(board *leaderboard.Leaderboard, apis []string, driver string) string {
	var sb strings.Builder
	sb.WriteString(r.style(r.header, fmt.Sprintf("latest fully supported by %s", r.label(driver))) + "\n")
	for _, api := range apis {
		v := board.LatestFullySupported(api, driver)
		if v == nil {
			sb.WriteString(fmt.Sprintf("%-12s %s\n", api, r.style(r.muted, "none")))
			continue
		}
		sb.WriteString(fmt.Sprintf("%-12s %s\n", api, r.style(r.complete, v.APIVersion)))
	}
	return sb.String()
}

// label maps the reserved reference key to its display name.
func (r *Renderer) label(driver string) string {
	if driver == leaderboard.ReferenceKey {
		return r.reference
	}
	return driver
}

func (r *Renderer) cellStyle(v *leaderboard.VersionAggregate, driver string) lipgloss.Style {
	switch {
	case v.FullySupportedBy(driver):
		return r.complete
	case v.CompletedBy(driver) > 0:
		return r.partial
	default:
		return r.zero
	}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func cellWidth(label string) int {
	const min = 7 // room for "nn/nnn"
	if len(label) > min {
		return len(label)
	}
	return min
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
