package configurator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"modernride.dev/ride/pkg/preview"
)

const (
	title    = "Universal Modern Ride"
	subtitle = "Build yours. Pick one option from every group."
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	sections := []string{m.renderHeader(width)}

	left := m.renderGroups()
	right := m.renderPreview()
	if width < lipgloss.Width(left)+lipgloss.Width(right) {
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, left, right))
	} else {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	}

	sections = append(sections, m.renderFooter(width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) compact() bool {
	return m.height > 0 && m.height < compactHeight
}

func (m *Model) renderHeader(width int) string {
	t := m.theme.Header
	if m.compact() {
		return t.Title.Render(title)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(strings.ToUpper(title)),
		t.Subtitle.Render(wordwrap.String(subtitle, width)),
		"",
	)
}

func (m *Model) renderGroups() string {
	var rows []string
	for i, name := range m.groups {
		choices, err := m.cfg.Choices(name)
		if err != nil {
			continue
		}
		focused := i == m.focus
		heading := m.theme.Panel.Title.Render(name)
		if focused {
			heading = m.theme.Panel.Title.Render("› " + name)
		}
		rows = append(rows, heading)

		var opts []string
		for j, ch := range choices {
			label := ch.Display.Label
			if label == "" {
				label = ch.ID
			}
			cell := preview.Chip(ch.Display.Swatch) + " " + label
			switch {
			case focused && j == m.cursor[name]:
				if ch.Selected {
					cell = "● " + cell
				}
				cell = m.theme.Option.Cursor.Render(cell)
			case ch.Selected:
				cell = m.theme.Option.Selected.Render("● " + cell)
			default:
				cell = m.theme.Option.Normal.Render(cell)
			}
			if m.showPrices && ch.Display.Price > 0 {
				cell += m.theme.Option.Price.Render(" +" + preview.FormatPrice(ch.Display.Price))
			}
			opts = append(opts, cell)
		}
		rows = append(rows, "  "+strings.Join(opts, "   "))
		if !m.compact() {
			rows = append(rows, "")
		}
	}
	frame := m.theme.Panel.Frame
	return frame.Render(strings.TrimRight(strings.Join(rows, "\n"), "\n"))
}

func (m *Model) renderPreview() string {
	var rows []string
	rows = append(rows, m.theme.Panel.Title.Render("Preview"))
	total := 0
	for _, name := range m.groups {
		u, ok := m.previews[name]
		if !ok {
			continue
		}
		total += u.Display.Price
		line := fmt.Sprintf("%-9s %s %s", name, preview.Chip(u.Display.Swatch), preview.Label(u))
		if name == m.last {
			line = m.theme.Option.Selected.Render(line)
		}
		if m.showPrices {
			line += m.theme.Option.Price.Render("  " + preview.FormatPrice(u.Display.Price))
		}
		rows = append(rows, line)
	}
	if m.showPrices {
		rows = append(rows, "", m.theme.Panel.Title.Render("Total "+preview.FormatPrice(total)))
	}
	return m.theme.Panel.Focused.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderFooter(width int) string {
	status := m.theme.Footer.Status.Render(wordwrap.String(m.status, width))
	if m.err != nil {
		status = m.theme.Footer.Error.Render(wordwrap.String("error: "+m.err.Error(), width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
}
