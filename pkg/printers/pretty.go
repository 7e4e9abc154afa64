package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"modernride.dev/ride/pkg/app"
	"modernride.dev/ride/pkg/configurator"
	"modernride.dev/ride/pkg/preview"
)

// PrettyPrint renders configurator state for humans.
type PrettyPrint struct {
	Out        io.Writer
	ShowPrices bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Group prints every option of a group, marking the selected one.
func (pp *PrettyPrint) Group(name string, choices []configurator.Choice) {
	pp.Title(name)

	tbl := uitable.New()
	tbl.Separator = "  "
	active := color.New(color.FgHiGreen, color.Bold)
	faint := color.New(color.Faint)

	for _, ch := range choices {
		mark := " "
		label := ch.Display.Label
		if label == "" {
			label = ch.ID
		}
		if ch.Selected {
			mark = active.Sprint("●")
			label = active.Sprint(label)
		}
		row := []interface{}{mark, preview.Chip(ch.Display.Swatch), label, faint.Sprint(ch.ID)}
		if pp.ShowPrices {
			price := ""
			if ch.Display.Price > 0 {
				price = preview.FormatPrice(ch.Display.Price)
			}
			row = append(row, price)
		}
		tbl.AddRow(row...)
	}
	if pp.ShowPrices {
		tbl.RightAlign(4)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Quote prints the selected option of every group and, with prices shown,
// the total.
func (pp *PrettyPrint) Quote(q app.Quote) {
	pp.Title("Your build")

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, l := range q.Lines {
		label := l.Option.Display.Label
		if label == "" {
			label = l.Option.ID
		}
		row := []interface{}{bold.Sprint(l.Group), label}
		if pp.ShowPrices {
			row = append(row, preview.FormatPrice(l.Option.Display.Price))
		}
		tbl.AddRow(row...)
	}
	if pp.ShowPrices {
		tbl.AddRow(bold.Sprint("total"), "", bold.Sprint(preview.FormatPrice(q.Total)))
		tbl.RightAlign(2)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}
