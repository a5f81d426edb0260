package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/spina95/time-blocking/pkg/calendar"
	"github.com/spina95/time-blocking/pkg/project"
	"github.com/spina95/time-blocking/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1234  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Group prints the todos of one category, checkbox first, priority colored.
func (pp *PrettyPrint) Group(todos ...task.Todo) {
	if len(todos) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	for _, td := range todos {
		if pp.ShowID {
			id := fmt.Sprintf("%d", td.ID)
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		_, _ = t.Printf("%s %s %s", checkbox(td.Completed), priorityMark(td.Priority), td.Title)
		_, _ = f.Printf("  %sh", trimHours(td.Duration))
		if td.Recurring() {
			_, _ = f.Printf("  (%s)", td.Recurrence)
		}
		if td.Deadline != nil {
			_, _ = f.Printf("  due %s", td.Deadline.Format("Jan 2"))
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Projects prints the project catalog, marking the selected one.
func (pp *PrettyPrint) Projects(selectedID int64, projects ...project.Project) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Icon"), bold.Sprint("Color"))
	for _, p := range projects {
		mark := " "
		if p.ID == selectedID {
			mark = "*"
		}
		tbl.AddRow(mark, p.ID, p.Name, p.Icon, p.Color)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Icons prints the icon catalog available for projects.
func (pp *PrettyPrint) Icons(icons []string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Icons"))
	for _, name := range icons {
		tbl.AddRow(name)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Schedule prints placed events as an agenda table.
func (pp *PrettyPrint) Schedule(events ...calendar.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing scheduled\n\n")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("When"), bold.Sprint("Span"), bold.Sprint(""), bold.Sprint("Title"))
	for _, e := range events {
		tbl.AddRow(whenColumn(e), spanColumn(e), checkbox(e.Props.Completed), e.Title)
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func checkbox(done bool) string {
	if done {
		return color.New(color.FgGreen).Sprint("[x]")
	}
	return "[ ]"
}

func priorityMark(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return color.New(color.FgRed, color.Bold).Sprint("!")
	case task.PriorityLow:
		return color.New(color.FgGreen).Sprint("-")
	default:
		return color.New(color.FgYellow).Sprint("=")
	}
}

func whenColumn(e calendar.Event) string {
	if e.AllDay {
		return e.Start.Format("Mon Jan 2") + "  all day"
	}
	return e.Start.Format("Mon Jan 2 15:04")
}

func spanColumn(e calendar.Event) string {
	if e.AllDay || e.End == nil {
		return ""
	}
	return trimHours(e.Duration().Hours()) + "h"
}

func trimHours(h float64) string {
	s := fmt.Sprintf("%.1f", h)
	return strings.TrimSuffix(s, ".0")
}
