package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/spina95/time-blocking/pkg/calendar"
)

// Month prints a compact month grid, highlighting days that hold events.
func (pp *PrettyPrint) Month(on time.Time, events ...calendar.Event) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)
	days := DaysIn(then)

	count := make([]int, days)
	for _, e := range events {
		s := e.Start.Local()
		if s.Year() == then.Year() && s.Month() == then.Month() {
			count[s.Day()-1]++
		}
	}

	pp.printMonthCount(then, count)
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) printMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// MonthLong prints one line per day with the events landing on it.
func (pp *PrettyPrint) MonthLong(on time.Time, events ...calendar.Event) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)

	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)

	now := time.Now()
	d := StartDay(then)
	for i := 0; i < DaysIn(then); i++ {
		printer := p
		today := now.Year() == then.Year() && now.Month() == then.Month() && now.Day() == i+1
		if today {
			printer = b
		}
		if d == time.Sunday {
			printer = s
			if today {
				printer = bs
			}
		}
		_, _ = printer.Printf("%2d %s", i+1, d.String()[0:1])

		first := true
		for _, e := range events {
			es := e.Start.Local()
			if es.Year() == then.Year() && es.Month() == then.Month() && es.Day() == i+1 {
				if first {
					_, _ = p.Print("  ")
					first = false
				} else {
					_, _ = p.Print("\n     ")
				}
				_, _ = p.Printf("%s %s", checkbox(e.Props.Completed), e.Title)
			}
		}
		_, _ = p.Print("\n")

		d++
		if d > time.Saturday {
			d = time.Sunday
		}
	}
	fmt.Println("")
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
