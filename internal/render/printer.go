// Package render prints itineraries for the terminal planner.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"world-travel-planner/internal/domain"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

const (
	bannerText  = "World Travel Planner"
	headingText = "Your Travel Plan"
	routeArrow  = " ➡️ "
	kmFormat    = "#,###.##"
)

// Printer writes colored planner output to a writer.
type Printer struct {
	out     io.Writer
	banner  *color.Color
	heading *color.Color
	route   *color.Color
	total   *color.Color
	faint   *color.Color
}

func NewPrinter(out io.Writer, noColor bool) *Printer {
	p := &Printer{
		out:     out,
		banner:  color.New(color.FgRed, color.Bold),
		heading: color.New(color.FgGreen),
		route:   color.New(color.Bold),
		total:   color.New(color.Italic, color.Bold, color.FgWhite, color.BgRed),
		faint:   color.New(color.Faint),
	}

	if noColor {
		for _, c := range []*color.Color{p.banner, p.heading, p.route, p.total, p.faint} {
			c.DisableColor()
		}
	}

	return p
}

// Clear resets the terminal screen and moves the cursor home.
func (p *Printer) Clear() {
	fmt.Fprint(p.out, "\033[H\033[2J")
}

func (p *Printer) Banner() {
	p.banner.Fprintln(p.out, bannerText)
	fmt.Fprintln(p.out)
}

// Itinerary prints the heading, the route line, one line per leg and the total.
func (p *Printer) Itinerary(it *domain.Itinerary) {
	p.heading.Fprintln(p.out, headingText)
	p.route.Fprintln(p.out, Route(it))

	for i, l := range it.Legs {
		fmt.Fprintf(p.out, "  %d. %s -> %s: %s KM\n", i+1, l.From.ID, l.To.ID, FormatKm(l.DistanceKm))
	}

	fmt.Fprintln(p.out)
	p.total.Fprintln(p.out, Total(it))
}

// Elapsed prints how long planning took, in seconds.
func (p *Printer) Elapsed(d time.Duration) {
	fmt.Fprintln(p.out)
	p.faint.Fprintf(p.out, "Took %s seconds to complete the planning.\n", humanize.FormatFloat("#.###", d.Seconds()))
}

// Route renders stops as "ID (Name, continent)" joined by arrows.
func Route(it *domain.Itinerary) string {
	parts := make([]string, 0, len(it.Stops))
	for _, s := range it.Stops {
		parts = append(parts, fmt.Sprintf("%s (%s, %s)", s.ID, s.Name, s.ContinentID))
	}
	return strings.Join(parts, routeArrow)
}

func Total(it *domain.Itinerary) string {
	return fmt.Sprintf(
		"Total Distance of %s distanced cities in different continents : %s KM",
		it.Mode.Label(), FormatKm(it.TotalDistanceKm),
	)
}

// FormatKm formats a distance with thousands separators and two decimals.
func FormatKm(km float64) string {
	return humanize.FormatFloat(kmFormat, km)
}
