// Package ui prints pipeline results to a terminal, with color when the
// output supports it.
package ui

import (
	"fmt"
	"homefinder/pkg/domain"
	"homefinder/pkg/query"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ANSI color indexes.
const (
	colorRed    = "1"
	colorGreen  = "2"
	colorYellow = "3"
	colorBlue   = "4"
)

type UI struct {
	Out          io.Writer
	Err          io.Writer
	Output       *termenv.Output
	ErrOutput    *termenv.Output
	ColorEnabled bool
}

func New(out io.Writer, err io.Writer, mode ColorMode) *UI {
	output := termenv.NewOutput(out)

	return &UI{
		Out:          out,
		Err:          err,
		Output:       output,
		ErrOutput:    termenv.NewOutput(err),
		ColorEnabled: shouldEnableColor(output, mode),
	}
}

func shouldEnableColor(output *termenv.Output, mode ColorMode) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok && mode != ColorAlways {
		return false
	}

	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return output.ColorProfile() != termenv.Ascii
	}
}

// NormalizeColorMode maps user input to a ColorMode, defaulting to ColorAuto.
func NormalizeColorMode(value string) ColorMode {
	switch ColorMode(strings.ToLower(strings.TrimSpace(value))) {
	case ColorAlways:
		return ColorAlways
	case ColorNever:
		return ColorNever
	default:
		return ColorAuto
	}
}

func (u *UI) println(w io.Writer, o *termenv.Output, color string, bold bool, format string, args ...any) {
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	if u.ColorEnabled {
		s := o.String(msg).Foreground(o.Color(color))
		if bold {
			s = s.Bold()
		}
		msg = s.String()
	}
	_, _ = fmt.Fprintln(w, msg)
}

func (u *UI) Errorf(format string, args ...any) {
	u.println(u.Err, u.ErrOutput, colorRed, false, format, args...)
}

func (u *UI) Warnf(format string, args ...any) {
	u.println(u.Err, u.ErrOutput, colorYellow, false, format, args...)
}

func (u *UI) Infof(format string, args ...any) {
	u.println(u.Out, u.Output, colorBlue, false, format, args...)
}

func (u *UI) Headerf(format string, args ...any) {
	u.println(u.Out, u.Output, colorGreen, true, format, args...)
}

// Plain writes text without styling.
func (u *UI) Plain(text string) {
	_, _ = fmt.Fprintln(u.Out, strings.TrimRight(text, "\n"))
}

// Footprint prints the derived areas and the query.
func (u *UI) Footprint(fp domain.DerivedFootprint, q string) {
	u.Infof("Total bedroom area: %s sq ft", query.FormatArea(fp.TotalBedroomArea))
	u.Infof("Total bathroom area: %s sq ft", query.FormatArea(fp.TotalBathroomArea))
	u.Infof("Total carpet area: %s sq ft", query.FormatArea(fp.TotalCarpetArea))
	u.Infof("Super built-up area: %s sq ft (x%s)", query.FormatArea(fp.SuperBuiltUpArea), query.FormatArea(fp.Multiplier))
	u.Infof("Query: %s", q)
}

// Recommendation prints the summary, or the hint when nothing was found.
func (u *UI) Recommendation(rec *domain.Recommendation) {
	if rec.Outcome == domain.OutcomeNoResults {
		u.Warnf("%s", rec.Hint)

		return
	}

	u.Headerf("Recommended Properties")
	u.Plain(rec.Summary)
}

// Error prints err the way the form shows it.
func (u *UI) Error(err error) {
	u.Errorf("Error: %s", err)
}
