package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"gopkg.in/yaml.v3"

	"trisolve/internal/batch"
	"trisolve/internal/triangle"
)

// Format selects how results are written.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: text, json, yaml, markdown)", s)
	}
}

// Symbol returns the display name of a field: a, b, c, α, β, γ.
func Symbol(f triangle.Field) string {
	switch f {
	case triangle.FieldAlpha:
		return "α"
	case triangle.FieldBeta:
		return "β"
	case triangle.FieldGamma:
		return "γ"
	default:
		return f.String()
	}
}

// FormatSide prints a length with the given number of decimals.
func FormatSide(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// FormatAngle prints an angle in degrees to one decimal.
func FormatAngle(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "°"
}

// Renderer writes results in one format.
type Renderer struct {
	Format    Format
	Precision int
	Styles    Styles

	// MarkdownStyle is a glamour style name; empty picks one from the theme.
	MarkdownStyle string
}

// Item is a titled result.
type Item struct {
	Title  string
	Result triangle.Result
}

// Result writes a single result.
func (r Renderer) Result(w io.Writer, item Item) error {
	switch r.Format {
	case FormatJSON:
		return writeJSON(w, item.Result)
	case FormatYAML:
		return writeYAML(w, item.Result)
	case FormatMarkdown:
		return r.writeMarkdown(w, r.resultMarkdown(item))
	default:
		_, err := io.WriteString(w, r.resultText(item))
		return err
	}
}

// Report writes a batch report.
func (r Renderer) Report(w io.Writer, report batch.Report) error {
	switch r.Format {
	case FormatJSON:
		return writeJSON(w, report.Outcomes)
	case FormatYAML:
		return writeYAML(w, report.Outcomes)
	case FormatMarkdown:
		return r.writeMarkdown(w, r.reportMarkdown(report))
	default:
		_, err := io.WriteString(w, r.reportText(report))
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r Renderer) resultText(item Item) string {
	s := r.Styles
	var sb strings.Builder

	if !item.Result.OK() {
		sb.WriteString(s.Error.Render("✗ "+errorText(item.Result)) + "\n")
		return sb.String()
	}
	sol := item.Result.Solution

	header := s.Title.Render(item.Title) + "  " +
		s.Badge.Render(string(sol.Sides)+" · "+string(sol.Angles))

	table := NewSimpleTable("", []string{"", "side", "", "angle"})
	for i, side := range triangle.SideFields {
		ang := triangle.AngleFields[i]
		table.AddRow(
			Symbol(side), FormatSide(sol.Value(side), r.Precision),
			Symbol(ang), FormatAngle(sol.Value(ang)),
		)
	}

	footer := s.Muted.Render(fmt.Sprintf("perimeter %s   area %s",
		FormatSide(sol.Perimeter(), r.Precision), FormatSide(sol.Area(), r.Precision)))

	body := header + "\n\n" + strings.TrimRight(table.View(s), "\n") + "\n\n" + footer
	sb.WriteString(s.Card.Render(body))
	sb.WriteString("\n")
	return sb.String()
}

func (r Renderer) reportText(report batch.Report) string {
	s := r.Styles
	table := NewSimpleTable("", []string{"job", "schema", "a", "b", "c", "α", "β", "γ", "type"})
	for _, o := range report.Outcomes {
		if !o.Result.OK() {
			table.AddRow(o.Name, string(o.Schema), "", "", "", "", "", "", s.Error.Render(errorText(o.Result)))
			continue
		}
		sol := o.Result.Solution
		table.AddRow(o.Name, string(o.Schema),
			FormatSide(sol.A, r.Precision), FormatSide(sol.B, r.Precision), FormatSide(sol.C, r.Precision),
			FormatAngle(sol.Alpha), FormatAngle(sol.Beta), FormatAngle(sol.Gamma),
			string(sol.Sides)+", "+string(sol.Angles))
	}

	var sb strings.Builder
	sb.WriteString(table.View(s))
	summary := fmt.Sprintf("%d solved, %d failed (run %s)", len(report.Outcomes)-report.Failed(), report.Failed(), report.RunID)
	if report.Failed() > 0 {
		sb.WriteString(s.Warning.Render(summary))
	} else {
		sb.WriteString(s.Success.Render(summary))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r Renderer) resultMarkdown(item Item) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", item.Title)
	if !item.Result.OK() {
		fmt.Fprintf(&sb, "**Error:** %s\n", errorText(item.Result))
		return sb.String()
	}
	sol := item.Result.Solution

	sb.WriteString("| | side | | angle |\n|---|---:|---|---:|\n")
	for i, side := range triangle.SideFields {
		ang := triangle.AngleFields[i]
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			Symbol(side), FormatSide(sol.Value(side), r.Precision),
			Symbol(ang), FormatAngle(sol.Value(ang)))
	}
	fmt.Fprintf(&sb, "\n**Classification:** %s, %s\n\n", sol.Sides, sol.Angles)
	fmt.Fprintf(&sb, "Perimeter %s, area %s.\n",
		FormatSide(sol.Perimeter(), r.Precision), FormatSide(sol.Area(), r.Precision))
	return sb.String()
}

func (r Renderer) reportMarkdown(report batch.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Batch run %s\n\n", report.RunID)
	sb.WriteString("| job | schema | a | b | c | α | β | γ | type |\n|---|---|---:|---:|---:|---:|---:|---:|---|\n")
	for _, o := range report.Outcomes {
		if !o.Result.OK() {
			fmt.Fprintf(&sb, "| %s | %s | | | | | | | error: %s |\n", o.Name, o.Schema, errorText(o.Result))
			continue
		}
		sol := o.Result.Solution
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s | %s | %s | %s, %s |\n",
			o.Name, o.Schema,
			FormatSide(sol.A, r.Precision), FormatSide(sol.B, r.Precision), FormatSide(sol.C, r.Precision),
			FormatAngle(sol.Alpha), FormatAngle(sol.Beta), FormatAngle(sol.Gamma),
			sol.Sides, sol.Angles)
	}
	fmt.Fprintf(&sb, "\n%d solved, %d failed.\n", len(report.Outcomes)-report.Failed(), report.Failed())
	return sb.String()
}

func (r Renderer) writeMarkdown(w io.Writer, md string) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
	switch {
	case r.MarkdownStyle != "":
		opts = append(opts, glamour.WithStylePath(r.MarkdownStyle))
	case r.Styles.Theme.IsDark:
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStylePath("light"))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func errorText(res triangle.Result) string {
	if res.Err != nil {
		return res.Err.Error()
	}
	return "no result"
}
