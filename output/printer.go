// Package output renders TMDb entities for the command line as console
// trees, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/s0up4200/marquee/tmdb"
)

// Format is an output format
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// ParseFormat converts a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatConsole, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Printer writes values in one format
type Printer struct {
	w       io.Writer
	format  Format
	console *ConsoleFormatter
}

// NewPrinter creates a printer for the given format
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:       w,
		format:  format,
		console: NewConsoleFormatter(),
	}
}

// Format returns the printer's format
func (p *Printer) Format() Format {
	return p.format
}

// Print renders v. The console format knows the tmdb entity types and
// falls back to YAML for anything else.
func (p *Printer) Print(v any) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		return p.printYAML(v)
	default:
		if s, ok := p.formatConsole(v); ok {
			_, err := io.WriteString(p.w, s)
			return err
		}
		return p.printYAML(v)
	}
}

// PrintReport renders the failed supplementary calls of a full-tier fetch.
// Structured formats carry the report inside the entity, so only the
// console format writes anything.
func (p *Printer) PrintReport(report tmdb.SubFetchReport) error {
	if p.format != FormatConsole {
		return nil
	}
	_, err := io.WriteString(p.w, p.console.FormatSubFetchReport(report))
	return err
}

func (p *Printer) printYAML(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func (p *Printer) formatConsole(v any) (string, bool) {
	f := p.console
	switch v := v.(type) {
	case *tmdb.Movie:
		return f.FormatMovie(v), true
	case []tmdb.MovieReduced:
		return f.FormatMovieList(v), true
	case *tmdb.Page[tmdb.MovieReduced]:
		return f.FormatMovieList(v.Results) + f.FormatPageFooter(v.Page, v.TotalPages, v.TotalResults), true
	case *tmdb.Page[tmdb.RatedMovie]:
		movies := make([]tmdb.MovieReduced, 0, len(v.Results))
		for _, m := range v.Results {
			movies = append(movies, m.MovieReduced)
		}
		return f.FormatMovieList(movies) + f.FormatPageFooter(v.Page, v.TotalPages, v.TotalResults), true
	case *tmdb.Person:
		return f.FormatPerson(v), true
	case *tmdb.Page[tmdb.PersonReduced]:
		return f.FormatPeople(v.Results) + f.FormatPageFooter(v.Page, v.TotalPages, v.TotalResults), true
	case *tmdb.Collection:
		return f.FormatCollection(v), true
	case *tmdb.Company:
		return f.FormatCompany(v), true
	case *tmdb.List:
		return f.FormatList(v), true
	case *tmdb.Account:
		return f.FormatAccount(v), true
	case tmdb.ImageConfiguration:
		return f.FormatImageConfiguration(v), true
	case *tmdb.Page[tmdb.ChangedItem]:
		return f.FormatChangedItems(v.Results) + f.FormatPageFooter(v.Page, v.TotalPages, v.TotalResults), true
	case tmdb.WriteResult:
		return f.FormatWriteResult(v), true
	case string:
		return v + "\n", true
	default:
		return "", false
	}
}
