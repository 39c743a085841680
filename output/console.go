package output

import (
	"fmt"
	"strings"

	"github.com/s0up4200/marquee/tmdb"
)

const (
	branch     = "├── "
	lastBranch = "╰── "
	pipe       = "│   "
	blank      = "    "
)

// ConsoleFormatter renders entities as indented trees for terminals
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// treeItem is one top-level node: a headline and its detail lines
type treeItem struct {
	headline string
	details  []string
}

func writeTree(sb *strings.Builder, items []treeItem) {
	for i, item := range items {
		isLast := i == len(items)-1
		prefix, indent := branch, pipe
		if isLast {
			prefix, indent = lastBranch, blank
		}

		fmt.Fprintf(sb, "%s%s\n", prefix, item.headline)
		for _, line := range item.details {
			fmt.Fprintf(sb, "%s%s\n", indent, line)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}
}

func writeHeader(sb *strings.Builder, noun string, count int) {
	sb.WriteString("\n")
	sb.WriteString(noun)
	if count != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(sb, " (%d):\n\n", count)
}

func writeFields(sb *strings.Builder, fields [][2]string) {
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		fmt.Fprintf(sb, "%-14s %s\n", f[0]+":", f[1])
	}
}

// FormatMovieList formats a list of movies for console display
func (f *ConsoleFormatter) FormatMovieList(movies []tmdb.MovieReduced) string {
	if len(movies) == 0 {
		return "No movies found\n"
	}

	var sb strings.Builder
	writeHeader(&sb, "Movie", len(movies))

	items := make([]treeItem, 0, len(movies))
	for _, m := range movies {
		items = append(items, treeItem{headline: movieHeadline(m.MovieThumbnail), details: movieDetails(m)})
	}
	writeTree(&sb, items)

	sb.WriteString("\n")
	return sb.String()
}

// FormatMovie formats a full movie record
func (f *ConsoleFormatter) FormatMovie(m *tmdb.Movie) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s\n\n", movieHeadline(m.MovieThumbnail))

	genres := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, g.Name)
	}
	directors := make([]string, 0)
	for _, d := range m.Directors() {
		directors = append(directors, d.Name)
	}

	writeFields(&sb, [][2]string{
		{"Tagline", str(m.Tagline)},
		{"Status", str(m.Status)},
		{"Runtime", minutes(m.Runtime)},
		{"Rating", rating(m.VoteAverage, m.VoteCount)},
		{"Genres", strings.Join(genres, ", ")},
		{"Directed by", strings.Join(directors, ", ")},
		{"Budget", money(m.Budget)},
		{"Revenue", money(m.Revenue)},
		{"IMDb", str(m.IMDbID)},
		{"Homepage", str(m.Homepage)},
	})
	if m.BelongsToCollection != nil {
		fmt.Fprintf(&sb, "%-14s %s (%d)\n", "Collection:", m.BelongsToCollection.Name, m.BelongsToCollection.ID)
	}

	if overview := str(m.Overview); overview != "" {
		fmt.Fprintf(&sb, "\n%s\n", overview)
	}

	if len(m.Cast) > 0 {
		sb.WriteString("\nCast:\n")
		cast := m.Cast
		if len(cast) > 10 {
			cast = cast[:10]
		}
		items := make([]treeItem, 0, len(cast))
		for _, c := range cast {
			headline := c.Name
			if character := str(c.Character); character != "" {
				headline += " as " + character
			}
			items = append(items, treeItem{headline: headline})
		}
		writeTree(&sb, items)
	}

	if trailers := m.Trailers(); len(trailers) > 0 {
		sb.WriteString("\nTrailers:\n")
		items := make([]treeItem, 0, len(trailers))
		for _, v := range trailers {
			item := treeItem{headline: v.Name}
			if u := v.WatchURL(); u != "" {
				item.details = []string{u}
			}
			items = append(items, item)
		}
		writeTree(&sb, items)
	}

	fmt.Fprintf(&sb, "\n%d keywords, %d translations, %d posters, %d backdrops\n\n",
		len(m.Keywords), len(m.Translations), len(m.Images.Posters), len(m.Images.Backdrops))

	return sb.String()
}

// FormatPeople formats a list of people
func (f *ConsoleFormatter) FormatPeople(people []tmdb.PersonReduced) string {
	if len(people) == 0 {
		return "No people found\n"
	}

	var sb strings.Builder
	writeHeader(&sb, "Person", len(people))

	items := make([]treeItem, 0, len(people))
	for _, p := range people {
		item := treeItem{headline: fmt.Sprintf("%s [%d]", p.Name, p.ID)}
		if dept := str(p.KnownForDepartment); dept != "" {
			item.details = append(item.details, "Known for: "+dept)
		}
		if len(p.KnownFor) > 0 {
			titles := make([]string, 0, len(p.KnownFor))
			for _, m := range p.KnownFor {
				titles = append(titles, m.DisplayTitle())
			}
			item.details = append(item.details, "Movies: "+strings.Join(titles, ", "))
		}
		items = append(items, item)
	}
	writeTree(&sb, items)

	sb.WriteString("\n")
	return sb.String()
}

// FormatPerson formats a full person record
func (f *ConsoleFormatter) FormatPerson(p *tmdb.Person) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s [%d]\n\n", p.Name, p.ID)

	gender := ""
	if p.Gender != nil {
		gender = p.Gender.String()
	}
	writeFields(&sb, [][2]string{
		{"Known for", str(p.KnownForDepartment)},
		{"Gender", gender},
		{"Born", strings.TrimSpace(str(p.Birthday) + " " + inParens(str(p.PlaceOfBirth)))},
		{"Died", str(p.Deathday)},
		{"Also known as", strings.Join(p.AlsoKnownAs, ", ")},
		{"IMDb", str(p.IMDbID)},
		{"Homepage", str(p.Homepage)},
	})

	if bio := str(p.Biography); bio != "" {
		fmt.Fprintf(&sb, "\n%s\n", bio)
	}

	if credits := p.MovieCredits.Cast; len(credits) > 0 {
		sb.WriteString("\nActing credits:\n")
		items := make([]treeItem, 0, len(credits))
		for _, c := range credits {
			headline := movieHeadline(c.MovieThumbnail)
			if character := str(c.Character); character != "" {
				headline += " as " + character
			}
			items = append(items, treeItem{headline: headline})
		}
		writeTree(&sb, items)
	}

	if credits := p.MovieCredits.Crew; len(credits) > 0 {
		sb.WriteString("\nCrew credits:\n")
		items := make([]treeItem, 0, len(credits))
		for _, c := range credits {
			items = append(items, treeItem{headline: movieHeadline(c.MovieThumbnail) + inParens(str(c.Job))})
		}
		writeTree(&sb, items)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatCollection formats a collection with its parts
func (f *ConsoleFormatter) FormatCollection(c *tmdb.Collection) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s [%d]\n", c.Name, c.ID)
	if overview := str(c.Overview); overview != "" {
		fmt.Fprintf(&sb, "\n%s\n", overview)
	}
	sb.WriteString(f.FormatMovieList(c.Parts))

	return sb.String()
}

// FormatCompany formats a company record
func (f *ConsoleFormatter) FormatCompany(c *tmdb.Company) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s [%d]\n\n", c.Name, c.ID)

	parent := ""
	if c.ParentCompany != nil {
		parent = c.ParentCompany.Name
	}
	writeFields(&sb, [][2]string{
		{"Country", str(c.OriginCountry)},
		{"Headquarters", str(c.Headquarters)},
		{"Parent", parent},
		{"Homepage", str(c.Homepage)},
		{"Logos", fmt.Sprint(len(c.Logos))},
	})

	if description := str(c.Description); description != "" {
		fmt.Fprintf(&sb, "\n%s\n", description)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatList formats a user list with its movies
func (f *ConsoleFormatter) FormatList(l *tmdb.List) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s [%s]\n", l.Name, l.ID)
	if by := str(l.CreatedBy); by != "" {
		fmt.Fprintf(&sb, "by %s\n", by)
	}
	if description := str(l.Description); description != "" {
		fmt.Fprintf(&sb, "\n%s\n", description)
	}
	sb.WriteString(f.FormatMovieList(l.Items))

	return sb.String()
}

// FormatAccount formats the account behind the session
func (f *ConsoleFormatter) FormatAccount(a *tmdb.Account) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s [%d]\n\n", a.Username, a.ID)
	adult := ""
	if a.IncludeAdult != nil {
		adult = fmt.Sprint(*a.IncludeAdult)
	}
	writeFields(&sb, [][2]string{
		{"Name", str(a.Name)},
		{"Language", str(a.ISO639_1)},
		{"Region", str(a.ISO3166_1)},
		{"Adult", adult},
	})

	sb.WriteString("\n")
	return sb.String()
}

// FormatImageConfiguration formats the image catalog
func (f *ConsoleFormatter) FormatImageConfiguration(cfg tmdb.ImageConfiguration) string {
	var sb strings.Builder

	sb.WriteString("\nImage configuration:\n\n")
	writeFields(&sb, [][2]string{
		{"Base URL", cfg.BaseURL},
		{"Secure URL", cfg.SecureBaseURL},
		{"Loaded", cfg.LoadedAt.Format("2006-01-02 15:04:05")},
	})
	sb.WriteString("\n")

	kinds := []tmdb.ImageKind{tmdb.ImageKindPoster, tmdb.ImageKindBackdrop, tmdb.ImageKindLogo, tmdb.ImageKindProfile, tmdb.ImageKindStill}
	items := make([]treeItem, 0, len(kinds))
	for _, kind := range kinds {
		sizes, ok := cfg.Sizes[kind.String()]
		if !ok {
			continue
		}
		items = append(items, treeItem{headline: kind.String(), details: []string{strings.Join(sizes, " ")}})
	}
	writeTree(&sb, items)

	sb.WriteString("\n")
	return sb.String()
}

// FormatChangedItems formats the ids from a changes feed
func (f *ConsoleFormatter) FormatChangedItems(items []tmdb.ChangedItem) string {
	if len(items) == 0 {
		return "No changes found\n"
	}

	var sb strings.Builder
	writeHeader(&sb, "Change", len(items))

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, fmt.Sprint(item.ID))
	}
	sb.WriteString(strings.Join(ids, "\n"))

	sb.WriteString("\n\n")
	return sb.String()
}

// FormatSubFetchReport lists supplementary calls that failed
func (f *ConsoleFormatter) FormatSubFetchReport(report tmdb.SubFetchReport) string {
	failed := report.Failed()
	if len(failed) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Incomplete: %d of %d supplementary calls failed\n", len(failed), len(report.Results))
	items := make([]treeItem, 0, len(failed))
	for _, r := range failed {
		items = append(items, treeItem{headline: fmt.Sprintf("%s: %s", r.Name, r.Status)})
	}
	writeTree(&sb, items)

	return sb.String()
}

// FormatWriteResult formats the acknowledgement of a write call
func (f *ConsoleFormatter) FormatWriteResult(r tmdb.WriteResult) string {
	return fmt.Sprintf("%s (code %d)\n", r.Message, r.Code)
}

// FormatPageFooter reports the position of a page within its listing
func (f *ConsoleFormatter) FormatPageFooter(page, totalPages, totalResults int) string {
	return fmt.Sprintf("Page %d of %d (%d results)\n", page, totalPages, totalResults)
}

func movieHeadline(m tmdb.MovieThumbnail) string {
	headline := m.Title
	if year, ok := m.ReleaseYear(); ok {
		headline += fmt.Sprintf(" (%d)", year)
	}
	return fmt.Sprintf("%s [%d]", headline, m.ID)
}

func movieDetails(m tmdb.MovieReduced) []string {
	var details []string
	if m.OriginalTitle != nil && *m.OriginalTitle != m.Title {
		details = append(details, "Original title: "+*m.OriginalTitle)
	}
	if r := rating(m.VoteAverage, m.VoteCount); r != "" {
		details = append(details, "Rating: "+r)
	}
	return details
}

func rating(average *float64, count *int) string {
	if average == nil {
		return ""
	}
	if count == nil {
		return fmt.Sprintf("%.1f", *average)
	}
	return fmt.Sprintf("%.1f (%d votes)", *average, *count)
}

func minutes(v *int) string {
	if v == nil || *v == 0 {
		return ""
	}
	return fmt.Sprintf("%d min", *v)
}

func money(v *int64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return fmt.Sprintf("$%d", *v)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func inParens(s string) string {
	if s == "" {
		return ""
	}
	return " (" + s + ")"
}
