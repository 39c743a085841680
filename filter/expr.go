package filter

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/marquee/tmdb"
)

// Filter is a compiled boolean expression over a movie. It is safe for
// concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// Compiler turns expressions into filters
type Compiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helperFuncs: make(map[string]any, 16),
	}
	addHelperFunctions(c.helperFuncs)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression with the default compiler
func Compile(expression string) (*Filter, error) {
	return NewCompiler().Compile(expression)
}

// Compile compiles an expression into an executable filter
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	env := make(map[string]any, len(c.helperFuncs)+16)
	maps.Copy(env, c.helperFuncs)
	addMovieFields(env, tmdb.MovieReduced{})

	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}

	return f, nil
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a movie
func (f *Filter) Match(movie tmdb.MovieReduced) (bool, error) {
	env := make(map[string]any, len(f.helpers)+16)
	maps.Copy(env, f.helpers)
	addMovieFields(env, movie)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieID:    movie.ID,
			MovieTitle: movie.Title,
			Err:        err,
		}
	}

	// AsBool at compile time guarantees the type
	return result.(bool), nil
}

// Evaluate reports whether a movie matches, treating evaluation errors as no match
func (f *Filter) Evaluate(movie tmdb.MovieReduced) bool {
	ok, err := f.Match(movie)
	return err == nil && ok
}

// Apply returns the movies that match, in input order. Movies that fail to
// evaluate are skipped and their errors joined into the returned error.
func (f *Filter) Apply(ctx context.Context, movies []tmdb.MovieReduced) ([]tmdb.MovieReduced, error) {
	matches := make([]tmdb.MovieReduced, 0, len(movies))
	var errs []error

	for _, movie := range movies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ok, err := f.Match(movie)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			matches = append(matches, movie)
		}
	}

	return matches, errors.Join(errs...)
}

// addHelperFunctions adds the movie-independent helper functions
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse(time.DateOnly, dateStr)
		return t
	}
	// String helpers; contains and startsWith are expr operators, these fold case
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}

// addMovieFields exposes a movie to expressions. Unset optional fields read
// as zero values; isSet tells them apart.
func addMovieFields(env map[string]any, movie tmdb.MovieReduced) {
	year, _ := movie.ReleaseYear()
	released, _ := movie.Released()

	env["Movie"] = movie
	env["ID"] = movie.ID
	env["Title"] = movie.Title
	env["OriginalTitle"] = deref(movie.OriginalTitle)
	env["Year"] = year
	env["Released"] = released
	env["Overview"] = deref(movie.Overview)
	env["Rating"] = deref(movie.VoteAverage)
	env["Votes"] = deref(movie.VoteCount)
	env["Popularity"] = deref(movie.Popularity)
	env["Language"] = deref(movie.OriginalLanguage)
	env["Adult"] = deref(movie.Adult)
	env["GenreIDs"] = movie.GenreIDs

	set := map[string]bool{
		"original_title":    movie.OriginalTitle != nil,
		"release_date":      movie.ReleaseDate != nil,
		"poster":            movie.Poster != nil,
		"overview":          movie.Overview != nil,
		"vote_average":      movie.VoteAverage != nil,
		"vote_count":        movie.VoteCount != nil,
		"popularity":        movie.Popularity != nil,
		"backdrop":          movie.Backdrop != nil,
		"original_language": movie.OriginalLanguage != nil,
		"adult":             movie.Adult != nil,
		"video":             movie.Video != nil,
	}
	env["isSet"] = func(field string) bool {
		return set[field]
	}

	genres := movie.GenreIDs
	env["hasGenre"] = func(id int) bool {
		return slices.Contains(genres, int64(id))
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
