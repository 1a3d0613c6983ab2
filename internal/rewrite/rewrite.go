package rewrite

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/robgonnella/bumpver/internal/logger"
)

// ErrNoMatch is returned when a target file contains no version assignment
var ErrNoMatch = errors.New("no line matched the version pattern")

// ErrAmbiguousMatch is returned when a target file contains more than one
// version assignment
var ErrAmbiguousMatch = errors.New("multiple lines matched the version pattern")

// DefaultPattern matches a single version assignment line: optional
// indentation, an identifier made of underscores and the word "version",
// "=", a quoted literal, and optional trailing ";" or ",". Submatches are
// prefix, open quote, value, close quote and trailing text - overriding
// patterns must capture the same five groups.
const DefaultPattern = `^([ \t]*_*version_*\s*=\s*)(['"])([^\s;,'"]*)(['"])([ \t]*[;,]?[ \t]*)$`

// expected number of capture groups in a line pattern
const patternGroups = 5

// Match is the structured result of locating a version assignment line
type Match struct {
	// Line is the zero based index of the matched line
	Line int
	// Value is the currently quoted version literal
	Value string
	// prefix is everything before the opening quote
	prefix string
	// trailing is everything after the closing quote
	trailing string
}

// CompilePattern compiles a line pattern and validates its group shape
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)

	if err != nil {
		return nil, fmt.Errorf("invalid version pattern %q: %w", pattern, err)
	}

	if re.NumSubexp() != patternGroups {
		return nil, fmt.Errorf(
			"invalid version pattern %q: expected %d capture groups, got %d",
			pattern,
			patternGroups,
			re.NumSubexp(),
		)
	}

	return re, nil
}

// Locate finds the single line of content matching pattern. Zero matches
// return ErrNoMatch, more than one return ErrAmbiguousMatch.
func Locate(content []byte, pattern *regexp.Regexp) (Match, error) {
	lines := strings.Split(string(content), "\n")

	found := false

	var match Match

	for i, line := range lines {
		groups := pattern.FindStringSubmatch(line)

		if groups == nil {
			continue
		}

		if found {
			return Match{}, fmt.Errorf("%w: lines %d and %d", ErrAmbiguousMatch, match.Line+1, i+1)
		}

		found = true

		match = Match{
			Line:     i,
			Value:    groups[3],
			prefix:   groups[1],
			trailing: groups[5],
		}
	}

	if !found {
		return Match{}, ErrNoMatch
	}

	return match, nil
}

// Substitute returns content with the matched line's quoted literal
// replaced by newVersion. Quote style normalizes to double quotes;
// everything else on the line is preserved exactly. Substitute is pure -
// it never touches the filesystem.
func Substitute(content []byte, match Match, newVersion string) []byte {
	lines := strings.Split(string(content), "\n")

	lines[match.Line] = match.prefix + `"` + newVersion + `"` + match.trailing

	return []byte(strings.Join(lines, "\n"))
}

// Rewriter rewrites version assignments in target files
type Rewriter struct {
	dryRun bool
	log    logger.Logger
}

// NewRewriter returns a new instance of Rewriter. With dryRun set every
// rewrite is computed and reported but nothing is written.
func NewRewriter(dryRun bool) *Rewriter {
	return &Rewriter{
		dryRun: dryRun,
		log:    logger.New(),
	}
}

// RewriteFile updates the single version assignment in the file at path,
// returning the previous version literal. On any error the file is left
// byte-for-byte unchanged.
func (r *Rewriter) RewriteFile(path string, pattern *regexp.Regexp, newVersion string) (string, error) {
	content, err := os.ReadFile(path)

	if err != nil {
		return "", err
	}

	match, err := Locate(content, pattern)

	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	updated := Substitute(content, match, newVersion)

	if r.dryRun {
		r.log.Info().
			Str("file", path).
			Str("old", match.Value).
			Str("new", newVersion).
			Msg("pretend: rewrite")

		return match.Value, nil
	}

	if err := os.WriteFile(path, updated, 0644); err != nil {
		return "", err
	}

	r.log.Info().
		Str("file", path).
		Str("old", match.Value).
		Str("new", newVersion).
		Msg("rewrote version assignment")

	return match.Value, nil
}

// WriteVersionFile overwrites the bare version file with version followed
// by a trailing newline. The version file holds no quoting so it is not
// pattern substituted.
func (r *Rewriter) WriteVersionFile(path, version string) error {
	if r.dryRun {
		r.log.Info().
			Str("file", path).
			Str("new", version).
			Msg("pretend: write version file")

		return nil
	}

	return os.WriteFile(path, []byte(version+"\n"), 0644)
}

// ReadVersionFile reads the bare version file, stripping the trailing
// newline
func ReadVersionFile(path string) (string, error) {
	raw, err := os.ReadFile(path)

	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(raw), "\r\n"), nil
}
