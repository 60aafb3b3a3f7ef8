package matcher

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// ErrTimeout is returned by Search when the backtracking engine gives up.
var ErrTimeout = errors.New("match timeout")

// BacktrackingMatcher implements Matcher using regexp2, a port of the .NET
// engine. It explores alternatives depth first and retries on failure, which
// is what makes nested unbounded repetition expensive.
//
// Thread Safety: a compiled regexp2.Regexp is safe for concurrent searches,
// but the harness never shares one.
type BacktrackingMatcher struct {
	pattern types.Pattern
	re      *regexp2.Regexp
}

// NewBacktracking compiles pattern with regexp2.
// RE2 compatibility mode is deliberately not used: the point is Perl-style
// backtracking semantics.
func NewBacktracking(pattern types.Pattern, opts Options) (*BacktrackingMatcher, error) {
	flags := regexp2.None
	if pattern.DotAll {
		flags |= regexp2.Singleline
	}

	re, err := regexp2.Compile(pattern.Expr, flags)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile pattern %q for %s", pattern.Expr, pattern.ID)
	}
	// regexp2 defaults to no timeout; leave it alone unless asked.
	if opts.Timeout > 0 {
		re.MatchTimeout = opts.Timeout
	}

	return &BacktrackingMatcher{pattern: pattern, re: re}, nil
}

// Search finds the first match of the pattern in input.
func (m *BacktrackingMatcher) Search(input string) (bool, error) {
	match, err := m.re.FindStringMatch(input)
	if err != nil {
		if strings.Contains(err.Error(), "match timeout") {
			return false, errors.Wrapf(ErrTimeout, "pattern %s after %v", m.pattern.ID, m.re.MatchTimeout)
		}
		return false, errors.Wrapf(err, "regex match error for %s", m.pattern.ID)
	}
	return match != nil, nil
}

// Engine returns types.EngineBacktracking.
func (m *BacktrackingMatcher) Engine() types.Engine {
	return types.EngineBacktracking
}

// Close releases resources (no-op for regexp2).
func (m *BacktrackingMatcher) Close() error {
	return nil
}
