//go:build cgo && hyperscan

package matcher

import (
	"github.com/flier/gohs/hyperscan"
	"github.com/pkg/errors"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// HyperscanMatcher implements Matcher using Hyperscan, an automaton engine
// that never backtracks. Hyperscan does not track capture groups or match
// start offsets; for a leftmost search timing only the first reported match
// matters, so SingleMatch is enough.
type HyperscanMatcher struct {
	pattern types.Pattern
	db      hyperscan.BlockDatabase
	scratch *hyperscan.Scratch
}

// NewHyperscan compiles pattern into a Hyperscan block database.
func NewHyperscan(pattern types.Pattern) (Matcher, error) {
	// Both patterns can match the empty string, which Hyperscan rejects
	// without AllowEmpty.
	flags := hyperscan.AllowEmpty | hyperscan.SingleMatch
	if pattern.DotAll {
		flags |= hyperscan.DotAll
	}
	p := hyperscan.NewPattern(pattern.Expr, flags)
	p.Id = 0

	db, err := hyperscan.NewBlockDatabase(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compile Hyperscan database for %s", pattern.ID)
	}

	scratch, err := hyperscan.NewScratch(db)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to allocate Hyperscan scratch")
	}

	return &HyperscanMatcher{pattern: pattern, db: db, scratch: scratch}, nil
}

// Search scans input once and reports whether any match was found.
func (m *HyperscanMatcher) Search(input string) (bool, error) {
	found := false
	onMatch := func(id uint, from, to uint64, flags uint, context interface{}) error {
		found = true
		return nil
	}

	// An empty input still has to be scanned so empty matches are reported.
	if err := m.db.Scan([]byte(input), m.scratch, onMatch, nil); err != nil {
		return false, errors.Wrapf(err, "Hyperscan scan failed for %s", m.pattern.ID)
	}
	return found, nil
}

// Engine returns types.EngineHyperscan.
func (m *HyperscanMatcher) Engine() types.Engine {
	return types.EngineHyperscan
}

// Close releases resources.
func (m *HyperscanMatcher) Close() error {
	if m.scratch != nil {
		if err := m.scratch.Free(); err != nil {
			return errors.Wrap(err, "failed to free scratch")
		}
		m.scratch = nil
	}
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			return errors.Wrap(err, "failed to close database")
		}
		m.db = nil
	}
	return nil
}
