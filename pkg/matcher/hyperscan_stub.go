//go:build !cgo || !hyperscan

package matcher

import (
	"github.com/pkg/errors"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// NewHyperscan stub for builds without Hyperscan (non-CGO or missing hyperscan tag).
func NewHyperscan(pattern types.Pattern) (Matcher, error) {
	return nil, errors.Wrap(ErrEngineUnavailable, "Hyperscan requires CGO (build with CGO_ENABLED=1 and -tags=hyperscan)")
}
