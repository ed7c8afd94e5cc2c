// Package matrix defines the fixed build matrix for the esb crate and
// the runner that executes it against cargo.
package matrix

import (
	"github.com/cockroachdb/errors"
)

// Entry is one build combination: a chip feature set paired with the
// compilation target it must build for.
type Entry struct {
	Feature string
	Target  string
}

// Invocation returns the full argument vector for this entry: the base
// command followed by the feature and target flags, in that order.
func (e Entry) Invocation(base []string) []string {
	args := make([]string, 0, len(base)+2)
	args = append(args, base...)
	args = append(args, "--features="+e.Feature, "--target="+e.Target)

	return args
}

func (e Entry) String() string {
	return e.Feature + " on " + e.Target
}

// Matrix is an ordered list of entries. Order determines execution and
// output order.
type Matrix []Entry

// New pairs features and targets positionally. The two lists must be of
// equal length.
func New(features, targets []string) (Matrix, error) {
	if len(features) != len(targets) {
		return nil, errors.Newf(
			"feature list (%d) and target list (%d) must have equal length",
			len(features), len(targets),
		)
	}

	m := make(Matrix, len(features))
	for i := range features {
		m[i] = Entry{Feature: features[i], Target: targets[i]}
	}

	return m, nil
}

// Default returns the build matrix for the supported nRF5x chips.
func Default() Matrix {
	return Matrix{
		{Feature: "51", Target: "thumbv6m-none-eabi"},
		{Feature: "52810", Target: "thumbv7em-none-eabi"},
		{Feature: "52840", Target: "thumbv7em-none-eabihf"},
	}
}
