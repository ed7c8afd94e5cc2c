package matrix

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// baseCommand is the fixed command every invocation starts from.
var baseCommand = []string{"cargo", "build"}

// Executor runs one external command and reports whether it exited zero.
// cmdexec.Executor satisfies it; tests use a fake.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Runner executes a matrix one entry at a time, echoing each command
// line to out before it runs.
type Runner struct {
	exec      Executor
	out       io.Writer
	keepGoing bool
}

type Option func(*Runner)

// KeepGoing makes Run execute every entry and report all failures at
// the end, instead of stopping at the first failed build.
func KeepGoing() Option {
	return func(r *Runner) {
		r.keepGoing = true
	}
}

func NewRunner(exec Executor, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		exec: exec,
		out:  out,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes one build per entry, in order, blocking on each child
// process before starting the next. Under the default fail-fast policy
// it returns at the first non-zero exit and later entries never run.
// A nil return means every entry ran and succeeded.
func (r *Runner) Run(ctx context.Context, m Matrix) error {
	var failed []Entry

	for _, entry := range m {
		args := entry.Invocation(baseCommand)

		fmt.Fprintf(r.out, "Running `%s`...\n", strings.Join(args, " "))
		err := r.exec.Run(ctx, args[0], args[1:]...)
		fmt.Fprintln(r.out)

		if err == nil {
			continue
		}

		if !r.keepGoing {
			return errors.Wrapf(err, "build failed for %s", entry)
		}

		failed = append(failed, entry)
	}

	if len(failed) > 0 {
		names := make([]string, len(failed))
		for i, entry := range failed {
			names[i] = entry.String()
		}

		return errors.Newf("%d of %d builds failed: %s",
			len(failed), len(m), strings.Join(names, ", "))
	}

	return nil
}
