// Package shell is the single shell-interpreting command executor.
//
// RunLine hands the given line to "/bin/sh -c" unmodified. Whatever
// shell-significant characters the line contains participate in shell
// parsing. This is the only call site in the module that reaches a
// shell; the backup operation's unescaped substitution funnels through
// it so the surface stays one narrow, clearly labeled primitive.
package shell

import (
	"context"
	"os/exec"
)

// Interpreter is the shell used to parse command lines.
const Interpreter = "/bin/sh"

// Runner executes a single shell command line synchronously.
type Runner interface {
	RunLine(ctx context.Context, line string) error
}

// SystemRunner runs lines through the real system shell.
type SystemRunner struct{}

// RunLine executes line via the shell interpreter, blocking until the
// command completes. The error reflects the exit status only; output is
// not captured.
func (SystemRunner) RunLine(ctx context.Context, line string) error {
	return exec.CommandContext(ctx, Interpreter, "-c", line).Run()
}
