package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer answers a yes/no question before a mutating action.
// Injected so tests can script the answer instead of reading a
// terminal.
type Confirmer interface {
	// Confirm shows the prompt and reports whether the operator
	// answered affirmatively.
	Confirm(prompt string) bool
}

// stdinConfirmer reads one line from an input stream. "y" and "yes"
// (case-insensitive) confirm; anything else, including an empty line
// or a read failure, declines.
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

func newStdinConfirmer() *stdinConfirmer {
	return &stdinConfirmer{in: os.Stdin, out: os.Stdout}
}

func (c *stdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprint(c.out, prompt)

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
