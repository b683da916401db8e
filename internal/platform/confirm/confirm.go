// Package confirm is the yes/no gate in front of destructive operations.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers a destructive-action prompt. A false answer is not an
// error; the operation is simply not performed.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Terminal prompts on out and reads a y/N answer from in.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Confirmer over the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) Confirm(prompt string) bool {
	fmt.Fprintf(t.out, "%s [y/N]: ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// Static always answers the same way. Used for --yes flags and tests.
type Static bool

func (s Static) Confirm(string) bool { return bool(s) }
