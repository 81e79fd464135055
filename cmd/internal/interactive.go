package internal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// IsInteractive returns true if the given file descriptor is a TTY.
// This is used to determine if interactive prompts should be shown.
func IsInteractive(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Confirm prints the prompt and reads a yes/no answer from in.
// Only "y" and "yes" (case-insensitive) count as confirmation.
func Confirm(out io.Writer, in io.Reader, prompt string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", prompt)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
