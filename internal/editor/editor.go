// Package editor launches the user's text editor on mcpreg's files.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/mcpreg/internal/errors"
)

// Open runs the preferred editor on path, attached to the terminal.
func Open(path string) error {
	name, args := Command()
	cmd := exec.Command(name, append(args, path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", name)
	}
	return nil
}

// Command returns the editor binary and its leading arguments.
// Lookup order: $EDITOR, $VISUAL, nano, vi. Values such as "code --wait"
// are split on whitespace.
func Command() (string, []string) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano", nil
	}
	return "vi", nil
}
