// Package shared provides common utility functions used across multiple
// packages in the portview codebase.
package shared

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// RunDisplay executes an external display utility and passes its output
// through verbatim. When echo is set the command line is printed first.
func RunDisplay(argv []string, echo bool) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	if echo {
		fmt.Printf("Running command: %s\n", strings.Join(argv, " "))
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
