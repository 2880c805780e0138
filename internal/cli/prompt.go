package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// PromptConfirmation asks a yes/no question and reports whether the user
// answered yes. It reads a single keypress in raw mode; when the terminal
// cannot be switched to raw mode (pipes, CI) it falls back to line input.
func PromptConfirmation(question string) bool {
	fmt.Print(question + " (y/n): ")

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		var response string
		fmt.Scanln(&response)
		return response == "y" || response == "Y"
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	var buf [1]byte
	if _, err := os.Stdin.Read(buf[:]); err != nil {
		return false
	}

	// Raw mode suppresses echo; print the answer back.
	fmt.Printf("%c\n", buf[0])

	return buf[0] == 'y' || buf[0] == 'Y'
}
