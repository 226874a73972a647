// Package cli implements the interactive prompt loop around the generator.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/internal/service"
)

const divider = "----------------------------------------"

// Run drives the interactive session, reading prompts from r and writing to
// w until the user declines to continue or input is exhausted.
func Run(r io.Reader, w io.Writer, svc *service.GeneratorService) {
	scanner := bufio.NewScanner(r)

	fmt.Fprintln(w, "Welcome to the passmint password generator!")
	fmt.Fprintln(w, strings.Repeat("=", 40))

	for {
		fmt.Fprintln(w, "\nPassword Options:")
		length, err := readInt(scanner, w, "Enter password length (default 12): ", service.DefaultLength)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}

		fmt.Fprintln(w, "\nCharacter types to include:")
		lowercase := readYesNo(scanner, w, "Include lowercase letters? (Y/n): ")
		uppercase := readYesNo(scanner, w, "Include uppercase letters? (Y/n): ")
		digits := readYesNo(scanner, w, "Include numbers? (Y/n): ")
		symbols := readYesNo(scanner, w, "Include symbols? (Y/n): ")

		count, err := readInt(scanner, w, "How many passwords to generate? (default 1): ", 1)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}
		if count < 1 {
			count = 1
		}

		req := model.GenerateRequest{
			Length:    length,
			Lowercase: &lowercase,
			Uppercase: &uppercase,
			Digits:    &digits,
			Symbols:   &symbols,
		}

		if count > 1 {
			fmt.Fprintln(w, "\nGenerated Passwords:")
		} else {
			fmt.Fprintln(w, "\nGenerated Password:")
		}
		fmt.Fprintln(w, divider)

		if count == 1 {
			resp, err := svc.Generate(req)
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(w, "Password: %s\n", resp.Password)
			fmt.Fprintf(w, "Strength: %s (%d/4)\n", resp.Strength.Strength, resp.Strength.Score)
			fmt.Fprintf(w, "Length: %d characters\n", resp.Length)
		} else {
			resp, err := svc.GenerateBatch(model.BatchRequest{Count: count, GenerateRequest: req})
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				continue
			}
			for i, p := range resp.Passwords {
				fmt.Fprintf(w, "%2d. %s (Strength: %s)\n", i+1, p.Password, p.Strength.Strength)
			}
		}

		fmt.Fprint(w, "\nGenerate more passwords? (Y/n): ")
		if !scanner.Scan() || isNo(scanner.Text()) {
			fmt.Fprintln(w, "Thanks for using the password generator!")
			return
		}
	}
}

// readInt prompts for an integer. Empty input returns the fallback; anything
// else that fails to parse is an error, surfaced so the round restarts.
func readInt(scanner *bufio.Scanner, w io.Writer, prompt string, fallback int) (int, error) {
	fmt.Fprint(w, prompt)
	if !scanner.Scan() {
		return fallback, nil
	}
	s := strings.TrimSpace(scanner.Text())
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// readYesNo prompts for a yes/no answer that defaults to yes: only an
// explicit "n" disables.
func readYesNo(scanner *bufio.Scanner, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)
	if !scanner.Scan() {
		return true
	}
	return !isNo(scanner.Text())
}

func isNo(s string) bool {
	return strings.ToLower(strings.TrimSpace(s)) == "n"
}
