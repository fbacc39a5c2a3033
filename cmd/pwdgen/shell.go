package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chirichan/pwdgen/internal/sampler"
)

const shellHelp = `commands:
  g, generate              generate a new password
  c, copy                  copy the password to the clipboard
  len N                    set the length, clamped to [8, 20]
  upper|lower|digit|symbol [on|off]
                           enable, disable or toggle a character class
  show                     print the password and settings
  h, help                  this help
  q, quit                  exit`

// runShell generates once, then reads commands from in until quit or EOF.
func runShell(s *Session, in io.Reader, out io.Writer) error {
	if _, err := s.Generate(); err == nil {
		printState(s, out)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "pwdgen> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := handleShellLine(s, out, line); quit {
			break
		}
	}
	return scanner.Err()
}

// handleShellLine runs a single command. It reports true when the user quits.
func handleShellLine(s *Session, out io.Writer, line string) bool {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "q", "quit", "exit":
		return true
	case "h", "help", "?":
		fmt.Fprintln(out, shellHelp)
	case "show":
		printState(s, out)
	case "g", "generate":
		if pwd, err := s.Generate(); err == nil {
			fmt.Fprintln(out, pwd)
		} else if !errors.Is(err, sampler.ErrNoCharacterClassSelected) {
			fmt.Fprintln(out, "error:", err)
		}
	case "c", "copy":
		if err := s.Copy(); err != nil && !errors.Is(err, ErrCopyLocked) {
			fmt.Fprintln(out, "error:", err)
		}
	case "len", "length":
		if len(args) != 1 {
			fmt.Fprintln(out, "usage: len N")
			return false
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(out, "invalid length %q\n", args[0])
			return false
		}
		fmt.Fprintf(out, "length = %d\n", s.SetLength(n))
	default:
		c, err := sampler.ParseClass(cmd)
		if err != nil {
			fmt.Fprintf(out, "unknown command %q, type help\n", cmd)
			return false
		}
		var on bool
		switch {
		case len(args) == 0:
			on = s.ToggleClass(c)
		case strings.EqualFold(args[0], "on"):
			on = true
			s.SetClass(c, on)
		case strings.EqualFold(args[0], "off"):
			s.SetClass(c, on)
		default:
			fmt.Fprintf(out, "usage: %s [on|off]\n", c)
			return false
		}
		fmt.Fprintf(out, "%s = %t\n", c, on)
	}
	return false
}

func printState(s *Session, out io.Writer) {
	cfg := s.Config()
	classes := cfg.Classes.String()
	if cfg.Classes.Empty() {
		classes = "(none)"
	}
	fmt.Fprintf(out, "password: %s\nlength:   %d\nclasses:  %s\n", s.Password(), cfg.Length, classes)
}
