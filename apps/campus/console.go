package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"syscall"

	"golang.org/x/term"
)

var readPasswordFunc = term.ReadPassword // mockable

// console wraps the prompt-for-line and display primitives the dashboards
// run on. With interactive unset (tests, piped input) screen clearing,
// pauses and password hiding are disabled.
type console struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newConsole(in io.Reader, out io.Writer, interactive bool) *console {
	return &console{in: bufio.NewReader(in), out: out, interactive: interactive}
}

func (c *console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// prompt prints label and reads one trimmed line.
// ok is false once input is exhausted.
func (c *console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func (c *console) promptPassword(label string) (string, bool) {
	if !c.interactive {
		return c.prompt(label)
	}
	fmt.Fprint(c.out, label)
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(c.out)
	if err != nil {
		return "", false
	}
	return string(pwd), true
}

func (c *console) clear() {
	if c.interactive {
		fmt.Fprint(c.out, "\033[H\033[2J")
	}
}

func (c *console) pause() {
	if !c.interactive {
		return
	}
	fmt.Fprint(c.out, "\nPress Enter to continue...")
	_, _ = c.in.ReadString('\n')
}
