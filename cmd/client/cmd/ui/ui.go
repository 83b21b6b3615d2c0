// Package ui holds the terminal helpers shared by the commands.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"linkedink/internal/domain/apperr"
)

var (
	In  = bufio.NewReader(os.Stdin)
	Out = color.Output
	Err = color.Error

	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	bold   = color.New(color.Bold)
	faint  = color.New(color.Faint)
)

func Success(format string, a ...any) {
	green.Fprintf(Out, "✓ "+format+"\n", a...)
}

func Warn(format string, a ...any) {
	yellow.Fprintf(Out, format+"\n", a...)
}

// Fail prints the user-facing message of err.
func Fail(err error) {
	red.Fprintln(Err, apperr.Message(err))
}

func Title(s string) {
	bold.Fprintln(Out, s)
}

func Hint(format string, a ...any) {
	faint.Fprintf(Out, format+"\n", a...)
}

func Println(a ...any) {
	fmt.Fprintln(Out, a...)
}

func Printf(format string, a ...any) {
	fmt.Fprintf(Out, format, a...)
}

// Prompt reads one line after printing label.
func Prompt(label string) (string, error) {
	fmt.Fprint(Out, label+": ")

	line, err := In.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Password reads without echo on a terminal and falls back to a plain line
// when stdin is piped.
func Password(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return Prompt(label)
	}

	fmt.Fprint(Out, label+": ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(Out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// ReadAll consumes the rest of stdin.
func ReadAll() (string, error) {
	b, err := io.ReadAll(In)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
