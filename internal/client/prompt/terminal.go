package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	getState     = term.GetState
	restore      = term.Restore
)

const escape = "\x1b"

// Terminal is a line-oriented Prompter.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

var _ Prompter = (*Terminal)(nil)

// NewTerminal prompts on out and reads from in. fd is the descriptor used
// for hidden input; when it is not a terminal, Secret reads a plain line.
func NewTerminal(in io.Reader, out io.Writer, fd int) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out, fd: fd}
}

// NewStdTerminal prompts on stdout and reads stdin.
func NewStdTerminal() *Terminal {
	return NewTerminal(os.Stdin, os.Stdout, int(os.Stdin.Fd()))
}

func (t *Terminal) Text(ctx context.Context, message string) (string, error) {
	if _, err := fmt.Fprint(t.out, message+"\n> "); err != nil {
		return "", err
	}
	return t.readLine(ctx)
}

func (t *Terminal) Secret(ctx context.Context, message string) (string, error) {
	if !isTerminal(t.fd) {
		return t.Text(ctx, message)
	}
	if _, err := fmt.Fprint(t.out, message+": "); err != nil {
		return "", err
	}

	// An interrupted read leaves echo off; put the terminal back as it was.
	state, stateErr := getState(t.fd)
	b, err := await(ctx, func() ([]byte, error) { return readPassword(t.fd) })
	fmt.Fprintln(t.out)
	if errors.Is(err, ErrInterrupted) && stateErr == nil {
		_ = restore(t.fd, state)
	}
	if errors.Is(err, io.EOF) && len(b) == 0 {
		return "", ErrCanceled
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (t *Terminal) Confirm(ctx context.Context, message, help string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		text := fmt.Sprintf("%s (%s)", message, hint)
		if help != "" {
			text += "\n[" + help + "]"
		}
		answer, err := t.Text(ctx, text)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(t.out, "Please answer y or n.")
	}
}

func (t *Terminal) Select(ctx context.Context, message string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("select: no options")
	}

	var sb strings.Builder
	sb.WriteString(message)
	for i, o := range options {
		fmt.Fprintf(&sb, "\n  %d) %s", i+1, o)
	}

	for {
		answer, err := t.Text(ctx, sb.String())
		if err != nil {
			return 0, err
		}
		if i, ok := matchOption(answer, options); ok {
			return i, nil
		}
		fmt.Fprintf(t.out, "Please pick a number between 1 and %d.\n", len(options))
	}
}

func matchOption(answer string, options []string) (int, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	for i, o := range options {
		if strings.EqualFold(answer, o) {
			return i, true
		}
	}
	return 0, false
}

// readLine returns one trimmed line. EOF on an empty line and a lone ESC
// mean the operator backed out; a partial line before EOF is returned.
func (t *Terminal) readLine(ctx context.Context) (string, error) {
	line, err := await(ctx, func() (string, error) { return t.in.ReadString('\n') })
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if err != nil && strings.TrimSpace(line) == "" {
		fmt.Fprintln(t.out)
		return "", ErrCanceled
	}
	line = strings.TrimSpace(line)
	if line == escape {
		return "", ErrCanceled
	}
	return line, nil
}

// await runs a blocking read on a helper goroutine so that a cancelled
// context surfaces as ErrInterrupted. The value read so far is returned with
// the error so EOF handling can inspect it.
func await[T any](ctx context.Context, read func() (T, error)) (T, error) {
	var zero T
	if ctx.Err() != nil {
		return zero, ErrInterrupted
	}

	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := read()
		ch <- result{v, err}
	}()

	select {
	case <-ctx.Done():
		return zero, ErrInterrupted
	case r := <-ch:
		return r.v, r.err
	}
}
