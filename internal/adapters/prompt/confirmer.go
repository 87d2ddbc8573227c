// Package prompt asks the user yes/no questions on the terminal.
package prompt

import (
	"errors"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/comma/internal/adapters/detector"
	"go.trai.ch/comma/internal/core/ports"
	"go.trai.ch/comma/internal/ui/output"
	"go.trai.ch/comma/internal/ui/style"
	"go.trai.ch/zerr"
)

// Confirmer implements ports.Confirmer by reading answers line by line.
type Confirmer struct {
	in          io.Reader
	out         *termenv.Output
	interactive bool
	logger      ports.Logger
}

// New creates a Confirmer reading from in and writing questions to w.
func New(in io.Reader, w io.Writer, env detector.Environment, logger ports.Logger) *Confirmer {
	return &Confirmer{
		in:          in,
		out:         output.NewWithProfile(w, env.ColorProfile),
		interactive: env.Interactive(),
		logger:      logger,
	}
}

// Confirm asks question until it gets an answer. An empty answer selects the
// default, end of input declines.
func (c *Confirmer) Confirm(question string, defaultYes bool) (bool, error) {
	if !c.interactive && c.logger != nil {
		c.logger.Warn("asking for confirmation but stdin is not an interactive terminal")
	}

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	prompt := c.out.String(style.Question + " " + question + " " + hint + " ").
		Foreground(termenv.RGBColor(string(style.Iris))).
		String()

	for {
		if _, err := c.out.WriteString(prompt); err != nil {
			return false, zerr.Wrap(err, "failed to write prompt")
		}

		line, err := c.readLine()
		if err != nil && !errors.Is(err, io.EOF) {
			return false, zerr.Wrap(err, "failed to read answer")
		}
		eof := err != nil

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			if eof {
				_, _ = c.out.WriteString("\n")
				return false, nil
			}
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if eof {
			_, _ = c.out.WriteString("\n")
			return false, nil
		}
	}
}

// readLine reads up to and including the next newline, one byte at a time.
// Input after the answer stays unread for the program that runs next.
func (c *Confirmer) readLine() (string, error) {
	var (
		line []byte
		b    [1]byte
	)
	for {
		n, err := c.in.Read(b[:])
		if n == 1 {
			if b[0] == '\n' {
				return string(line), nil
			}
			line = append(line, b[0])
		}
		if err != nil {
			return string(line), err
		}
	}
}
