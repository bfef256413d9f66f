// Package confirmations asks the user yes/no questions before destructive
// operations.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/stamp/pkg/errors"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// ConsolePrompter implements types.Prompter. On a terminal it shows an
// interactive pterm confirm; otherwise it reads a line from the input, which
// keeps piped answers (`yes | stamp init ...`) working.
type ConsolePrompter struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

// NewConsolePrompter prompts on stdin/stdout.
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
}

// NewLinePrompter reads answers line by line from in, writing questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: in, out: out}
}

// AskYesNo asks question and defaults to no.
func (p *ConsolePrompter) AskYesNo(question string) (bool, error) {
	logger := logging.GetLogger("ui.confirmations")

	if p.interactive {
		answer, err := pterm.DefaultInteractiveConfirm.
			WithDefaultValue(false).
			Show(question)
		if err != nil {
			return false, errors.Wrap(err, errors.ErrInternal, "failed to read confirmation")
		}
		logger.Debug().Bool("answer", answer).Msg("Interactive confirmation")
		return answer, nil
	}

	reader := bufio.NewReader(p.in)
	for {
		if _, err := fmt.Fprintf(p.out, "%s [y/N]: ", question); err != nil {
			return false, errors.Wrap(err, errors.ErrInternal, "failed to write prompt")
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, errors.Wrap(err, errors.ErrInternal, "failed to read user input")
		}

		response := strings.ToLower(strings.TrimSpace(line))
		switch response {
		case "y", "yes":
			logger.Debug().Str("response", response).Msg("Line confirmation")
			return true, nil
		case "", "n", "no":
			logger.Debug().Str("response", response).Msg("Line confirmation")
			return false, nil
		}

		// Unrecognised answers are asked again until the input runs out.
		if err == io.EOF {
			return false, nil
		}
		if _, err := fmt.Fprintln(p.out, "Please answer y or n."); err != nil {
			return false, errors.Wrap(err, errors.ErrInternal, "failed to write prompt")
		}
	}
}
