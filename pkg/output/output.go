package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Level is the severity of a user-facing message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelHint
	LevelNote
	LevelWarning
	LevelError
	LevelCritical
)

// String returns the prefix label for the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "Debug"
	case LevelInfo:
		return "Info"
	case LevelHint:
		return "Hint"
	case LevelNote:
		return "Note"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

func (l Level) style() lipgloss.Style {
	switch l {
	case LevelDebug:
		return style.DebugStyle
	case LevelInfo:
		return style.InfoStyle
	case LevelHint:
		return style.HintStyle
	case LevelNote:
		return style.NoteStyle
	case LevelWarning:
		return style.WarningStyle
	case LevelError:
		return style.ErrorStyle
	default:
		return style.CriticalStyle
	}
}

// prefixWidth is the length of the longest label plus the colon.
const prefixWidth = len("Critical:")

// Output is the leveled message sink used by the CLI and the scaffolding
// engine. Every message is also mirrored to the structured log.
type Output struct {
	out       io.Writer
	errOut    io.Writer
	verbosity int
	color     bool
	exit      func(int)
	logger    zerolog.Logger
}

// Option configures an Output
type Option func(*Output)

// WithWriters replaces stdout and stderr.
func WithWriters(out, errOut io.Writer) Option {
	return func(o *Output) {
		o.out = out
		o.errOut = errOut
	}
}

// WithColor forces styling on or off.
func WithColor(enabled bool) Option {
	return func(o *Output) {
		o.color = enabled
	}
}

// WithExit replaces the function Critical uses to terminate.
func WithExit(exit func(int)) Option {
	return func(o *Output) {
		o.exit = exit
	}
}

// New creates an Output writing to stdout/stderr.
// Debug messages need verbosity >= 2, info and hint need >= 1.
func New(verbosity int, opts ...Option) *Output {
	o := &Output{
		out:       os.Stdout,
		errOut:    os.Stderr,
		verbosity: verbosity,
		color:     style.ColorEnabled(os.Stdout),
		exit:      os.Exit,
		logger:    logging.GetLogger("output"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Output) Debug(msg string)   { o.Log(LevelDebug, msg) }
func (o *Output) Info(msg string)    { o.Log(LevelInfo, msg) }
func (o *Output) Hint(msg string)    { o.Log(LevelHint, msg) }
func (o *Output) Note(msg string)    { o.Log(LevelNote, msg) }
func (o *Output) Warning(msg string) { o.Log(LevelWarning, msg) }
func (o *Output) Error(msg string)   { o.Log(LevelError, msg) }

// Critical prints the message and terminates with exit code 1.
func (o *Output) Critical(msg string) {
	o.Log(LevelCritical, msg)
	o.exit(1)
}

// Log prints msg at the given level, honouring verbosity.
func (o *Output) Log(level Level, msg string) {
	o.mirror(level, msg)

	switch {
	case level == LevelDebug && o.verbosity < 2:
		return
	case (level == LevelInfo || level == LevelHint) && o.verbosity < 1:
		return
	}

	w := o.out
	if level >= LevelError {
		w = o.errOut
	}
	fmt.Fprint(w, o.format(level, msg))
}

// format lays out a message with an aligned prefix; continuation lines are
// indented under the first line's text.
func (o *Output) format(level Level, msg string) string {
	label := fmt.Sprintf("%-*s", prefixWidth, level.String()+":")
	if o.color {
		label = level.style().Render(label)
	}

	lines := strings.Split(strings.TrimRight(msg, "\n"), "\n")
	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(label)
		} else {
			b.WriteString(strings.Repeat(" ", prefixWidth))
		}
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (o *Output) mirror(level Level, msg string) {
	switch level {
	case LevelDebug:
		o.logger.Debug().Msg(msg)
	case LevelInfo, LevelHint, LevelNote:
		o.logger.Info().Str("kind", level.String()).Msg(msg)
	case LevelWarning:
		o.logger.Warn().Msg(msg)
	case LevelError:
		o.logger.Error().Msg(msg)
	case LevelCritical:
		o.logger.Error().Bool("critical", true).Msg(msg)
	}
}
