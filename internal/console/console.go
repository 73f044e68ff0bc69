// Package console reads player decisions from a line-oriented input stream
// and renders the table to a terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Console implements game.Prompter and game.Renderer over a reader and writer
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	styles Styles
	logger *log.Logger
}

type options struct {
	profile *termenv.Profile
	logger  *log.Logger
}

// Option configures a Console
type Option func(*options)

// WithColorProfile forces a colour profile instead of detecting it from the
// output. Use termenv.Ascii for plain text.
func WithColorProfile(p termenv.Profile) Option {
	return func(o *options) { o.profile = &p }
}

// WithLogger sets the logger used for input diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates a console reading from r and writing to w
func New(r io.Reader, w io.Writer, opts ...Option) *Console {
	o := options{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}

	renderer := lipgloss.NewRenderer(w)
	if o.profile != nil {
		renderer.SetColorProfile(*o.profile)
	}

	return &Console{
		in:     bufio.NewScanner(r),
		out:    w,
		styles: NewStyles(renderer),
		logger: o.logger.WithPrefix("console"),
	}
}

// readLine writes prompt and returns the next trimmed input line. A closed
// input returns io.EOF.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, c.styles.Prompt.Render(prompt)+" ")
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		fmt.Fprintln(c.out)
		return "", io.EOF
	}
	line := strings.TrimSpace(c.in.Text())
	c.logger.Debug("Read input", "prompt", prompt, "line", line)
	return line, nil
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
