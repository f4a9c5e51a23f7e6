package diag

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// StderrConsumer writes one formatted line per diagnostic to an output
// stream, colorizing the level tag when the stream is a terminal.
type StderrConsumer struct {
	w      io.Writer
	out    *bufio.Writer
	colors bool
}

// NewStderrConsumer wraps w (os.Stderr by convention). Colorization is
// enabled automatically when w is a terminal file descriptor; pass
// forceColor to override the detection either way.
func NewStderrConsumer(w io.Writer, forceColor ...bool) *StderrConsumer {
	colors := false
	if f, ok := w.(*os.File); ok {
		colors = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if len(forceColor) > 0 {
		colors = forceColor[0]
	}
	return &StderrConsumer{w: w, out: bufio.NewWriter(w), colors: colors}
}

// Handle formats and writes one diagnostic line.
func (c *StderrConsumer) Handle(d Diagnostic) {
	levelTag := d.Level.String()
	if c.colors {
		levelTag = levelColor(d.Level).Sprint(levelTag)
	}
	if d.Location.Filename != "" {
		fmt.Fprintf(c.out, "%s: %s: %s\n", d.Location.String(), levelTag, d.Message)
	} else {
		fmt.Fprintf(c.out, "%s: %s\n", levelTag, d.Message)
	}
}

// Close flushes buffered output.
func (c *StderrConsumer) Close() error {
	return c.out.Flush()
}

func levelColor(l Level) *color.Color {
	switch l {
	case Note:
		return color.New(color.FgCyan)
	case Warning:
		return color.New(color.FgYellow)
	case Error:
		return color.New(color.FgRed)
	case Fatal:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New()
	}
}

// FileConsumer writes formatted diagnostic lines to an owned file handle.
type FileConsumer struct {
	f   *os.File
	out *bufio.Writer
}

// NewFileConsumer creates path, or truncates it if it exists, and returns
// a consumer that owns the resulting handle.
func NewFileConsumer(path string) (*FileConsumer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open diagnostic file %s: %w", path, err)
	}
	return &FileConsumer{f: f, out: bufio.NewWriter(f)}, nil
}

// Handle writes one formatted diagnostic line.
func (c *FileConsumer) Handle(d Diagnostic) {
	fmt.Fprintln(c.out, d.String())
}

// Close flushes and closes the owned file handle.
func (c *FileConsumer) Close() error {
	if err := c.out.Flush(); err != nil {
		_ = c.f.Close()
		return err
	}
	return c.f.Close()
}

// MemoryConsumer accumulates diagnostics in memory, for tests and
// embedding tools that want to inspect reports programmatically.
type MemoryConsumer struct {
	Diagnostics []Diagnostic
}

// NewMemoryConsumer returns an empty in-memory consumer.
func NewMemoryConsumer() *MemoryConsumer {
	return &MemoryConsumer{}
}

// Handle appends d.
func (c *MemoryConsumer) Handle(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Close is a no-op; the buffer has no external resource.
func (c *MemoryConsumer) Close() error { return nil }

// Lines renders every accumulated diagnostic via Diagnostic.String, in
// report order.
func (c *MemoryConsumer) Lines() []string {
	lines := make([]string, len(c.Diagnostics))
	for i, d := range c.Diagnostics {
		lines[i] = d.String()
	}
	return lines
}
