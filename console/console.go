/*
Package console prints red-black trees to a terminal.

Trees are drawn sideways: the root at the left margin, right subtrees above
and left subtrees below their parent. Node colors are shown with terminal
colors and, optionally, with a textual tag.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// tracer writes to trace with key 'rbtree'
func tracer() tracing.Trace {
	return tracing.Select("rbtree")
}

// Config controls tree output.
type Config struct {
	LineWidth int            // target width of the output in fixed-width positions
	Context   *uax11.Context // context for measuring label widths
	Red       *color.Color   // color for red nodes
	Black     *color.Color   // color for black nodes
	ShowTags  bool           // append "(R)" or "(B)" to every label
}

// DefaultConfig returns a configuration for a console of 80 positions with
// Latin text.
func DefaultConfig() *Config {
	return &Config{
		LineWidth: 80,
		Context:   uax11.LatinContext,
		Red:       color.New(color.FgRed, color.Bold),
		Black:     color.New(color.FgHiBlack, color.Bold),
		ShowTags:  color.NoColor,
	}
}

// ConfigFromTerminal is a simple helper for creating a Config. It checks
// whether the session is interactive, and if so it reads the terminal's width.
// The text context is derived from the user environment.
func ConfigFromTerminal() *Config {
	config := DefaultConfig()
	config.Context = uax11.ContextFromEnvironment()
	config.LineWidth = 65
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			config.LineWidth = fitLineWidth(w)
		}
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}

// fitLineWidth leaves a margin on terminals of width w.
func fitLineWidth(w int) int {
	switch {
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	}
	return 10
}

var setupGraphemes sync.Once

// Width returns the display width of s in fixed-width positions.
func Width(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// Print writes tree t to w. label formats values; if nil, values are printed
// with %v. If config is nil, DefaultConfig is used.
func Print[T any](w io.Writer, t *rbtree.Tree[T], label func(T) string, config *Config) error {
	if config == nil {
		config = DefaultConfig()
	}
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	if t.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	p := printer[T]{w: w, config: config, label: label}
	p.step = p.columnStep(t)
	p.print(t.Root(), 0)
	return p.err
}

type printer[T any] struct {
	w      io.Writer
	config *Config
	label  func(T) string
	step   int // indentation per tree level
	err    error
}

// columnStep aligns tree levels in columns as wide as the widest label, unless
// the tree would then exceed the line width.
func (p *printer[T]) columnStep(t *rbtree.Tree[T]) int {
	widest := 0
	for v := range t.All() {
		widest = max(widest, Width(p.text(v, rbtree.Black), p.config.Context))
	}
	step := widest + 2
	if p.config.LineWidth > 0 && (t.Height()-1)*step+widest > p.config.LineWidth {
		tracer().Debugf("console: tree too wide for %d positions, compacting", p.config.LineWidth)
		step = 2
	}
	return step
}

func (p *printer[T]) text(v T, c rbtree.Color) string {
	s := p.label(v)
	if p.config.ShowTags {
		if c == rbtree.Red {
			s += "(R)"
		} else {
			s += "(B)"
		}
	}
	return s
}

func (p *printer[T]) print(it rbtree.Iterator[T], depth int) {
	if it.IsEnd() || p.err != nil {
		return
	}
	p.print(it.Right(), depth+1)
	s := p.text(it.Value(), it.Color())
	c := p.config.Black
	if it.Color() == rbtree.Red {
		c = p.config.Red
	}
	if c != nil {
		s = c.Sprint(s)
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", depth*p.step), s)
	p.print(it.Left(), depth+1)
}
