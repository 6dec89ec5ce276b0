/*
Command rbtool builds a red-black tree and prints it.

Usage:

	rbtool --values 5,3,9,1 --remove 3 --format console
	rbtool --html-input items.html --format dot

Values are either integers given with --values, or strings read from the
list items of an HTML file given with --html-input. After building, the tree
is validated; rbtool exits with a non-zero code if validation fails.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/rbtree/console"
	"github.com/npillmayer/rbtree/html"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

type options struct {
	values    string // comma-separated integers
	remove    string // comma-separated values to remove after building
	format    string // console, dot or html
	htmlInput string // file with list items to load as strings
}

func main() {
	var opts options
	pflag.StringVarP(&opts.values, "values", "v", "", "Comma-separated integers to insert into the tree")
	pflag.StringVarP(&opts.remove, "remove", "r", "", "Comma-separated values to remove after building the tree")
	pflag.StringVarP(&opts.format, "format", "f", "console", "Output format: console, dot or html")
	pflag.StringVar(&opts.htmlInput, "html-input", "", "HTML file whose list items are loaded as string values")
	level := pflag.String("trace", "error", "Trace level: debug, info or error")
	pflag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*level))

	if opts.values == "" && opts.htmlInput == "" {
		pflag.Usage()
		os.Exit(2)
	}
	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "rbtool: %v\n", err)
		os.Exit(1)
	}
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

func run(w io.Writer, opts options) error {
	if opts.htmlInput != "" {
		f, err := os.Open(opts.htmlInput)
		if err != nil {
			return errors.Wrapf(err, "could not open HTML input: %s", opts.htmlInput)
		}
		defer f.Close()
		t, err := html.LoadStrings(f, rbtree.Config[string]{Less: rbtree.Less[string]})
		if err != nil {
			return errors.Wrapf(err, "could not load list items from %s", opts.htmlInput)
		}
		for _, s := range splitList(opts.remove) {
			t.RemoveValue(s)
		}
		return output(w, t, func(s string) string { return s }, opts.format)
	}
	values, err := parseInts(opts.values)
	if err != nil {
		return err
	}
	t, err := rbtree.FromValues(rbtree.Config[int]{Less: rbtree.Less[int]}, values...)
	if err != nil {
		return errors.Wrap(err, "could not build tree")
	}
	removals, err := parseInts(opts.remove)
	if err != nil {
		return err
	}
	for _, v := range removals {
		t.RemoveValue(v)
	}
	return output(w, t, strconv.Itoa, opts.format)
}

func output[T any](w io.Writer, t *rbtree.Tree[T], label func(T) string, format string) error {
	if err := t.Check(); err != nil {
		return errors.Wrap(err, "tree failed validation")
	}
	rbtree.T().Infof("tree has %d nodes, height %d", t.Len(), t.Height())
	var err error
	switch format {
	case "console":
		err = console.Print(w, t, label, console.ConfigFromTerminal())
	case "dot":
		err = rbtree.Tree2Dot(t, w, label)
	case "html":
		err = html.Render(w, t, label)
		if err == nil {
			_, err = io.WriteString(w, "\n")
		}
	default:
		return errors.Errorf("unknown output format %q", format)
	}
	return errors.Wrapf(err, "could not write %s output", format)
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseInts(s string) ([]int, error) {
	items := splitList(s)
	values := make([]int, 0, len(items))
	for _, item := range items {
		v, err := strconv.Atoi(item)
		if err != nil {
			return nil, errors.Wrapf(err, "not an integer: %s", item)
		}
		values = append(values, v)
	}
	return values, nil
}
