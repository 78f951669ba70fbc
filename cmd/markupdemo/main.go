/*
Markupdemo builds a few small markup documents and prints them.

Usage:

	markupdemo [-tree] [-dot] [-color auto|always|never] [-trace error|info|debug]

Without options, the rendered markup of every document is printed, one per line.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/dom/domdbg"
	"github.com/npillmayer/markup/maybe"
	"github.com/npillmayer/schuko/tracing"
	"github.com/scott-cotton/cli"
)

// tracer traces with key 'markup.demo'.
func tracer() tracing.Trace {
	return tracing.Select("markup.demo")
}

type options struct {
	*cli.Command
	Tree  bool   `cli:"name=tree desc='print a drawing of each document tree'"`
	Dot   bool   `cli:"name=dot desc='print each document tree in GraphViz format'"`
	Color string `cli:"name=color desc='colorize output: auto, always or never (default auto)'"`
	Trace string `cli:"name=trace desc='trace level: error, info or debug (default error)'"`
}

func main() {
	cli.MainContext(context.Background(), command())
}

// command returns the markupdemo command.
func command() *cli.Command {
	opts := &options{}
	sOpts, err := cli.StructOpts(opts)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&opts.Command, "markupdemo").
		WithSynopsis("markupdemo [-tree] [-dot] [-color mode] [-trace level]").
		WithDescription("markupdemo builds a few small markup documents and prints them.").
		WithOpts(sOpts...).
		WithRun(opts.main)
}

func (opts *options) main(cc *cli.Context, args []string) error {
	args, err := opts.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	return run(*opts, cc.Out)
}

func run(opts options, w io.Writer) error {
	if opts.Trace == "" {
		opts.Trace = "error"
	}
	if opts.Color == "" {
		opts.Color = "auto"
	}
	for _, key := range []string{"markup.demo", "markup.dom", "markup.tree", "markup.domdbg"} {
		switch opts.Trace {
		case "error":
			tracing.Select(key).SetTraceLevel(tracing.LevelError)
		case "info":
			tracing.Select(key).SetTraceLevel(tracing.LevelInfo)
		case "debug":
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		default:
			return fmt.Errorf("%w: unknown trace level %q", cli.ErrUsage, opts.Trace)
		}
	}
	switch opts.Color {
	case "auto":
		f, ok := w.(*os.File)
		color.NoColor = !ok || !isatty.IsTerminal(f.Fd())
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("%w: unknown color mode %q", cli.ErrUsage, opts.Color)
	}
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	docs, err := documents()
	if err != nil {
		return err
	}
	for _, d := range docs {
		tracer().Infof("rendering document %q", d.name)
		fmt.Fprintf(w, "%s\n", heading("# "+d.name))
		fmt.Fprintln(w, d.root.Render())
		if opts.Tree {
			fmt.Fprint(w, domdbg.PrintTree(d.root))
		}
		if opts.Dot {
			domdbg.ToGraphViz(d.root, w)
		}
	}
	return nil
}

type document struct {
	name string
	root *dom.Node
}

func documents() ([]document, error) {
	outer := dom.Anchor().SetHref("/page1").SetID("id_1").
		AddClass("class1").AddClass("class2").Build()
	inner := dom.Anchor().SetHref("#me").SetID("id_2").
		AddDataAttr("role", "button").Build()
	if err := outer.AddChild(inner); err != nil {
		return nil, err
	}
	about := dom.NewAnchor(maybe.Just("hello, world"), maybe.Just("/about"))
	if err := about.AddChild(dom.NewText("text")); err != nil {
		return nil, err
	}
	return []document{
		{name: "nested anchors", root: outer},
		{name: "anchor with text", root: about},
	}, nil
}
