// Command linkview displays text containing [label](url) markdown link
// spans and resolves clicks on them.
//
// Usage:
//
//	linkview [flags] [file]
//
// Flags:
//
//	-width int   Render width in cells for -plain output (default 80)
//	-plain       Print the rendered document to stdout and exit
//	-list        Print the parsed links (label and URL) and exit
//
// Without -plain or -list, linkview opens an interactive viewer: click a
// link to open it with the platform's default handler, or select it with
// Tab and press Enter. With no file argument a short demo document is
// shown.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fwojciec/linkspan"
	"github.com/fwojciec/linkspan/browser"
	bt "github.com/fwojciec/linkspan/bubbletea"
	"github.com/fwojciec/linkspan/layout"
	"github.com/fwojciec/linkspan/render"
)

const demoText = "This is linkview. It recognizes [markdown links](https://daringfireball.net/projects/markdown/syntax#link) " +
	"in plain text, renders them in color, and opens them on click.\n\n" +
	"Try the [project page](https://github.com/fwojciec/linkspan) or a [plain label]() that goes nowhere.\n\n" +
	"Literal brackets [like these] stay untouched."

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "linkview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		width = flag.Int("width", 80, "Render width in cells for -plain output")
		plain = flag.Bool("plain", false, "Print the rendered document to stdout and exit")
		list  = flag.Bool("list", false, "Print the parsed links (label and URL) and exit")
	)
	flag.Parse()

	input, err := loadInput(flag.Args())
	if err != nil {
		return err
	}

	doc := linkspan.Parse(input)
	theme := linkspan.DefaultTheme()

	switch {
	case *list:
		return writeLinks(os.Stdout, doc)

	case *plain:
		l := layout.New(doc, *width, nil)
		_, err := fmt.Fprintln(os.Stdout, render.Document(l, render.NewStyles(theme)))
		return err
	}

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return bt.Run(ctx, bt.New(doc, theme, browser.Opener{}))
}

// loadInput reads the document from the file argument, or falls back to the
// demo document.
func loadInput(args []string) (string, error) {
	if len(args) == 0 {
		return demoText, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// writeLinks prints one line per parsed link: label, tab, URL.
func writeLinks(w io.Writer, doc *linkspan.Result) error {
	if len(doc.Links) == 0 {
		_, err := fmt.Fprintln(w, "no links")
		return err
	}
	for _, l := range doc.Links {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", l.Text, l.URL); err != nil {
			return err
		}
	}
	return nil
}
