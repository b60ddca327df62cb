package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	xmlq "github.com/sblinch/xmlq-go"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xmlq", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pathExpr := fs.String("path", "", "whitespace-separated tag path, e.g. \"toys dog\"")
	xpathExpr := fs.String("xpath", "", "XPath expression, e.g. \"//dog[@name]\"")
	attrName := fs.String("attr", "", "print this attribute of each match instead of the element")
	textOnly := fs.Bool("text", false, "print the text of each match instead of the element")
	firstOnly := fs.Bool("first", false, "print only the first match")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [-path \"a b c\" | -xpath expr] [-attr name | -text] [-first] <document.xml>\n\n", fs.Name())
		fmt.Fprintln(stderr, "Finds elements in an XML document and prints them, one match per line.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if (*pathExpr == "") == (*xpathExpr == "") {
		fmt.Fprintln(stderr, "error: exactly one of -path or -xpath is required")
		fs.Usage()
		return 2
	}
	if *attrName != "" && *textOnly {
		fmt.Fprintln(stderr, "error: -attr and -text are mutually exclusive")
		fs.Usage()
		return 2
	}
	remaining := fs.Args()
	if len(remaining) != 1 {
		fmt.Fprintln(stderr, "error: exactly one XML file argument is required")
		fs.Usage()
		return 2
	}

	doc, err := xmlq.ParseFile(remaining[0])
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if doc == nil {
		fmt.Fprintf(stderr, "error: no document at %s\n", remaining[0])
		return 1
	}

	var matches []xmlq.Node
	if *pathExpr != "" {
		matches = doc.FindAll(*pathExpr)
	} else {
		matches, err = doc.Select(*xpathExpr)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	if *firstOnly && len(matches) > 1 {
		matches = matches[:1]
	}
	if len(matches) == 0 {
		return 1
	}

	for _, m := range matches {
		switch {
		case *attrName != "":
			fmt.Fprintln(stdout, m.Attr(*attrName))
		case *textOnly:
			fmt.Fprintln(stdout, m.Text())
		default:
			fmt.Fprintln(stdout, m.String())
		}
	}
	return 0
}
