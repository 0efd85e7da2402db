/*
Command rexp checks and prints route expression documents.

Documents are read from the files given as arguments, from the -routes
flag, or from stdin when neither is set. Every document is parsed, and
unless -check is set, printed back in normalized form:

	rexp route.table
	rexp -routes 'api: Method("GET") && Path("/api/**") -> <api>;'
	cat route.table | rexp -check
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zalando/rudder/rexp"
	"github.com/zalando/rudder/routing"
)

var (
	inlineRoutes string
	checkOnly    bool
)

func init() {
	flag.StringVar(&inlineRoutes, "routes", "", "inline route expression document")
	flag.BoolVar(&checkOnly, "check", false, "validate the documents without printing them")
}

type document struct {
	name string
	code string
}

func readDocuments(args []string) ([]document, error) {
	if inlineRoutes != "" {
		return []document{{name: "<inline>", code: inlineRoutes}}, nil
	}

	if len(args) == 0 {
		code, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}

		return []document{{name: "<stdin>", code: string(code)}}, nil
	}

	var docs []document
	for _, name := range args {
		code, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}

		docs = append(docs, document{name: name, code: string(code)})
	}

	return docs, nil
}

func printRoutes(w io.Writer, routes []*rexp.Route) {
	for _, r := range routes {
		fmt.Fprintf(w, "%s: %s\n    -> <%s>;\n", r.ID, routing.PredicateString(r.Predicate), r.HandlerRef)
	}
}

func run() error {
	docs, err := readDocuments(flag.Args())
	if err != nil {
		return err
	}

	failed := false
	for _, doc := range docs {
		routes, err := rexp.Parse(doc.code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", doc.name, err)
			failed = true
			continue
		}

		if !checkOnly {
			printRoutes(os.Stdout, routes)
		}
	}

	if failed {
		return fmt.Errorf("invalid documents")
	}

	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
