package routing

import (
	"fmt"
	"strings"
)

func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = fmt.Sprintf(`"%s"`, escapeString(a))
	}

	return strings.Join(quoted, ", ")
}

// predicateWriter renders a predicate tree as a parseable expression. The
// bracketed visitor protocol makes the parenthesization explicit, so
// rendering needs no knowledge about operator precedence.
type predicateWriter struct {
	sb *strings.Builder
}

func (w *predicateWriter) Method(methods []string) {
	fmt.Fprintf(w.sb, "Method(%s)", quoteArgs(methods))
}

func (w *predicateWriter) Path(template string) {
	fmt.Fprintf(w.sb, "Path(%s)", quoteArgs([]string{template}))
}

func (w *predicateWriter) Header(name, value string) {
	fmt.Fprintf(w.sb, "Header(%s)", quoteArgs([]string{name, value}))
}

func (w *predicateWriter) HeaderMatch(name string) {
	fmt.Fprintf(w.sb, "HeaderMatch(%s)", quoteArgs([]string{name}))
}

func (w *predicateWriter) ContentType(types []string) {
	fmt.Fprintf(w.sb, "ContentType(%s)", quoteArgs(types))
}

func (w *predicateWriter) Accept(types []string) {
	fmt.Fprintf(w.sb, "Accept(%s)", quoteArgs(types))
}

func (w *predicateWriter) QueryParam(name, value string) {
	fmt.Fprintf(w.sb, "QueryParam(%s)", quoteArgs([]string{name, value}))
}

func (w *predicateWriter) QueryParamPresent(name string) {
	fmt.Fprintf(w.sb, "QueryParam(%s)", quoteArgs([]string{name}))
}

func (w *predicateWriter) Extension(ext string) {
	if ext == "" {
		w.sb.WriteString("ExtensionMatch()")
		return
	}

	fmt.Fprintf(w.sb, "Extension(%s)", quoteArgs([]string{ext}))
}

func (w *predicateWriter) True()  { w.sb.WriteString("True()") }
func (w *predicateWriter) False() { w.sb.WriteString("False()") }

func (w *predicateWriter) StartAnd() { w.sb.WriteString("(") }
func (w *predicateWriter) And()      { w.sb.WriteString(" && ") }
func (w *predicateWriter) EndAnd()   { w.sb.WriteString(")") }

func (w *predicateWriter) StartOr() { w.sb.WriteString("(") }
func (w *predicateWriter) Or()      { w.sb.WriteString(" || ") }
func (w *predicateWriter) EndOr()   { w.sb.WriteString(")") }

func (w *predicateWriter) StartNegate() { w.sb.WriteString("!(") }
func (w *predicateWriter) EndNegate()   { w.sb.WriteString(")") }

func (w *predicateWriter) Unknown(Predicate) { w.sb.WriteString("<custom>") }

// PredicateString renders a predicate tree as a textual expression.
// Predicates without visitor support are rendered as <custom>.
func PredicateString(p Predicate) string {
	var sb strings.Builder
	AcceptPredicate(p, &predicateWriter{sb: &sb})
	return sb.String()
}

// routerWriter renders a router tree as a human readable route table.
type routerWriter struct {
	sb     *strings.Builder
	indent int
}

func (w *routerWriter) writeIndent() {
	w.sb.WriteString(strings.Repeat("    ", w.indent))
}

func (w *routerWriter) Route(name string, p Predicate, _ Handler) {
	w.writeIndent()
	if name != "" {
		fmt.Fprintf(w.sb, "%s: ", name)
	}

	w.sb.WriteString(PredicateString(p))
	w.sb.WriteString(" -> <handler>;\n")
}

func (w *routerWriter) StartNested(p Predicate) {
	w.writeIndent()
	w.sb.WriteString(PredicateString(p))
	w.sb.WriteString(" -> {\n")
	w.indent++
}

func (w *routerWriter) EndNested(Predicate) {
	w.indent--
	w.writeIndent()
	w.sb.WriteString("}\n")
}

func (w *routerWriter) Attribute(key string, value any) {
	w.writeIndent()
	fmt.Fprintf(w.sb, "// %s: %v\n", key, value)
}

func (w *routerWriter) Unknown(Router) {
	w.writeIndent()
	w.sb.WriteString("<router> -> <handler>;\n")
}

// Describe renders the route table of a router tree for documentation
// and diagnostics. It never evaluates predicates against a request.
func Describe(r Router) string {
	w := &routerWriter{sb: &strings.Builder{}}
	r.Accept(w)
	return w.sb.String()
}
