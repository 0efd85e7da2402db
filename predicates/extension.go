package predicates

import (
	"path"
	"strings"

	"github.com/zalando/rudder/routing"
)

type extensionPredicate struct {
	ext   string
	match func(string) bool
}

// Extension creates a predicate testing the trailing filename extension
// of the request path, without the dot, case insensitively. A path
// without an extension yields the empty string, so Extension("") matches
// extensionless paths.
func Extension(ext string) (routing.Predicate, error) {
	return &extensionPredicate{ext: strings.TrimPrefix(ext, ".")}, nil
}

// ExtensionMatch creates a predicate testing the trailing filename
// extension of the request path with a custom function. The function
// receives the extension without the dot, or the empty string when the
// path has none.
func ExtensionMatch(match func(string) bool) (routing.Predicate, error) {
	if match == nil {
		return nil, ErrNilMatch
	}

	return &extensionPredicate{match: match}, nil
}

func pathExtension(p string) string {
	return strings.TrimPrefix(path.Ext(p), ".")
}

func (p *extensionPredicate) Test(req routing.Request) bool {
	ext := pathExtension(req.Path())
	if p.match != nil {
		return p.match(ext)
	}

	return strings.EqualFold(ext, p.ext)
}

func (p *extensionPredicate) Accept(v routing.Visitor) {
	if p.match != nil {
		v.Extension("")
		return
	}

	v.Extension(p.ext)
}
