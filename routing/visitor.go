package routing

// Visitor inspects the structure of a predicate tree without evaluating
// it against any request. Combinators bracket their children with
// explicit start, middle and end calls, so that operator placement and
// parenthesization can be reconstructed unambiguously.
type Visitor interface {

	// Method is called for a method predicate with its method set.
	Method(methods []string)

	// Path is called for a path predicate with its template.
	Path(template string)

	// Header is called for an exact header predicate.
	Header(name, value string)

	// HeaderMatch is called for a header predicate with a custom value
	// test.
	HeaderMatch(name string)

	// ContentType is called for a content type predicate with its
	// configured media types.
	ContentType(types []string)

	// Accept is called for an accept predicate with its configured
	// media types.
	Accept(types []string)

	// QueryParam is called for an exact query parameter predicate.
	QueryParam(name, value string)

	// QueryParamPresent is called for a query parameter presence
	// predicate, including the custom value test variant.
	QueryParamPresent(name string)

	// Extension is called for an extension predicate with the expected
	// extension, or with an empty string for the custom test variant.
	Extension(ext string)

	// True and False are called for the constant predicates.
	True()
	False()

	// StartAnd, And and EndAnd bracket the children of a conjunction.
	StartAnd()
	And()
	EndAnd()

	// StartOr, Or and EndOr bracket the children of a disjunction.
	StartOr()
	Or()
	EndOr()

	// StartNegate and EndNegate bracket a negated predicate.
	StartNegate()
	EndNegate()

	// Unknown is called for predicates without visitor support.
	Unknown(p Predicate)
}

// RouterVisitor inspects the structure of a router tree without
// evaluating it against any request.
type RouterVisitor interface {

	// Route is called for a leaf route. The name is empty unless the
	// route was registered with one.
	Route(name string, p Predicate, h Handler)

	// StartNested and EndNested bracket the inner router of a nested
	// route.
	StartNested(p Predicate)
	EndNested(p Predicate)

	// Attribute is called for static metadata attached to the visited
	// subtree.
	Attribute(key string, value any)

	// Unknown is called for routers without visitor support.
	Unknown(r Router)
}
