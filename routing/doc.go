/*
Package routing implements matching http requests to associated handlers.

A routing tree is composed of predicates guarding handlers or nested
routers. Matching evaluates the tree against a request view and returns
the handler of the first route whose predicate holds. Predicates may
record match metadata, like captured path variables, in the request
scoped attribute map; a failed match branch always restores the
attributes to their state before the branch was attempted.

Routing trees are built once, before serving traffic, and are immutable
afterwards. Evaluation is pure, synchronous and safe for any number of
concurrent requests. Invoking the selected handler, and everything
related to network I/O, is the caller's concern.

The predicate implementations live in the predicates package, the path
template engine in the pathmatch package, and the textual route
expression format in the rexp package.
*/
package routing
