package predicates

import "github.com/zalando/rudder/routing"

type truePredicate struct{}

// True creates a predicate matching every request.
func True() routing.Predicate { return truePredicate{} }

func (truePredicate) Test(routing.Request) bool { return true }
func (truePredicate) Accept(v routing.Visitor)  { v.True() }

type falsePredicate struct{}

// False creates a predicate matching no request.
func False() routing.Predicate { return falsePredicate{} }

func (falsePredicate) Test(routing.Request) bool { return false }
func (falsePredicate) Accept(v routing.Visitor)  { v.False() }
