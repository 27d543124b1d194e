// Package capability provides the one structural pattern every SOLID example
// in this repository is built on: a shared capability (a Go interface) and an
// ordered, heterogeneous set of variants that implement it.
//
// A driver registers its variants once and then dispatches through the
// capability without ever inspecting concrete types:
//
//	shapes := capability.NewSequence[Shape]().
//		Register("circle", Circle{Radius: 2}).
//		Register("square", Square{Side: 3})
//
//	areas := capability.Dispatch(shapes, Shape.Area)
//
// Design goals:
//   - Insertion order is dispatch order; each variant is invoked once per call.
//   - Open for extension: adding a variant is one more Register call, with no
//     change to the capability or to the dispatch site.
//   - No reflection: the variant set is fixed by the driver at compile time.
//
// Failure paths return small typed errors (DuplicateNameError,
// UnknownNameError) that tests can assert with errors.As.
package capability
