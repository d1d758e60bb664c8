// Package purefn memoizes pure functions by their input values.
//
// Tableize is not just a way to add a cache. Wrapping a function in Tableize
// asks the developer one question:
//
//	→ "Is this function really pure?"
//
// Functions passed to Map on a container should be pure, and pure functions
// behave like tables: the same input always produces the same output. Tableize
// makes that table explicit, so an expensive function shared by many Map
// chains is computed once per distinct input.
//
// Features:
//   - TableizeI1O1, TableizeI2O1, TableizeI1O2, TableizeI2O2: typed memoizers
//     for the common arities.
//   - A bounded two-generation table, bucketed by xxhash digests.
//   - Arguments are keyed by value when comparable, by String() when they
//     implement fmt.Stringer.
//
// WARNING: Do not tableize impure functions, such as the thunks held by a
// deferredio.IO. Those are meant to run again on every Run.
package purefn
