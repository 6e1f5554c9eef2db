// Package recipeform holds the editable draft state for authoring a recipe:
// scalar fields, the ordered ingredient and step lists, tag option sets, the
// nested nutrition record, and the pending image attachment.
//
// Every operation is a pure transformation returning a new draft, validation
// is a pure function over the current draft, and SubmissionPayload maps a
// validated draft deterministically onto the wire form the posts endpoints
// expect. The package knows nothing about transport or screens; the
// submission pipeline consumes a draft exactly once and never mutates it.
package recipeform
