// Package dom describes the small slice of the DOM that bound components
// need: element creation, attributes, a value/text surface, children, and
// named event listeners. Components only ever talk to the Document and
// Element interfaces so the same tree can be built against the in-memory
// document returned by NewDocument (server rendering, tests) or against the
// browser through the jsdom backend.
//
// Nodes are mutated in place. Nothing in this package diffs or re-creates
// elements.
package dom
