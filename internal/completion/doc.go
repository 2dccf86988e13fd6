// Package completion wires the context analyzer, a candidate provider, and
// the search orchestrator into a per-request completion session.
//
// A Session is the only part of the core that touches external
// collaborators: the editor hands it the live buffer and caret, a Provider
// (typically a schema service) supplies the raw candidates valid at the
// analyzed position, and the session returns ranked, highlighted results
// ready for a popup.
package completion
