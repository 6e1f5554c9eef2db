// Package client implements the interactive client application runtime.
//
// It wires configuration, local storage, the REST adapter, session state, and
// the terminal UI into a single process lifecycle.
package client
