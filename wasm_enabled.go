//go:build js && wasm

package main

import (
	"syscall/js"
)

// getVisitorTag reads the visitor label that the page sets in the JavaScript
// global scope before it loads the wasm. It tags the session stats; it is
// not an identity, just whatever bucket the page wants sessions grouped by
// (campaign name, A/B arm, "organic").
func getVisitorTag() string {
	v := js.Global().Get("visitor")
	if v.IsUndefined() || v.IsNull() {
		return "unknown"
	}
	return v.String()
}

// There is no disk in the browser; the dev-mode dump quietly does nothing.
func WriteFile(name string, data []byte) {
}
