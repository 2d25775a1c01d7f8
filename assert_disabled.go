//go:build !assert_enabled

package main

// Assert does nothing in regular builds. Build with -tags assert_enabled to
// make invariant violations crash instead of silently producing a weird
// frame.
func Assert(condition bool) {
}
