//go:build !(js && wasm)

package main

import "os"

func getVisitorTag() string {
	return "desktop-dev"
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
