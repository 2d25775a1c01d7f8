package main

import "io/fs"

// FS groups the filesystem interfaces that embed.FS and the os.DirFS()
// result have in common. The config loading code takes an FS and works the
// same whether the yaml files are embedded in the binary (release, wasm) or
// read from disk (dev mode, where they can be edited live).
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}
