package main

import (
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

var CheckCrashes = true
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		Check(file.Close())
		return true
	} else {
		return false
	}
}

func LoadYAML(fsys FS, name string, v any) {
	data, err := fsys.ReadFile(name)
	Check(err)
	Check(yaml.Unmarshal(data, v))
}

func MarshalYAML(v any) []byte {
	data, err := yaml.Marshal(v)
	Check(err)
	return data
}

type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
