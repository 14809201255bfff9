package cache

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"
)

// State the freshness state of a file-backed cache entry
type State int

const (
	// Missing the backing file does not exist
	Missing State = iota

	// Stale the backing file is older than the renewal interval
	Stale

	// Fresh the backing file is within the renewal interval
	Fresh
)

// String convert State to human-readable string
func (s State) String() string {
	switch s {
	case Missing:
		return "Missing"
	case Stale:
		return "Stale"
	case Fresh:
		return "Fresh"
	default:
		return "Unknown"
	}
}

// FileCache is a single-entry cache persisted to one file. Freshness is
// derived from the file's last modification time, there is no in-memory copy.
type FileCache struct {
	Path string
}

// New creates a FileCache backed by the given file
func New(path string) *FileCache {
	return &FileCache{Path: path}
}

// CheckState reports the cache state against the given renewal interval
func (f *FileCache) CheckState(interval time.Duration) State {
	info, err := os.Stat(f.Path)
	if err != nil {
		return Missing
	}
	if time.Since(info.ModTime()) > interval {
		return Stale
	}
	return Fresh
}

// Age returns how long ago the backing file was last written. The second
// return value is false if the file does not exist.
func (f *FileCache) Age() (time.Duration, bool) {
	info, err := os.Stat(f.Path)
	if err != nil {
		return 0, false
	}
	return time.Since(info.ModTime()), true
}

// Read returns the cached content verbatim
func (f *FileCache) Read() ([]byte, error) {
	return ioutil.ReadFile(f.Path)
}

// Write replaces the cached content. The data is written to a temporary file
// in the same directory and renamed over the old one, so a crash can not
// leave a half-written cache behind.
func (f *FileCache) Write(data []byte) error {
	dir := filepath.Dir(f.Path)
	tmp, err := ioutil.TempFile(dir, filepath.Base(f.Path)+".tmp")
	if err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}
