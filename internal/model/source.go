// Package model defines the data structures shared by the embedding pipeline.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Asset is the raw content of a file to embed.
type Asset struct {
	Path  Path
	Bytes []byte
}

// ByteCount returns the size of the asset as read from disk.
func (a Asset) ByteCount() int {
	return len(a.Bytes)
}

// HostDocument is the full text of the file receiving the literal, together
// with the markers delimiting the region to replace.
type HostDocument struct {
	Path        Path
	Text        string
	StartMarker string
	EndMarker   string
}
