package flatten

import (
	"bytes"
	"io"
	"os"
	"sync"
)

// Source is one input document.
type Source interface {
	// Name identifies the source in diagnostics and logs.
	Name() string
	// Open returns the source's content.
	Open() (io.ReadCloser, error)
}

type fileSource struct {
	path string
}

// FileSource returns a Source that reads the file at path.
func FileSource(path string) Source {
	return fileSource{path: path}
}

func (s fileSource) Name() string { return s.path }

func (s fileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

type bytesSource struct {
	name string
	data []byte
}

// BytesSource returns a Source over an in-memory document, such as an
// uploaded file.
func BytesSource(name string, data []byte) Source {
	return bytesSource{name: name, data: data}
}

func (s bytesSource) Name() string { return s.name }

func (s bytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

type readerSource struct {
	name string
	once sync.Once
	r    io.Reader
}

// ReaderSource returns a Source that yields r once, e.g. standard input.
// A second Open returns an empty reader.
func ReaderSource(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

func (s *readerSource) Name() string { return s.name }

func (s *readerSource) Open() (io.ReadCloser, error) {
	var r io.Reader = bytes.NewReader(nil)

	s.once.Do(func() { r = s.r })

	return io.NopCloser(r), nil
}
