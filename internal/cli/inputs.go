package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"record-flattener/internal/flatten"
)

// collectSources turns command-line arguments into sources, in order.
// Directories contribute their *.json files sorted by name.
func collectSources(args []string, stdin io.Reader) ([]flatten.Source, error) {
	var (
		sources []flatten.Source
		stdinOK = true
	)

	for _, arg := range args {
		if arg == "-" {
			if !stdinOK {
				return nil, errors.New("standard input given more than once")
			}

			stdinOK = false
			sources = append(sources, flatten.ReaderSource("-", stdin))

			continue
		}

		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			// Missing files are reported per document, not as a usage error.
			sources = append(sources, flatten.FileSource(arg))
			continue
		}

		files, err := jsonFilesIn(arg)
		if err != nil {
			return nil, err
		}

		for _, f := range files {
			sources = append(sources, flatten.FileSource(f))
		}
	}

	return sources, nil
}

func jsonFilesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}

		files = append(files, filepath.Join(dir, e.Name()))
	}

	sort.Strings(files)

	return files, nil
}
