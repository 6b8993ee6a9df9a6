package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write encodes urls one per line, sorted, each line ending in '\n'.
func Write(w io.Writer, urls Set) error {
	bw := bufio.NewWriter(w)
	for _, u := range urls.Sorted() {
		if _, err := bw.WriteString(u + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes urls to path, replacing any existing file.
func WriteFile(path string, urls Set) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := Write(f, urls); err != nil {
		f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
