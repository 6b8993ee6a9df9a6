package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dgallion1/linkgest/internal/parser"
	"github.com/dgallion1/linkgest/internal/runlog"
	"github.com/dgallion1/linkgest/internal/urlmatch"
)

var (
	// ErrMissingPath is returned by Run when either path is blank.
	ErrMissingPath = errors.New("both input and output files must be specified")
	// ErrUnsupportedFormat is returned in strict mode for unknown extensions.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Set holds unique URLs.
type Set map[string]struct{}

func (s Set) Add(url string) { s[url] = struct{}{} }

func (s Set) Len() int { return len(s) }

// Sorted returns the URLs in ascending byte order.
func (s Set) Sorted() []string {
	urls := make([]string, 0, len(s))
	for u := range s {
		urls = append(urls, u)
	}
	slices.Sort(urls)
	return urls
}

// Extractor runs one document through its fragment source and the matcher.
// It holds no per-run state, so one Extractor can serve many runs.
type Extractor struct {
	registry *parser.Registry
	matcher  *urlmatch.Matcher
	strict   bool
}

// NewExtractor builds an Extractor. With strict set, unknown extensions fail
// the run instead of yielding zero URLs.
func NewExtractor(registry *parser.Registry, matcher *urlmatch.Matcher, strict bool) *Extractor {
	return &Extractor{
		registry: registry,
		matcher:  matcher,
		strict:   strict,
	}
}

// Extract returns every unique URL found in the document at path.
func (e *Extractor) Extract(path string, sink runlog.Sink) (Set, error) {
	if sink == nil {
		sink = runlog.Discard
	}
	urls := make(Set)

	src, ok := e.registry.ForFile(path)
	if !ok {
		ext := filepath.Ext(path)
		if e.strict {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		}
		sink.Emit(fmt.Sprintf("unsupported file format: %q, no URLs extracted", ext))
		return urls, nil
	}

	err := src.Fragments(path, sink, func(fragment string) {
		for _, m := range e.matcher.FindAll(fragment) {
			urls.Add(m.URL())
		}
	})
	if err != nil {
		return nil, err
	}
	return urls, nil
}

// Run extracts the URLs of input, writes them sorted to output and returns
// how many unique URLs were written.
func (e *Extractor) Run(input, output string, sink runlog.Sink) (int, error) {
	input, output = strings.TrimSpace(input), strings.TrimSpace(output)
	if input == "" || output == "" {
		return 0, ErrMissingPath
	}
	if sink == nil {
		sink = runlog.Discard
	}

	urls, err := e.Extract(input, sink)
	if err != nil {
		return 0, fmt.Errorf("extract %s: %w", input, err)
	}
	if err := WriteFile(output, urls); err != nil {
		return 0, err
	}

	sink.Emit(fmt.Sprintf("extracted %d unique URLs and saved to %s", urls.Len(), output))
	return urls.Len(), nil
}
