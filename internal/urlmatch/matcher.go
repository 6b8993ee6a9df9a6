// Package urlmatch recognizes http, https and ftp URLs inside arbitrary text.
package urlmatch

import "regexp"

// Pattern is the URL expression. The host needs at least one dot, so bare
// names like ftp://localhost are not matched.
const Pattern = `(http|ftp|https)://([\p{L}\p{N}_-]+(?:\.[\p{L}\p{N}_-]+)+)(/[\p{L}\p{N}_.,@?^=%&:/~+#-]*)?`

// Match is one recognized URL.
type Match struct {
	Scheme string
	Host   string
	Path   string // empty when no path was captured
}

// URL reconstructs the matched URL.
func (m Match) URL() string {
	return m.Scheme + "://" + m.Host + m.Path
}

// Matcher finds URL matches in text fragments. It is safe for concurrent use.
type Matcher struct {
	re *regexp.Regexp
}

// New returns a Matcher using Pattern.
func New() *Matcher {
	return &Matcher{re: regexp.MustCompile(Pattern)}
}

// FindAll returns the non-overlapping matches in fragment, left to right.
func (m *Matcher) FindAll(fragment string) []Match {
	subs := m.re.FindAllStringSubmatch(fragment, -1)
	if len(subs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(subs))
	for _, s := range subs {
		matches = append(matches, Match{Scheme: s[1], Host: s[2], Path: s[3]})
	}
	return matches
}

// URLs returns the reconstructed URL of every match in fragment.
func (m *Matcher) URLs(fragment string) []string {
	found := m.FindAll(fragment)
	urls := make([]string, 0, len(found))
	for _, f := range found {
		urls = append(urls, f.URL())
	}
	return urls
}
