// Package ignore matches paths against the .leakhoundignore file at the
// scan root: one glob or path prefix per line, # comments and blank lines
// skipped, gitignore-flavored directory patterns ("dir/") supported.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

type Matcher struct {
	patterns []string
}

// Load reads an ignore file. A missing file yields an empty matcher and no
// error, so callers need not special-case repos without one.
func Load(path string) (Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Matcher{}, nil
		}
		return Matcher{}, err
	}
	defer f.Close()

	var m Matcher
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether rel (slash-separated, relative to the scan root)
// is covered by any ignore pattern.
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	base := filepath.Base(rel)
	for _, p := range m.patterns {
		if strings.HasSuffix(p, "/") {
			dir := strings.TrimSuffix(p, "/")
			if rel == dir || strings.HasPrefix(rel, dir+"/") || strings.Contains(rel, "/"+dir+"/") {
				return true
			}
			continue
		}
		if ok, _ := filepath.Match(p, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
		if rel == p {
			return true
		}
	}
	return false
}
