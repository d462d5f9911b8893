package rules

import (
	"fmt"
	"slices"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Reason reports which rule, if any, excluded a path.
type Reason int

const (
	// Keep means no rule matched and the path is archived.
	Keep Reason = iota
	// ByDir means the first path segment is an excluded directory name.
	ByDir
	// ByPath means the path lies at or under an excluded path prefix.
	ByPath
	// ByGlob means the entry name matches an excluded pattern.
	ByGlob
	// ByIgnore means a gitignore-style line matched.
	ByIgnore
)

func (r Reason) String() string {
	switch r {
	case Keep:
		return "kept"
	case ByDir:
		return "excluded directory"
	case ByPath:
		return "excluded path"
	case ByGlob:
		return "excluded pattern"
	case ByIgnore:
		return "ignore rule"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Default exclusions for a LÖVE project tree.
var (
	DefaultDirs  = []string{".git", "dist", "screenshots", ".github"}
	DefaultPaths = []string{"docs/background"}
	DefaultGlobs = []string{"*.love", "*.psd", "*.xcf"}
)

// Ruleset is a compiled, immutable set of exclusion rules.
type Ruleset struct {
	dirs   map[string]struct{}
	paths  []string
	globs  []string
	ignore *ignore.GitIgnore
}

// Default returns the ruleset built from DefaultDirs, DefaultPaths and DefaultGlobs.
func Default() *Ruleset {
	rs, err := New(DefaultDirs, DefaultPaths, DefaultGlobs, nil)
	if err != nil {
		panic(err)
	}
	return rs
}

// New validates and compiles a ruleset. ignoreLines uses gitignore syntax and may be empty.
func New(dirs, paths, globs, ignoreLines []string) (*Ruleset, error) {
	rs := &Ruleset{dirs: make(map[string]struct{}, len(dirs))}

	for _, d := range dirs {
		if d == "" || d == "." || d == ".." || strings.ContainsAny(d, `/\`) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDir, d)
		}
		rs.dirs[d] = struct{}{}
	}

	for _, p := range paths {
		norm := normalize(p)
		norm = strings.TrimSuffix(norm, "/")
		if norm == "" || strings.HasPrefix(norm, "/") || slices.Contains(strings.Split(norm, "/"), "..") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
		rs.paths = append(rs.paths, norm)
	}

	for _, g := range globs {
		compiled, err := compileGlob(g)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, g, err)
		}
		rs.globs = append(rs.globs, compiled)
	}

	if len(ignoreLines) > 0 {
		rs.ignore = ignore.CompileIgnoreLines(ignoreLines...)
	}

	return rs, nil
}

// MatchDir evaluates a directory path relative to the root.
// Path prefixes are tested against the directory path and against that path
// with the directory name appended once more, so excluding "a/a" prunes "a".
// Any result other than Keep prunes the whole subtree.
func (r *Ruleset) MatchDir(rel string) Reason {
	return r.match(normalize(rel), true)
}

// MatchFile evaluates a file path relative to the root.
func (r *Ruleset) MatchFile(rel string) Reason {
	return r.match(normalize(rel), false)
}

// Skip reports whether rel is excluded.
func (r *Ruleset) Skip(rel string, isDir bool) bool {
	return r.match(normalize(rel), isDir) != Keep
}

func (r *Ruleset) match(rel string, isDir bool) Reason {
	if rel == "" {
		return Keep
	}

	top, _, _ := strings.Cut(rel, "/")
	if _, ok := r.dirs[top]; ok {
		return ByDir
	}

	name := rel[strings.LastIndexByte(rel, '/')+1:]
	for _, p := range r.paths {
		if under(rel, p) || (isDir && under(rel+"/"+name, p)) {
			return ByPath
		}
	}

	for _, g := range r.globs {
		if matchGlob(g, name) {
			return ByGlob
		}
	}

	if r.ignore != nil {
		candidate := rel
		if isDir {
			candidate += "/"
		}
		if r.ignore.MatchesPath(candidate) {
			return ByIgnore
		}
	}

	return Keep
}

// under reports whether rel equals prefix or lies beneath it segment-wise.
func under(rel, prefix string) bool {
	return rel == prefix || strings.HasPrefix(rel, prefix+"/")
}

func normalize(rel string) string {
	rel = strings.ReplaceAll(rel, `\`, "/")
	return strings.TrimPrefix(rel, "./")
}
