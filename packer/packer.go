package packer

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dendrascience/lovepack/rules"
	"go.uber.org/zap"
)

// Entry pairs a source file on disk with its member name inside the archive.
type Entry struct {
	Source string
	Name   string
}

// Plan is the outcome of a walk: the entries to write and how many
// directories or files the ruleset excluded.
type Plan struct {
	Entries []Entry
	Skipped int
}

// Result summarizes a written archive.
type Result struct {
	Files   int
	Bytes   int64
	Skipped int
}

// Option configures an Archiver.
type Option func(*Archiver)

// WithLogger sets the logger used for per-entry debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Archiver) {
		if logger != nil {
			a.log = logger
		}
	}
}

// WithSkipHook registers a callback invoked for every excluded path.
func WithSkipHook(fn func(rel string, reason rules.Reason)) Option {
	return func(a *Archiver) {
		a.onSkip = fn
	}
}

// Archiver packages a directory tree into a ZIP archive.
type Archiver struct {
	root   string
	rules  *rules.Ruleset
	log    *zap.Logger
	onSkip func(rel string, reason rules.Reason)
}

// New returns an Archiver for root. A nil ruleset means rules.Default().
func New(root string, rs *rules.Ruleset, opts ...Option) *Archiver {
	if rs == nil {
		rs = rules.Default()
	}
	a := &Archiver{
		root:  root,
		rules: rs,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Root returns the directory being packaged.
func (a *Archiver) Root() string {
	return a.root
}

// Collect walks the tree and returns the entries that survive the ruleset.
// A symlinked root is resolved before walking. If dest names an existing file
// inside the tree, that file is never collected.
func (a *Archiver) Collect(ctx context.Context, dest string) (Plan, error) {
	info, err := os.Stat(a.root)
	if err != nil {
		return Plan{}, fmt.Errorf("stat root %s: %w", a.root, err)
	}
	if !info.IsDir() {
		return Plan{}, fmt.Errorf("%w: %s", ErrExpectedDirectory, a.root)
	}

	walkRoot, err := filepath.EvalSymlinks(a.root)
	if err != nil {
		return Plan{}, fmt.Errorf("resolve root %s: %w", a.root, err)
	}

	var destInfo fs.FileInfo
	if dest != "" {
		if di, statErr := os.Stat(dest); statErr == nil {
			destInfo = di
		}
	}

	var plan Plan
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)

		if d.IsDir() {
			if reason := a.rules.MatchDir(name); reason != rules.Keep {
				a.skip(&plan, name, reason)
				return fs.SkipDir
			}
			return nil
		}

		if reason := a.rules.MatchFile(name); reason != rules.Keep {
			a.skip(&plan, name, reason)
			return nil
		}

		regular, err := isRegularFile(path, d)
		if err != nil {
			return err
		}
		if !regular {
			a.log.Debug("skipping non-regular file", zap.String("path", name))
			return nil
		}

		if destInfo != nil && isSameFile(path, destInfo) {
			a.log.Debug("skipping destination archive", zap.String("path", name))
			return nil
		}

		plan.Entries = append(plan.Entries, Entry{Source: path, Name: name})
		return nil
	})
	if err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// Archive writes every collected entry to dest, replacing any existing file.
// The parent directory of dest is created when missing.
func (a *Archiver) Archive(ctx context.Context, dest string) (res Result, err error) {
	if dest == "" {
		return Result{}, ErrEmptyDestination
	}

	plan, err := a.Collect(ctx, dest)
	if err != nil {
		return Result{}, err
	}
	res.Skipped = plan.Skipped

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return Result{}, err
	}
	file, err := os.Create(dest)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	w := zip.NewWriter(file)
	for _, entry := range plan.Entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
		n, writeErr := addFileToZip(w, entry)
		if writeErr != nil {
			return res, fmt.Errorf("add %s: %w", entry.Name, writeErr)
		}
		res.Files++
		res.Bytes += n
		a.log.Debug("added", zap.String("name", entry.Name), zap.Int64("bytes", n))
	}
	if err := w.Close(); err != nil {
		return res, err
	}

	a.log.Info("archive written",
		zap.String("dest", dest),
		zap.Int("files", res.Files),
		zap.Int64("bytes", res.Bytes),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

func (a *Archiver) skip(plan *Plan, name string, reason rules.Reason) {
	plan.Skipped++
	a.log.Debug("excluded", zap.String("path", name), zap.Stringer("reason", reason))
	if a.onSkip != nil {
		a.onSkip(name, reason)
	}
}

func addFileToZip(w *zip.Writer, entry Entry) (int64, error) {
	f, err := os.Open(entry.Source)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return 0, err
	}
	header.Name = entry.Name
	header.Method = zip.Deflate

	writer, err := w.CreateHeader(header)
	if err != nil {
		return 0, err
	}
	return io.Copy(writer, f)
}

func isSameFile(path string, target fs.FileInfo) bool {
	info, err := os.Stat(path)
	return err == nil && os.SameFile(info, target)
}

// isRegularFile follows symlinks; a link to a directory is not descended.
func isRegularFile(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
