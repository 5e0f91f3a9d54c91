// Package discovery finds subprojects under a base directory.
//
// Each immediate subdirectory holding an entry file is a candidate. The
// entry file text is searched for a declaration such as "port = 5000"
// (case-insensitive, optional whitespace around "=") and the first match
// becomes that subproject's address. The scan is best-effort: unreadable
// files and files without a declaration are left out of the result.
package discovery

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"unicode/utf8"

	"github.com/alexbotov/discovery/internal/domain"
)

// DefaultEntryFile is the entry file looked for when none is configured
const DefaultEntryFile = "index.py"

var portPattern = regexp.MustCompile(`(?i)port\s*=\s*(\d+)`)

// Errors
var (
	ErrNoPort      = errors.New("no port declaration")
	ErrInvalidText = errors.New("entry file is not valid UTF-8")
)

// Scanner scans a base directory for subprojects
type Scanner struct {
	baseDir   string
	entryFile string
	logger    *slog.Logger
	verbose   bool
}

// Option configures a Scanner
type Option func(*Scanner)

// WithLogger sets the logger used for scan diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVerbose logs every skipped and discovered entry at debug level
func WithVerbose(verbose bool) Option {
	return func(s *Scanner) {
		s.verbose = verbose
	}
}

// New creates a new scanner
func New(baseDir, entryFile string, opts ...Option) *Scanner {
	if entryFile == "" {
		entryFile = DefaultEntryFile
	}
	s := &Scanner{
		baseDir:   baseDir,
		entryFile: entryFile,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BaseDir returns the scanned directory
func (s *Scanner) BaseDir() string {
	return s.baseDir
}

// EntryFile returns the entry file name looked for in each subdirectory
func (s *Scanner) EntryFile() string {
	return s.entryFile
}

// Scan returns a fresh mapping of subdirectory name to address.
// It never fails; a base directory that cannot be listed yields an empty map.
// Cancelling ctx stops the scan and returns what was found so far.
func (s *Scanner) Scan(ctx context.Context) map[string]domain.ServiceAddress {
	projects := make(map[string]domain.ServiceAddress)

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		s.logger.Warn("cannot list base directory", "dir", s.baseDir, "error", err)
		return projects
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			s.logger.Debug("scan cancelled", "error", ctx.Err())
			break
		}
		name := entry.Name()
		if !s.isProjectDir(entry) {
			continue
		}

		port, err := s.readPort(filepath.Join(s.baseDir, name, s.entryFile))
		if err != nil {
			if s.verbose {
				s.logger.Debug("skipping subproject", "project", name, "reason", err)
			}
			continue
		}

		projects[name] = domain.NewServiceAddress(port)
		if s.verbose {
			s.logger.Debug("found subproject", "project", name, "port", port)
		}
	}

	return projects
}

// isProjectDir reports whether entry is a directory, following symlinks
func (s *Scanner) isProjectDir(entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(s.baseDir, entry.Name()))
	return err == nil && info.IsDir()
}

func (s *Scanner) readPort(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(content) {
		return "", ErrInvalidText
	}

	port, ok := ExtractPort(string(content))
	if !ok {
		return "", ErrNoPort
	}
	return port, nil
}

// ExtractPort returns the digits of the first port declaration in text
func ExtractPort(text string) (string, bool) {
	m := portPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
