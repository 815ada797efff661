package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"NewswireNotifier/internal/ports"
)

// StdinName labels the bulletin read from standard input.
const StdinName = "<stdin>"

// FileSource implements BulletinSource over file paths and glob patterns.
type FileSource struct {
	patterns []string
	stdin    io.Reader
	logger   *slog.Logger
}

var _ ports.BulletinSource = (*FileSource)(nil)

// NewFileSource expands patterns (doublestar syntax, e.g. "feeds/**/*.xml").
// With no patterns the source reads a single bulletin from stdin.
func NewFileSource(patterns []string, stdin io.Reader, log *slog.Logger) *FileSource {
	return &FileSource{
		patterns: patterns,
		stdin:    stdin,
		logger:   log,
	}
}

// Bulletins reads every matched file in pattern order, files sorted within a pattern.
func (s *FileSource) Bulletins(ctx context.Context) ([]ports.Bulletin, error) {
	if len(s.patterns) == 0 {
		return s.readStdin()
	}

	seen := map[string]struct{}{}
	var bulletins []ports.Bulletin
	for _, pattern := range s.patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %s matched no files", pattern)
		}
		sort.Strings(matches)
		s.debug("expand pattern", "pattern", pattern, "matches", len(matches))

		for _, path := range matches {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}

			bulletin, err := ReadFile(path)
			if err != nil {
				return nil, err
			}
			bulletins = append(bulletins, bulletin)
		}
	}

	s.debug("file source done", "bulletins", len(bulletins))
	return bulletins, nil
}

// ReadFile loads one bulletin from disk.
func ReadFile(path string) (ports.Bulletin, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return ports.Bulletin{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ports.Bulletin{Name: path, Body: body, ReceivedAt: time.Now()}, nil
}

func (s *FileSource) readStdin() ([]ports.Bulletin, error) {
	if s.stdin == nil {
		return nil, fmt.Errorf("no input files and no stdin")
	}
	body, err := io.ReadAll(s.stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return []ports.Bulletin{{Name: StdinName, Body: body, ReceivedAt: time.Now()}}, nil
}

func (s *FileSource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
