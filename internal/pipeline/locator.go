package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/mikhailklassen/yt-transcribe/internal/apperr"
)

const maxSlugLength = 100

var (
	reUnsafe     = regexp.MustCompile(`[<>:"/\\|?*]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Location is a resolved output directory for one job. Artifact paths hang
// off it with fixed names so reruns find prior results.
type Location struct {
	Dir string
}

func (l Location) Transcript() string     { return filepath.Join(l.Dir, "transcript.txt") }
func (l Location) ReportMarkdown() string { return filepath.Join(l.Dir, "report.md") }
func (l Location) ReportPDF() string      { return filepath.Join(l.Dir, "report.pdf") }
func (l Location) ReportDocx() string     { return filepath.Join(l.Dir, "report.docx") }
func (l Location) JobLog() string         { return filepath.Join(l.Dir, "job.log") }

// Resolve derives the canonical location <base>/<YYYY-MM-DD>/<slug> and
// creates it. The same (base, date, rawTitle) triple always resolves to the
// same path; that determinism is what makes artifact reuse across runs work.
func Resolve(base string, date time.Time, rawTitle string) (Location, error) {
	const op = "pipeline.Resolve"

	dir := filepath.Join(base, date.Format("2006-01-02"), Slugify(rawTitle))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Location{}, apperr.IO(op, err, fmt.Sprintf("cannot create output directory %s", dir))
	}

	return Location{Dir: dir}, nil
}

// LocationAt wraps an existing directory without creating anything. Used by
// report-from-file mode, where outputs land beside the given transcript.
func LocationAt(dir string) Location {
	return Location{Dir: dir}
}

// Slugify normalizes a title into a filesystem-safe directory name: unsafe
// characters dropped, whitespace runs collapsed to one underscore, leading
// and trailing separators trimmed, bounded length.
func Slugify(title string) string {
	s := reUnsafe.ReplaceAllString(title, "")
	s = reWhitespace.ReplaceAllString(s, "_")
	s = strings.Trim(s, "._")

	if runes := []rune(s); len(runes) > maxSlugLength {
		s = string(runes[:maxSlugLength])
	}

	if s == "" {
		return "video"
	}
	return s
}
