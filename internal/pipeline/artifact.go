package pipeline

import "os"

// ArtifactKind names a typed output file within a Location.
type ArtifactKind string

const (
	ArtifactTranscript     ArtifactKind = "transcript"
	ArtifactReportMarkdown ArtifactKind = "report_markdown"
	ArtifactReportPDF      ArtifactKind = "report_pdf"
	ArtifactLog            ArtifactKind = "log"
)

// Inspection reports which artifacts are present in a location.
type Inspection map[ArtifactKind]bool

// Inspect checks a location for pre-existing artifacts. Present means the
// file exists with non-zero size; a zero-byte file is treated as absent so
// skip logic never trusts a corrupt prior run.
func Inspect(loc Location) Inspection {
	return Inspection{
		ArtifactTranscript:     artifactPresent(loc.Transcript()),
		ArtifactReportMarkdown: artifactPresent(loc.ReportMarkdown()),
		ArtifactReportPDF:      artifactPresent(loc.ReportPDF()),
		ArtifactLog:            artifactPresent(loc.JobLog()),
	}
}

func artifactPresent(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}
