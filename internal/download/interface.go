package download

import "context"

// Downloader acquires the audio track of a remote video into a destination
// directory and returns the path of the produced file.
type Downloader interface {
	Download(ctx context.Context, url, destDir string) (string, error)
}
