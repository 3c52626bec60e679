package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Download fetches the best audio stream for the URL and extracts it via
// ffmpeg. The file lands in destDir under a unique audio_* name; ownership
// of the file passes to the caller the moment this returns.
func (d *implDownloader) Download(ctx context.Context, url, destDir string) (string, error) {
	if _, err := d.executor.LookPath(d.cfg.YtDlpPath); err != nil {
		return "", fmt.Errorf("%w; install yt-dlp (https://github.com/yt-dlp/yt-dlp) and ensure it is on PATH", err)
	}
	// yt-dlp shells out to ffmpeg for the audio extraction postprocessor.
	if _, err := d.executor.LookPath("ffmpeg"); err != nil {
		return "", fmt.Errorf("%w; install ffmpeg, audio extraction depends on it", err)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create destination directory: %w", err)
	}

	base, err := uniqueBase(destDir)
	if err != nil {
		return "", err
	}

	d.logger.Info(ctx, "downloading audio from %s", url)

	args := []string{
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", d.cfg.AudioFormat,
		"--audio-quality", d.cfg.AudioQuality,
		"-o", base + ".%(ext)s",
		"--no-warnings",
		"--quiet",
		url,
	}

	if _, err := d.executor.Execute(ctx, d.cfg.YtDlpPath, args...); err != nil {
		return "", fmt.Errorf("yt-dlp: %w", err)
	}

	audioPath, err := d.locateResult(base, destDir)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(audioPath)
	if err != nil {
		return "", fmt.Errorf("stat downloaded audio: %w", err)
	}
	if info.Size() == 0 {
		_ = os.Remove(audioPath)
		return "", fmt.Errorf("downloaded audio file is empty (0 bytes)")
	}

	d.logger.Info(ctx, "audio downloaded: %s (%d bytes)", audioPath, info.Size())
	return audioPath, nil
}

// uniqueBase reserves a unique audio_* base name in dir. The placeholder file
// is removed again so yt-dlp can create the real one with its own extension.
func uniqueBase(dir string) (string, error) {
	f, err := os.CreateTemp(dir, "audio_*")
	if err != nil {
		return "", fmt.Errorf("reserve audio file name: %w", err)
	}
	base := f.Name()
	f.Close()
	if err := os.Remove(base); err != nil {
		return "", fmt.Errorf("release reserved name: %w", err)
	}
	return base, nil
}

// locateResult finds the file yt-dlp produced. Normally that is base plus the
// configured format extension; a fallback glob covers formats where the
// postprocessor picked a different container.
func (d *implDownloader) locateResult(base, destDir string) (string, error) {
	expected := base + "." + d.cfg.AudioFormat
	if _, err := os.Stat(expected); err == nil {
		return expected, nil
	}

	matches, err := filepath.Glob(base + ".*")
	if err != nil {
		return "", fmt.Errorf("search for downloaded audio: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("yt-dlp reported success but no audio file was found in %s", destDir)
	}
	return matches[0], nil
}
