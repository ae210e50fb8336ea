package media

import (
	"path/filepath"
	"strings"
)

// Recognized upload extensions. Video inputs get their audio track
// extracted; audio inputs pass through unchanged.
var (
	audioExts = map[string]bool{
		".mp3": true,
		".wav": true,
		".m4a": true,
	}

	videoExts = map[string]bool{
		".mp4":  true,
		".avi":  true,
		".mov":  true,
		".webm": true,
	}
)

// IsAudio reports whether the filename has a recognized audio extension.
func IsAudio(filename string) bool {
	return audioExts[normalizeExt(filename)]
}

// IsVideo reports whether the filename has a recognized video extension.
func IsVideo(filename string) bool {
	return videoExts[normalizeExt(filename)]
}

// IsRecognized reports whether the filename is an accepted upload type.
func IsRecognized(filename string) bool {
	return IsAudio(filename) || IsVideo(filename)
}

func normalizeExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
