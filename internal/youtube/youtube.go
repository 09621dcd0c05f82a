// Package youtube normalizes externally supplied YouTube URLs into the
// canonical embed form used for inline playback.
package youtube

import (
	"errors"
	"regexp"
)

// ErrInvalidURL is returned when no video id can be extracted.
var ErrInvalidURL = errors.New("unrecognized youtube url")

// Accepted shapes: .../watch?v=<ID> and youtu.be/<ID>. The id runs
// until '&', '?', '#', a newline, or the end of the string.
var (
	watchRe = regexp.MustCompile(`[?&]v=([^&?#\n]+)`)
	shortRe = regexp.MustCompile(`youtu\.be/([^&?#\n]+)`)
)

// ExtractID pulls the video id out of a watch or youtu.be URL.
func ExtractID(rawURL string) (string, error) {
	if m := watchRe.FindStringSubmatch(rawURL); m != nil {
		return m[1], nil
	}
	if m := shortRe.FindStringSubmatch(rawURL); m != nil {
		return m[1], nil
	}
	return "", ErrInvalidURL
}

// EmbedURL returns the canonical embed URL for a video id.
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}

// Canonicalize converts an accepted URL shape into its embed form.
// The result is deterministic for a given id, so canonicalizing an
// already extracted id always reproduces the same string.
func Canonicalize(rawURL string) (string, error) {
	id, err := ExtractID(rawURL)
	if err != nil {
		return "", err
	}
	return EmbedURL(id), nil
}
