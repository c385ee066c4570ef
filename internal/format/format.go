package format

import (
	"fmt"
	"strings"
)

// Format is an audio file format offered by Bandcamp's download pages.
type Format string

const (
	MP3V0     Format = "mp3-v0"
	MP3       Format = "mp3"
	FLAC      Format = "flac"
	AAC       Format = "aac"
	OggVorbis Format = "ogg-vorbis"
	ALAC      Format = "alac"
	WAV       Format = "wav"
	AIFF      Format = "aiff"
)

// Formats returns all supported formats, in preference order. MP3V0 first —
// it is the default offered during configuration.
func Formats() []Format {
	return []Format{MP3V0, MP3, FLAC, AAC, OggVorbis, ALAC, WAV, AIFF}
}

// Names returns the string names of all supported formats.
func Names() []string {
	formats := Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// Parse converts a user-supplied name into a Format.
func Parse(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Formats() {
		if name == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown audio format %q (expected one of: %s)",
		s, strings.Join(Names(), ", "))
}

func (f Format) String() string {
	return string(f)
}
