package coursegen

import "regexp"

// youtubePatterns matches the accepted link shapes: canonical watch
// links, shortened youtu.be links, embed links, and watch links with
// extra query parameters before v=.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// ExtractVideoID returns the canonical video identifier from any
// accepted YouTube link shape. Links that reference the same video
// yield the same identifier regardless of shape.
func ExtractVideoID(url string) (string, bool) {
	for _, p := range youtubePatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// IsValidYouTubeURL reports whether url matches an accepted link shape.
func IsValidYouTubeURL(url string) bool {
	_, ok := ExtractVideoID(url)
	return ok
}
