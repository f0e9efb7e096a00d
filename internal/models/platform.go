package models

import "fmt"

// Platform discriminates the two post shapes. Aggregation code switches
// on it exhaustively; an unknown tag is a caller bug, not a data issue.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms lists all supported platforms
var Platforms = []Platform{PlatformInstagram, PlatformTikTok}

// ParsePlatform parses a platform tag
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformInstagram, PlatformTikTok:
		return Platform(s), nil
	default:
		return "", fmt.Errorf("unrecognized platform: %q", s)
	}
}

// MediaType is the Instagram media kind
type MediaType string

const (
	MediaImage   MediaType = "Image"
	MediaVideo   MediaType = "Video"
	MediaSidecar MediaType = "Sidecar"
)

// SentimentLabel is the three-way classification of post text
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)
