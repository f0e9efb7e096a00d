package models

import (
	"encoding/json"
	"time"
)

// InstagramPost is one record of an exported Instagram dataset.
// Counter fields may be absent in the export; zero values stand in.
type InstagramPost struct {
	ID             string    `json:"id"`
	Brand          string    `json:"brand,omitempty"`
	Caption        string    `json:"caption"`
	Timestamp      string    `json:"timestamp"`
	LikesCount     int64     `json:"likesCount"`
	CommentsCount  int64     `json:"commentsCount"`
	MediaType      MediaType `json:"type"`
	VideoViewCount int64     `json:"videoViewCount,omitempty"`
	Hashtags       []string  `json:"hashtags,omitempty"`
	URL            string    `json:"url,omitempty"`
}

// TikTokHashtag is the object-wrapped tag shape of TikTok exports
type TikTokHashtag struct {
	Name string `json:"name"`
}

// TikTokPost is one record of an exported TikTok dataset. CreateTime
// is kept raw because exports carry it either as Unix seconds or as a
// date string; the normalizer decides.
type TikTokPost struct {
	ID           string          `json:"id"`
	Brand        string          `json:"brand,omitempty"`
	Text         string          `json:"text"`
	CreateTime   json.RawMessage `json:"createTime"`
	DiggCount    int64           `json:"diggCount"`
	CommentCount int64           `json:"commentCount"`
	ShareCount   int64           `json:"shareCount"`
	CollectCount int64           `json:"collectCount"`
	PlayCount    int64           `json:"playCount"`
	Hashtags     []TikTokHashtag `json:"hashtags,omitempty"`
	URL          string          `json:"webVideoUrl,omitempty"`
}

// Post is the normalized, platform-tagged record every aggregation
// stage consumes. It is produced from the raw variants and never
// written back; all counters are zero-defaulted.
type Post struct {
	Platform  Platform  `json:"platform"`
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Text      string    `json:"text"`
	Date      time.Time `json:"date"`
	Likes     int64     `json:"likes"`
	Comments  int64     `json:"comments"`
	Shares    int64     `json:"shares"`
	Collects  int64     `json:"collects"`
	Views     int64     `json:"views"`
	MediaType MediaType `json:"mediaType,omitempty"`
	Hashtags  []string  `json:"hashtags,omitempty"`
	URL       string    `json:"url,omitempty"`
}

// ScoredPost is a Post plus its derived fields. Derived values live on
// a new record so source slices stay immutable.
type ScoredPost struct {
	Post
	EngagementRate float64        `json:"engagementRate"`
	SentimentScore float64        `json:"sentimentScore"`
	SentimentLabel SentimentLabel `json:"sentimentLabel"`
	PositiveWords  []string       `json:"positiveWords,omitempty"`
	NegativeWords  []string       `json:"negativeWords,omitempty"`
}
