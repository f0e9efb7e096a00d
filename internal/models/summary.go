package models

// BrandSummary holds per-brand rollups for one platform and month
// selection. Averages are zero when PostCount is zero.
type BrandSummary struct {
	Brand          string   `json:"brand"`
	Platform       Platform `json:"platform"`
	PostCount      int      `json:"postCount"`
	TotalLikes     int64    `json:"totalLikes"`
	TotalComments  int64    `json:"totalComments"`
	TotalShares    int64    `json:"totalShares"`
	TotalCollects  int64    `json:"totalCollects"`
	TotalViews     int64    `json:"totalViews"`
	AvgLikes       float64  `json:"avgLikes"`
	AvgComments    float64  `json:"avgComments"`
	AvgViews       float64  `json:"avgViews"`
	EngagementRate float64  `json:"engagementRate"`
	AvgSentiment   float64  `json:"avgSentiment"`
	PositiveCount  int      `json:"positiveCount"`
	NeutralCount   int      `json:"neutralCount"`
	NegativeCount  int      `json:"negativeCount"`
}

// MonthlyPoint is one month bucket of the trend series
type MonthlyPoint struct {
	Month          string  `json:"month"`
	PostCount      int     `json:"postCount"`
	EngagementSum  float64 `json:"engagementSum"`
	SentimentSum   float64 `json:"sentimentSum"`
	SentimentCount int     `json:"sentimentCount"`
	SentimentAvg   float64 `json:"sentimentAvg"`
}

// Trend classification values
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// TrendSummary is the coarse first-vs-last month sentiment trend
type TrendSummary struct {
	Brand    string         `json:"brand"`
	Platform Platform       `json:"platform"`
	Points   []MonthlyPoint `json:"points"`
	Trend    string         `json:"trend"`
}

// HashtagCount is one entry of a brand's hashtag frequency table
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
