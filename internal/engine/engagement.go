package engine

import (
	"fmt"

	"github.com/brandpulse/brandpulse/internal/models"
)

// EngagementRate computes the per-post engagement figure.
//
// The formulas are business contracts, not incidental:
//   - Instagram Video: (likes+comments)/videoViews x 100, 0 when views are 0.
//   - Instagram Image/Sidecar: likes+comments as a raw count. The
//     asymmetry with Video is intentional and preserved.
//   - TikTok: (digg+comment+share+collect)/plays x 100, 0 when plays are 0.
func EngagementRate(p models.Post) float64 {
	switch p.Platform {
	case models.PlatformInstagram:
		if p.MediaType == models.MediaVideo {
			if p.Views <= 0 {
				return 0
			}
			return float64(p.Likes+p.Comments) / float64(p.Views) * 100
		}
		return float64(p.Likes + p.Comments)
	case models.PlatformTikTok:
		if p.Views <= 0 {
			return 0
		}
		return float64(p.Likes+p.Comments+p.Shares+p.Collects) / float64(p.Views) * 100
	default:
		// Only the normalizer constructs posts; an unknown platform
		// here is a contract violation, not a data condition.
		panic(fmt.Sprintf("unrecognized platform: %q", p.Platform))
	}
}

// CohortRate computes the brand-level engagement rate for a cohort as
// a ratio of sums, never a mean of per-post rates. Instagram posts
// contribute only when they are videos; other media types have no
// views denominator.
func CohortRate(posts []models.Post) float64 {
	var num, den int64
	for _, p := range posts {
		switch p.Platform {
		case models.PlatformInstagram:
			if p.MediaType != models.MediaVideo {
				continue
			}
			num += p.Likes + p.Comments
			den += p.Views
		case models.PlatformTikTok:
			num += p.Likes + p.Comments + p.Shares + p.Collects
			den += p.Views
		default:
			panic(fmt.Sprintf("unrecognized platform: %q", p.Platform))
		}
	}
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}
