package repository

import (
	"math/rand/v2"
	"time"

	"github.com/portfolio/backend/internal/model"
)

// SeedWindow bounds how far before startup a seed message may be dated.
const SeedWindow = 7 * 24 * time.Hour

var sampleCommunityMessages = []model.NewCommunityMessage{
	{
		Name:    "Alex Rodriguez",
		Message: "Great portfolio! Really impressed with your projects. The cab booking system looks particularly interesting.",
		Avatar:  ptr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=40&h=40&fit=crop&crop=face"),
	},
	{
		Name:    "Sarah Chen",
		Message: "Your health bot project caught my attention. Machine learning in healthcare is fascinating! Would love to know more about the datasets you used.",
		Avatar:  ptr("https://images.unsplash.com/photo-1494790108755-2616b612b002?w=40&h=40&fit=crop&crop=face"),
	},
	{
		Name:    "Michael Thompson",
		Message: "Nice work on the ReactJS projects! The inventory management system must have been quite challenging. Keep up the great work!",
		Avatar:  ptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=40&h=40&fit=crop&crop=face"),
	},
	{
		Name:    "Priya Sharma",
		Message: "Congratulations on completing the Zoho Young Creator Program! That's a fantastic achievement. Your skills are really well-rounded.",
		Avatar:  ptr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=40&h=40&fit=crop&crop=face"),
	},
}

// SeedCommunityMessages returns the fixed sample posts, each dated at a
// pseudo-random instant within SeedWindow before now. IDs are left zero.
// A nil rng uses the global source.
func SeedCommunityMessages(now time.Time, rng *rand.Rand) []model.CommunityMessage {
	out := make([]model.CommunityMessage, 0, len(sampleCommunityMessages))
	for _, s := range sampleCommunityMessages {
		var offset int64
		if rng != nil {
			offset = rng.Int64N(int64(SeedWindow))
		} else {
			offset = rand.Int64N(int64(SeedWindow))
		}
		out = append(out, model.CommunityMessage{
			Name:      s.Name,
			Message:   s.Message,
			Avatar:    s.Avatar,
			CreatedAt: now.Add(-time.Duration(offset)).UTC(),
		})
	}
	return out
}

func ptr[T any](v T) *T { return &v }
