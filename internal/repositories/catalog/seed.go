package catalog

import (
	"time"

	"github.com/nailbook/stories-player/internal/domain"
)

func seed(now time.Time) ([]domain.Performer, map[string][]domain.Story) {
	performers := []domain.Performer{
		{ID: "1", Name: "Sarah M.", AvatarRef: "profiles/profile1.jpg"},
		{ID: "2", Name: "Lisa K.", AvatarRef: "profiles/profile2.jpg"},
		{ID: "3", Name: "Amy R.", AvatarRef: "profiles/profile3.jpg"},
		{ID: "4", Name: "Jane D.", AvatarRef: "profiles/profile4.jpg"},
		{ID: "5", Name: "Emily W.", AvatarRef: "profiles/profile5.jpg"},
		{ID: "6", Name: "Sophia T.", AvatarRef: "profiles/profile1.jpg"},
		{ID: "7", Name: "Olivia P.", AvatarRef: "profiles/profile2.jpg"},
		{ID: "8", Name: "Mia C.", AvatarRef: "profiles/profile3.jpg"},
		{ID: "9", Name: "Isabella R.", AvatarRef: "profiles/profile4.jpg"},
		{ID: "10", Name: "Ava B.", AvatarRef: "profiles/profile5.jpg"},
		{ID: "11", Name: "Charlotte G.", AvatarRef: "profiles/profile1.jpg"},
		{ID: "12", Name: "Amelia S.", AvatarRef: "profiles/profile2.jpg"},
	}

	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	stories := map[string][]domain.Story{
		"1": {
			{ID: "1-1", PerformerID: "1", ImageRef: "nails/Nail Art Photo.jpeg", Caption: "Just completed this amazing French manicure! 💅", Timestamp: ago(2 * time.Hour)},
			{ID: "1-2", PerformerID: "1", ImageRef: "nails/Nail Art Photo (1).webp", Caption: "Chrome finish is trending this season! ✨", Timestamp: ago(time.Hour)},
			{ID: "1-3", PerformerID: "1", ImageRef: "nails/Nail Art Photo (4).webp", Caption: "Try this design for your next appointment!", Timestamp: ago(30 * time.Minute)},
		},
		"2": {
			{ID: "2-1", PerformerID: "2", ImageRef: "nails/Nail Art Photo (2).webp", Caption: "New gel technique gives amazing results", Timestamp: ago(2 * time.Hour)},
			{ID: "2-2", PerformerID: "2", ImageRef: "nails/Nail Art Photo (3).webp", Caption: "Custom designs for a wedding party today", Timestamp: ago(time.Hour)},
		},
		"3": {
			{ID: "3-1", PerformerID: "3", ImageRef: "nails/Nail Art Photo 3230266.webp", Caption: "Marble effect is back in style!", Timestamp: ago(90 * time.Minute)},
			{ID: "3-2", PerformerID: "3", ImageRef: "nails/Nail Art Photo (4).webp", Caption: "Love how these turned out", Timestamp: ago(time.Hour)},
			{ID: "3-3", PerformerID: "3", ImageRef: "nails/Nail Art Photo.jpeg", Caption: "Classic never goes out of style", Timestamp: ago(30 * time.Minute)},
		},
		"4": {
			{ID: "4-1", PerformerID: "4", ImageRef: "nails/Nail Art Photo (1).webp", Caption: "Spring vibes with these pastel colors", Timestamp: ago(time.Hour)},
		},
		"5": {
			{ID: "5-1", PerformerID: "5", ImageRef: "nails/Nail Art Photo (2).webp", Caption: "Geometric patterns are so in right now", Timestamp: ago(2 * time.Hour)},
			{ID: "5-2", PerformerID: "5", ImageRef: "nails/Nail Art Photo (3).webp", Caption: "Customer request - galaxy theme", Timestamp: ago(90 * time.Minute)},
		},
	}

	return performers, stories
}
