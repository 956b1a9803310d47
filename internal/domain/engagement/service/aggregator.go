package service

import "github.com/vadim/engage-metric/internal/domain/engagement/entity"

// newBucket returns an empty accumulator. Recent is non-nil so an empty
// bucket serializes as [] rather than null.
func newBucket() entity.Bucket {
	return entity.Bucket{Recent: []entity.Interaction{}}
}

// aggregateComments consumes the comments sheet (header row first) and fills
// the feed and reels buckets. Every row, bucketed or not, lands in the
// returned all list so cross-bucket features see it.
func (s *Service) aggregateComments(rows [][]string) (feed, reels entity.Bucket, all []entity.Interaction) {
	feed = newBucket()
	reels = newBucket()

	if len(rows) == 0 {
		s.finalizeBucket(&feed)
		s.finalizeBucket(&reels)
		return feed, reels, nil
	}

	h := IndexHeader(rows[0])
	for _, row := range rows[1:] {
		item := s.classifyComment(h, row)
		all = append(all, item)

		switch item.Type {
		case entity.PublicationFeed:
			bucketAdd(&feed, item)
		case entity.PublicationReels:
			bucketAdd(&reels, item)
		}
	}

	s.finalizeBucket(&feed)
	s.finalizeBucket(&reels)
	return feed, reels, all
}

// aggregateMentions consumes the story-mentions sheet; every data row is a
// story interaction.
func (s *Service) aggregateMentions(rows [][]string) entity.Bucket {
	story := newBucket()

	if len(rows) == 0 {
		s.finalizeBucket(&story)
		return story
	}

	h := IndexHeader(rows[0])
	for _, row := range rows[1:] {
		bucketAdd(&story, s.classifyMention(h, row))
	}

	s.finalizeBucket(&story)
	return story
}

func bucketAdd(b *entity.Bucket, item entity.Interaction) {
	b.Counts.Add(item.Sentiment)
	b.Recent = append(b.Recent, item)
	b.All = append(b.All, item)
}

// finalizeBucket freezes a bucket for serialization: the recent list is
// reversed (sheet rows arrive in chronological append order, the UI wants
// newest first) and truncated to the display limit, and the trend series is
// computed from the untruncated history.
func (s *Service) finalizeBucket(b *entity.Bucket) {
	for i, j := 0, len(b.Recent)-1; i < j; i, j = i+1, j-1 {
		b.Recent[i], b.Recent[j] = b.Recent[j], b.Recent[i]
	}
	if len(b.Recent) > s.cfg.RecentPerBucket {
		b.Recent = b.Recent[:s.cfg.RecentPerBucket]
	}

	b.Trend = s.calcTrend(b.All)
}
