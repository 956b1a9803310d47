package service

import (
	"sort"
	"strings"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
)

// topEngagers tallies interactions per normalized username and returns the
// top N, count descending, ties kept in first-encountered order.
func (s *Service) topEngagers(items []entity.Interaction) []entity.Engager {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, item := range items {
		username := normalizeUsername(item.Username)
		if username == "" {
			continue
		}
		if _, seen := counts[username]; !seen {
			order = append(order, username)
		}
		counts[username]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > s.cfg.TopEngagers {
		order = order[:s.cfg.TopEngagers]
	}

	top := make([]entity.Engager, 0, len(order))
	for _, username := range order {
		top = append(top, entity.Engager{
			Username:     "@" + username,
			Interactions: counts[username],
		})
	}
	return top
}

// normalizeUsername canonicalizes a handle for ranking: lowercase, one
// leading "@" stripped, all whitespace removed. "@Foo", "foo" and " foo "
// all collapse to "foo".
func normalizeUsername(u string) string {
	u = strings.ToLower(strings.TrimSpace(u))
	u = strings.TrimPrefix(u, "@")
	return strings.Join(strings.Fields(u), "")
}
