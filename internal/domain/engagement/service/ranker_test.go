package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
)

func byUser(usernames ...string) []entity.Interaction {
	items := make([]entity.Interaction, 0, len(usernames))
	for _, u := range usernames {
		items = append(items, entity.Interaction{Username: u})
	}
	return items
}

func TestTopEngagersNormalization(t *testing.T) {
	svc := newTestService()

	// "@Foo", "foo" and " foo " all land in the same bucket
	top := svc.topEngagers(byUser("@Foo", "foo", " foo ", "bar"))

	assert.Equal(t, []entity.Engager{
		{Username: "@foo", Interactions: 3},
		{Username: "@bar", Interactions: 1},
	}, top)
}

func TestTopEngagersSkipsEmpty(t *testing.T) {
	svc := newTestService()

	top := svc.topEngagers(byUser("", "   ", "@", "ana"))

	assert.Equal(t, []entity.Engager{{Username: "@ana", Interactions: 1}}, top)
}

func TestTopEngagersLimitAndTies(t *testing.T) {
	svc := newTestService(func(c *Config) { c.TopEngagers = 3 })

	top := svc.topEngagers(byUser(
		"a", "a", "a",
		"b", "b",
		"c", "c", // tied with b, first-encountered order wins
		"d",
		"e",
	))

	assert.Equal(t, []entity.Engager{
		{Username: "@a", Interactions: 3},
		{Username: "@b", Interactions: 2},
		{Username: "@c", Interactions: 2},
	}, top)
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"@Foo", "foo"},
		{" foo ", "foo"},
		{"Ana Silva", "anasilva"},
		{"@@double", "@double"},
		{"@", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeUsername(tt.in), "input %q", tt.in)
	}
}
