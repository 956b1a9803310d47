package policy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim/engage-metric/internal/domain/engagement/service"
	"github.com/vadim/engage-metric/internal/domain/engagement/sentiment"
)

type fakeSource struct {
	rows map[string][][]string
	err  error
}

func (f *fakeSource) GetValues(_ context.Context, _, readRange string) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows[readRange], nil
}

func newPolicy(source RowSource) *Policy {
	svc := service.New(sentiment.New(), service.Config{Location: time.UTC})
	return New(source, svc, SheetRanges{
		SpreadsheetID: "sheet-1",
		Comments:      "Comentários!A:Z",
		Mentions:      "Menção Storie!A:Z",
	})
}

func TestDashboardReadsBothSheets(t *testing.T) {
	source := &fakeSource{rows: map[string][][]string{
		"Comentários!A:Z": {
			{"sentimento", "conteudo_do_comentario", "username_do_lead", "tipo_de_publicacao", "data", "hora"},
			{"positivo", "Amei!", "joao", "FEED", "2024-01-01", "10:00"},
		},
		"Menção Storie!A:Z": {
			{"sentimento", "resposta_ia", "data", "username (quando já tivermos salvo)"},
			{"negativo", "resposta", "2024-01-01", "maria"},
		},
	}}

	d, err := newPolicy(source).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, d.Feed.Counts.Positive)
	assert.Equal(t, 1, d.Story.Counts.Negative)
	assert.Equal(t, 2, d.Totals.Total)
}

func TestDashboardSourceFailureAbortsRequest(t *testing.T) {
	source := &fakeSource{err: errors.New("upstream unavailable")}

	d, err := newPolicy(source).Dashboard(context.Background())

	require.Error(t, err)
	assert.Nil(t, d)
	assert.ErrorContains(t, err, "upstream unavailable")
}

func TestDashboardEmptySheetsAreNotAnError(t *testing.T) {
	d, err := newPolicy(&fakeSource{}).Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, d.Totals.Total)
}
