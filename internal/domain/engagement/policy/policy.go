package policy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
	"github.com/vadim/engage-metric/internal/domain/engagement/service"
)

// RowSource reads a rectangular range of string cells from the backing
// spreadsheet. The first row of a non-empty result is the header.
type RowSource interface {
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

// SheetRanges names the two ranges the dashboard aggregates
type SheetRanges struct {
	SpreadsheetID string
	Comments      string
	Mentions      string
}

// Policy orchestrates one dashboard aggregation per request: fetch both
// sheets, then run the in-memory pipeline. Aggregation is all-or-nothing; a
// failed read aborts the request with no partial result.
type Policy struct {
	source RowSource
	svc    *service.Service
	ranges SheetRanges
}

// New creates an engagement policy
func New(source RowSource, svc *service.Service, ranges SheetRanges) *Policy {
	return &Policy{
		source: source,
		svc:    svc,
		ranges: ranges,
	}
}

// Dashboard fetches both sheets and builds the consolidated payload. The two
// reads are independent and issued concurrently.
func (p *Policy) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	var commentRows, mentionRows [][]string

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := p.source.GetValues(ctx, p.ranges.SpreadsheetID, p.ranges.Comments)
		if err != nil {
			return fmt.Errorf("reading comments sheet: %w", err)
		}
		commentRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := p.source.GetValues(ctx, p.ranges.SpreadsheetID, p.ranges.Mentions)
		if err != nil {
			return fmt.Errorf("reading mentions sheet: %w", err)
		}
		mentionRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return p.svc.BuildDashboard(commentRows, mentionRows), nil
}
