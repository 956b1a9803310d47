package policy

import (
	"context"
	"fmt"
	"strings"

	"github.com/vadim/engage-metric/internal/domain/monitor/entity"
	"github.com/vadim/engage-metric/internal/domain/monitor/service"
)

// RowSource reads a rectangular range of string cells from the backing
// spreadsheet
type RowSource interface {
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

// Policy handles user lookup requests
type Policy struct {
	source        RowSource
	svc           *service.Service
	spreadsheetID string
	commentsRange string
}

// New creates a monitor policy
func New(source RowSource, svc *service.Service, spreadsheetID, commentsRange string) *Policy {
	return &Policy{
		source:        source,
		svc:           svc,
		spreadsheetID: spreadsheetID,
		commentsRange: commentsRange,
	}
}

// LookupUser resolves a query into a user's interaction history. An empty
// query is entity.ErrQueryMissing.
func (p *Policy) LookupUser(ctx context.Context, query string) (*entity.LookupResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, entity.ErrQueryMissing
	}

	rows, err := p.source.GetValues(ctx, p.spreadsheetID, p.commentsRange)
	if err != nil {
		return nil, fmt.Errorf("reading comments sheet: %w", err)
	}

	return p.svc.Lookup(query, rows), nil
}
