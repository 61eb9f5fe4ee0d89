// Package pager walks server-paginated ARM listings. It builds azcore
// runtime pagers from a fetch function, so callers use the same More and
// NextPage loop as the generated Azure SDK clients.
package pager

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/rzbill/armkit/pkg/arm"
	"github.com/rzbill/armkit/pkg/log"
)

// ErrTooManyPages is returned by NextPage once a pager built WithMaxPages
// has produced its limit and the listing still continues.
var ErrTooManyPages = errors.New("page limit exceeded")

// Fetcher retrieves one page. nextLink is nil for the first page and the
// previous page's continuation token afterwards.
type Fetcher[P any] func(ctx context.Context, nextLink *string) (P, error)

// Option configures a pager.
type Option func(*options)

type options struct {
	logger   log.Logger
	maxPages int
}

// WithLogger sets the logger that records each fetched page at debug level.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMaxPages bounds the number of pages fetched. Zero means unbounded.
func WithMaxPages(n int) Option {
	return func(o *options) {
		o.maxPages = n
	}
}

// New returns a pager over the listing served by fetch. Nothing is fetched
// until the first NextPage call. More reports true before the first page and
// afterwards whether the last page carried a continuation token.
//
// A pager is single-use; call New again to restart the listing.
func New[P arm.Continuable](fetch Fetcher[P], opts ...Option) *runtime.Pager[P] {
	o := options{logger: log.GetDefaultLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.WithComponent("pager")

	fetched := 0
	return runtime.NewPager(runtime.PagingHandler[P]{
		More: func(page P) bool {
			return page.Continuation() != nil
		},
		Fetcher: func(ctx context.Context, prev *P) (P, error) {
			var next *string
			if prev != nil {
				next = (*prev).Continuation()
			}
			if o.maxPages > 0 && fetched >= o.maxPages {
				var zero P
				return zero, fmt.Errorf("%w: stopped after %d pages", ErrTooManyPages, o.maxPages)
			}

			page, err := fetch(ctx, next)
			if err != nil {
				var zero P
				return zero, fmt.Errorf("failed to fetch page %d: %w", fetched+1, err)
			}
			fetched++

			logger.Debug("Fetched page",
				log.Int("page", fetched),
				log.Bool("more", page.Continuation() != nil))
			return page, nil
		},
	})
}

// Collect drains p and concatenates the items selected from every page.
func Collect[P, T any](ctx context.Context, p *runtime.Pager[P], items func(P) []T) ([]T, error) {
	var out []T
	for p.More() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return out, err
		}
		out = append(out, items(page)...)
	}
	return out, nil
}

// FileFetcher serves pages from files in dir. The first page is read from
// first; each continuation token is mapped to a file name by TokenFile.
func FileFetcher[P any](dir, first string, decode func([]byte) (P, error)) Fetcher[P] {
	return func(ctx context.Context, nextLink *string) (P, error) {
		var zero P
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		name := first
		if nextLink != nil {
			name = TokenFile(*nextLink)
		}

		file := filepath.Join(dir, name)
		data, err := os.ReadFile(file)
		if errors.Is(err, os.ErrNotExist) && filepath.Ext(file) == "" {
			file += ".json"
			data, err = os.ReadFile(file)
		}
		if err != nil {
			return zero, err
		}

		page, err := decode(data)
		if err != nil {
			return zero, fmt.Errorf("%s: %w", file, err)
		}
		return page, nil
	}
}

// TokenFile maps a continuation token to a file name: the $skipToken query
// value when present, else the last element of the URL path, else the token
// itself. The result never contains a path separator.
func TokenFile(nextLink string) string {
	if u, err := url.Parse(nextLink); err == nil {
		if tok := u.Query().Get("$skipToken"); tok != "" {
			return filepath.Base(tok)
		}
		if u.Path != "" && u.Path != "/" {
			return path.Base(u.Path)
		}
	}
	return filepath.Base(nextLink)
}
