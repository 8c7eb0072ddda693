package joplin

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
)

// listPage is the per-page decoding of a list response. The API answers
// either with an envelope carrying an items array and a has_more flag, or
// with a bare array.
type listPage struct {
	items   []gjson.Result
	hasMore bool
}

// parsePage resolves the response shape once per page. ok is false for any
// shape that is neither envelope nor array; the caller stops fetching.
func parsePage(result gjson.Result, requested int) (listPage, bool) {
	items := result.Get("items")
	switch {
	case result.IsObject() && items.Exists():
		return listPage{items: items.Array(), hasMore: result.Get("has_more").Bool()}, true
	case result.IsArray():
		arr := result.Array()
		return listPage{items: arr, hasMore: len(arr) >= requested}, true
	default:
		return listPage{}, false
	}
}

// FetchAll aggregates a paginated list endpoint. Accumulation stops when
// the server signals no further pages, a bare-array page comes back short,
// the page ceiling is reached, or the shape is unrecognized. A positive
// limit caps the returned slice; zero means unbounded.
func (c *Client) FetchAll(ctx context.Context, endpoint string, query url.Values, limit int) ([]gjson.Result, error) {
	if query == nil {
		query = url.Values{}
	}
	perPage := serverPageMax
	if limit > 0 && limit < perPage {
		perPage = limit
	}

	var items []gjson.Result
	for page := 1; page <= maxPages; page++ {
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(perPage))

		result, err := c.Request(ctx, http.MethodGet, endpoint, nil, query)
		if err != nil {
			return nil, err
		}

		decoded, ok := parsePage(result, perPage)
		if !ok {
			break
		}
		items = append(items, decoded.items...)
		if !decoded.hasMore {
			break
		}
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
