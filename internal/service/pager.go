package service

import (
	"strconv"
)

// PageRequest selects a window of a listing. A nil Cursor starts at the beginning and
// a nil Limit returns everything that remains.
type PageRequest struct {
	Cursor *string
	Limit  *int
}

// Page is one window of a listing. NextCursor is empty when no further items exist.
type Page[T any] struct {
	Items      []T
	NextCursor string
}

// HasMore reports whether another page can be requested with NextCursor.
func (p *Page[T]) HasMore() bool {
	return p.NextCursor != ""
}

// Paginate cuts a page out of an already materialised snapshot.
//
// The cursor is the decimal offset of the first item of the page and must address an
// existing item. With a limit, one extra item is looked at to decide whether a next
// cursor is produced; the next cursor is offset+limit. Without a limit all remaining
// items are returned and no next cursor is produced.
func Paginate[T any](items []T, req PageRequest) (*Page[T], error) {
	offset := 0
	if req.Cursor != nil {
		parsed, err := strconv.ParseInt(*req.Cursor, 10, 64)
		if err != nil || parsed < 0 || parsed >= int64(len(items)) {
			return nil, NewInvalidArgumentError("invalid cursor (cursor: %s)", *req.Cursor)
		}
		offset = int(parsed)
	}

	remaining := items[offset:]

	if req.Limit == nil {
		return &Page[T]{Items: append([]T{}, remaining...)}, nil
	}

	limit := *req.Limit
	if limit < 1 {
		return nil, NewInvalidArgumentError("limit must be at least 1 (limit: %d)", limit)
	}

	if len(remaining) <= limit {
		return &Page[T]{Items: append([]T{}, remaining...)}, nil
	}

	return &Page[T]{
		Items:      append([]T{}, remaining[:limit]...),
		NextCursor: strconv.Itoa(offset + limit),
	}, nil
}
