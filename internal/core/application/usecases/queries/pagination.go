package queries

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"logistics/internal/pkg/errs"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 100

	cursorPrefix = "arrayconnection:"
)

// PageRequest is a validated forward page: at most First items after the
// item the After cursor points at.
type PageRequest struct {
	first  int
	offset int
}

// NewPageRequest validates the raw arguments. A nil first means
// DefaultPageSize; a nil or empty after starts at the first item.
func NewPageRequest(first *int, after *string) (PageRequest, error) {
	page := PageRequest{first: DefaultPageSize}

	if first != nil {
		if *first < 1 || *first > MaxPageSize {
			return PageRequest{}, errs.NewValueIsOutOfRangeError("first", *first, 1, MaxPageSize)
		}
		page.first = *first
	}

	if after != nil && *after != "" {
		position, err := DecodeCursor(*after)
		if err != nil {
			return PageRequest{}, err
		}
		page.offset = position + 1
	}

	return page, nil
}

func (p PageRequest) First() int {
	return p.first
}

func (p PageRequest) Offset() int {
	return p.offset
}

// limit fetches one extra row to learn whether a next page exists.
func (p PageRequest) limit() int {
	if p.first == 0 {
		return DefaultPageSize + 1
	}
	return p.first + 1
}

// PageInfo describes the returned slice of the ordered result.
type PageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool
	StartCursor     *string
	EndCursor       *string
}

// EncodeCursor returns the opaque cursor of the item at position.
func EncodeCursor(position int) string {
	return base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(position)))
}

// DecodeCursor reverses EncodeCursor.
func DecodeCursor(cursor string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("after", err)
	}

	value, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause("after", errors.New("unknown cursor format"))
	}

	position, err := strconv.Atoi(value)
	if err != nil || position < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("after", fmt.Errorf("bad cursor position %q", value))
	}

	return position, nil
}

// paginate trims the extra row and returns the visible count, the item
// cursors and the page info.
func paginate(page PageRequest, fetched int) (int, []string, PageInfo) {
	visible := fetched
	if visible > page.limit()-1 {
		visible = page.limit() - 1
	}

	cursors := make([]string, visible)
	for i := range cursors {
		cursors[i] = EncodeCursor(page.offset + i)
	}

	info := PageInfo{
		HasNextPage:     fetched > visible,
		HasPreviousPage: page.offset > 0,
	}
	if visible > 0 {
		info.StartCursor = &cursors[0]
		info.EndCursor = &cursors[visible-1]
	}

	return visible, cursors, info
}
