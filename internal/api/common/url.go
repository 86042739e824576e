package common

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// GetAndValidateURLParam extracts and unescapes a URL parameter from the request.
// The value stays in its transport encoding; decoding it is left to the service.
// An empty value is an invalid argument.
func GetAndValidateURLParam(r *http.Request, paramName string) (string, error) {
	decoded, err := url.PathUnescape(chi.URLParam(r, paramName))
	if err != nil {
		return "", service.NewInvalidArgumentError("invalid URL encoding in %s", paramName)
	}

	if strings.TrimSpace(decoded) == "" {
		return "", service.NewInvalidArgumentError("%s cannot be empty", paramName)
	}

	return decoded, nil
}

// PageParams are the paging query parameters of a list request
type PageParams struct {
	Cursor string
	Limit  *int
}

// ParsePageParams reads the limit and cursor query parameters.
// Range checks are left to the pager.
func ParsePageParams(r *http.Request) (PageParams, error) {
	query := r.URL.Query()
	params := PageParams{Cursor: query.Get("cursor")}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return PageParams{}, service.NewInvalidArgumentError("invalid limit parameter: must be an integer")
		}
		params.Limit = &limit
	}

	return params, nil
}

// ListOptions converts the paging parameters into service options
func ListOptions[T service.ListShellsOptions | service.ListSubmodelsOptions](p PageParams) []service.Option[T] {
	var opts []service.Option[T]
	if p.Cursor != "" {
		opts = append(opts, service.WithCursor[T](p.Cursor))
	}
	if p.Limit != nil {
		opts = append(opts, service.WithLimit[T](*p.Limit))
	}
	return opts
}

// Location returns the path of a created resource below the request path
func Location(r *http.Request, encodedID string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(r.URL.Path, "/"), url.PathEscape(encodedID))
}
