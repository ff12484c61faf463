package product

import (
	"strconv"
	"strings"
)

const (
	DefaultLimit  = 10
	DefaultSkip   = 0
	DefaultSortBy = "id"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Lookup returns a request parameter and whether it was supplied.
// gin's (*Context).GetQuery satisfies it.
type Lookup func(key string) (string, bool)

// ListParams are the resolved inputs of the list endpoint.
type ListParams struct {
	Limit  int
	Skip   int
	SortBy string
	Order  string
}

// SearchParams are the resolved inputs of the search endpoint.
type SearchParams struct {
	Q     string
	Limit int
	Skip  int
}

func DefaultListParams() ListParams {
	return ListParams{
		Limit:  DefaultLimit,
		Skip:   DefaultSkip,
		SortBy: DefaultSortBy,
		Order:  OrderAsc,
	}
}

// ResolveListParams applies defaults to the supplied values.
// limit must be an integer >= 1 and skip an integer >= 0 when present.
func ResolveListParams(get Lookup) (ListParams, error) {
	p := DefaultListParams()

	var err error
	if p.Limit, err = intParam(get, "limit", DefaultLimit, 1, ErrInvalidLimit); err != nil {
		return p, err
	}
	if p.Skip, err = intParam(get, "skip", DefaultSkip, 0, ErrInvalidSkip); err != nil {
		return p, err
	}
	if v, ok := get("sortBy"); ok && v != "" {
		p.SortBy = v
	}
	if v, ok := get("order"); ok && v != "" {
		p.Order = v
	}
	return p, nil
}

// ResolveSearchParams requires q and applies limit/skip defaults.
// Validation runs in the order q, limit, skip.
func ResolveSearchParams(get Lookup) (SearchParams, error) {
	var p SearchParams

	q, ok := get("q")
	if !ok {
		return p, ErrMissingQuery
	}
	p.Q = SanitizeQuery(q)

	var err error
	if p.Limit, err = intParam(get, "limit", DefaultLimit, 1, ErrInvalidLimit); err != nil {
		return p, err
	}
	if p.Skip, err = intParam(get, "skip", DefaultSkip, 0, ErrInvalidSkip); err != nil {
		return p, err
	}
	return p, nil
}

// ParseID accepts only unsigned decimal ids.
func ParseID(s string) (string, error) {
	if _, err := strconv.ParseUint(s, 10, 64); err != nil {
		return "", ErrInvalidID
	}
	return s, nil
}

// SanitizeQuery replaces quotes, angle brackets, ampersands and ASCII control
// characters with numeric HTML entities.
func SanitizeQuery(q string) string {
	var b strings.Builder
	b.Grow(len(q))
	for _, r := range q {
		switch {
		case r == '\'' || r == '"' || r == '<' || r == '>' || r == '&' || r < 32:
			b.WriteString("&#")
			b.WriteString(strconv.Itoa(int(r)))
			b.WriteByte(';')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// intParam treats an empty value as absent.
func intParam(get Lookup, key string, def, least int, invalid error) (int, error) {
	v, ok := get(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < least {
		return 0, invalid
	}
	return n, nil
}
