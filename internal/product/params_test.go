package product

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(raw string) Lookup {
	v, _ := url.ParseQuery(raw)
	return func(key string) (string, bool) {
		vals, ok := v[key]
		if !ok || len(vals) == 0 {
			return "", false
		}
		return vals[0], true
	}
}

func TestResolveListParams_Defaults(t *testing.T) {
	p, err := ResolveListParams(lookup(""))
	require.NoError(t, err)
	assert.Equal(t, ListParams{Limit: 10, Skip: 0, SortBy: "id", Order: "asc"}, p)
}

func TestResolveListParams_Supplied(t *testing.T) {
	p, err := ResolveListParams(lookup("limit=5&skip=15&sortBy=price&order=desc"))
	require.NoError(t, err)
	assert.Equal(t, ListParams{Limit: 5, Skip: 15, SortBy: "price", Order: "desc"}, p)
}

func TestResolveListParams_EmptyValuesFallBack(t *testing.T) {
	p, err := ResolveListParams(lookup("limit=&skip=&sortBy=&order="))
	require.NoError(t, err)
	assert.Equal(t, DefaultListParams(), p)
}

func TestResolveListParams_Invalid(t *testing.T) {
	cases := map[string]error{
		"limit=abc": ErrInvalidLimit,
		"limit=0":   ErrInvalidLimit,
		"limit=-3":  ErrInvalidLimit,
		"skip=x":    ErrInvalidSkip,
		"skip=-1":   ErrInvalidSkip,
	}
	for raw, want := range cases {
		_, err := ResolveListParams(lookup(raw))
		assert.ErrorIs(t, err, want, raw)
	}
}

func TestResolveSearchParams(t *testing.T) {
	p, err := ResolveSearchParams(lookup("q=phone"))
	require.NoError(t, err)
	assert.Equal(t, SearchParams{Q: "phone", Limit: 10, Skip: 0}, p)

	p, err = ResolveSearchParams(lookup("q=phone&limit=3&skip=6"))
	require.NoError(t, err)
	assert.Equal(t, SearchParams{Q: "phone", Limit: 3, Skip: 6}, p)
}

func TestResolveSearchParams_Errors(t *testing.T) {
	_, err := ResolveSearchParams(lookup("limit=3"))
	assert.ErrorIs(t, err, ErrMissingQuery)
	assert.Equal(t, "Query parameter is missing", err.Error())

	_, err = ResolveSearchParams(lookup("q=x&limit=0"))
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = ResolveSearchParams(lookup("q=x&skip=-2"))
	assert.ErrorIs(t, err, ErrInvalidSkip)

	// missing q is reported before a bad limit
	_, err = ResolveSearchParams(lookup("limit=zz"))
	assert.ErrorIs(t, err, ErrMissingQuery)
}

func TestResolveSearchParams_EmptyQueryAllowed(t *testing.T) {
	p, err := ResolveSearchParams(lookup("q="))
	require.NoError(t, err)
	assert.Equal(t, "", p.Q)
}

func TestSanitizeQuery(t *testing.T) {
	assert.Equal(t, "phone", SanitizeQuery("phone"))
	assert.Equal(t, "&#60;b&#62;tom&#38;jerry&#60;/b&#62;", SanitizeQuery("<b>tom&jerry</b>"))
	assert.Equal(t, "it&#39;s &#34;ok&#34;", SanitizeQuery(`it's "ok"`))
	assert.Equal(t, "a&#10;b", SanitizeQuery("a\nb"))
	assert.Equal(t, "crème", SanitizeQuery("crème"))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, "42", id)

	for _, bad := range []string{"", "abc", "4x", "-1", "1.5"} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, ErrInvalidID, bad)
	}
}
