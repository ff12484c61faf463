package product

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	DefaultTitle       = "No title"
	DefaultDescription = "No description"
	DefaultCategory    = "No category"
	DefaultThumbnail   = "https://cdn.dummyjson.com/products/images/beauty/Red%20Nail%20Polish/thumbnail.png"

	shortDescriptionLen = 30
	currencySuffix      = " €"
)

// Stock labels, lowest tier first.
const (
	StockNone = "No stock"
	StockLow  = "Get it while you can"
	StockOK   = "On Stock"
)

// FormatProduct maps a raw record to its display shape. With list set the
// record carries short_description, otherwise category and tags.
func FormatProduct(raw Raw, list bool) Product {
	description := stringOr(raw, "description", DefaultDescription)
	p := Product{
		ID:          raw["id"],
		Title:       stringOr(raw, "title", DefaultTitle),
		Description: description,
		Price:       FormatPrice(numberOr(raw, "price", 0)),
		Stock:       StockLabel(int(numberOr(raw, "stock", 0))),
		Thumbnail:   stringOr(raw, "thumbnail", DefaultThumbnail),
	}

	if list {
		short := truncate(description, shortDescriptionLen)
		p.ShortDescription = &short
		return p
	}

	category := stringOr(raw, "category", DefaultCategory)
	tags := JoinTags(raw["tags"])
	p.Category = &category
	p.Tags = &tags
	return p
}

// FormatList formats every product in list shape, in order, and attaches
// pagination metadata.
func FormatList(products []Raw, total, limit, skip int) ListResponse {
	data := make([]Product, 0, len(products))
	for _, raw := range products {
		data = append(data, FormatProduct(raw, true))
	}
	return ListResponse{
		Data: data,
		Meta: Paginate(total, limit, skip),
	}
}

// Paginate derives page and total_pages. A non-positive limit collapses both to 1.
func Paginate(total, limit, skip int) Meta {
	m := Meta{Page: 1, TotalPages: 1, PerPage: limit}
	if limit > 0 {
		m.Page = skip/limit + 1
		m.TotalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return m
}

// StockLabel maps a stock count to its availability tier.
func StockLabel(stock int) string {
	switch {
	case stock == 0:
		return StockNone
	case stock < 5:
		return StockLow
	default:
		return StockOK
	}
}

// FormatPrice renders 1234.5 as "1.234,50 €". The integer part is grouped
// as a big.Int so prices beyond int64 keep their digits.
func FormatPrice(price float64) string {
	d := decimal.NewFromFloat(price).Round(2)
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	n, _ := new(big.Int).SetString(whole, 10)

	out := strings.ReplaceAll(humanize.BigComma(n), ",", ".") + "," + frac
	if d.IsNegative() {
		out = "-" + out
	}
	return out + currencySuffix
}

// JoinTags joins a tags value with ", ". Anything that is not a list yields "".
func JoinTags(v any) string {
	items, ok := v.([]any)
	if !ok {
		if ss, ok := v.([]string); ok {
			return strings.Join(ss, ", ")
		}
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, scalarString(it))
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// stringOr treats a missing key and a JSON null alike.
func stringOr(raw Raw, key, def string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	return scalarString(v)
}

func numberOr(raw Raw, key string, def float64) float64 {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	if f, ok := toFloat(v); ok {
		return f
	}
	return def
}

// toFloat also accepts numeric strings and booleans.
func toFloat(v any) (float64, bool) {
	if f, ok := number(v); ok {
		return f, true
	}
	switch n := v.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}
