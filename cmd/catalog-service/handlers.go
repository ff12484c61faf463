package main

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/catalog-gateway/internal/catalog"
	"github.com/MikeMC777/catalog-gateway/internal/httpx"
	prod "github.com/MikeMC777/catalog-gateway/internal/product"
	"github.com/MikeMC777/catalog-gateway/pkg/logger"
)

const apiRequestFailed = "API Request Failed: "

// listProductsHandler godoc
// @Summary  List products
// @Description Paginates the upstream catalog and optionally sorts the page locally.
// @Tags     products
// @Produce  json
// @Param    limit  query int    false "page size"       default(10) minimum(1)
// @Param    skip   query int    false "items to skip"   default(0)  minimum(0)
// @Param    sortBy query string false "field to sort by" default(id)
// @Param    order  query string false "asc or desc"     default(asc)
// @Success  200 {object} prod.ListResponse
// @Failure  400 {object} prod.HTTPError
// @Failure  502 {object} prod.HTTPError
// @Router   /products [get]
func listProductsHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := prod.ResolveListParams(pathOrQuery(c))
		if err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		page, err := repo.List(c.Request.Context(), prod.Query{Limit: params.Limit, Skip: params.Skip})
		if err != nil {
			upstreamError(c, err)
			return
		}
		if !page.HasProducts || !page.HasTotal {
			upstreamError(c, prod.ErrInvalidResponse)
			return
		}

		prod.SortBy(page.Products, params.SortBy, params.Order)
		c.JSON(http.StatusOK, prod.FormatList(page.Products, page.Total, params.Limit, params.Skip))
	}
}

// getProductHandler godoc
// @Summary  Get a product
// @Tags     products
// @Produce  json
// @Param    id path int true "product id"
// @Success  200 {object} prod.Product
// @Failure  400 {object} prod.HTTPError
// @Failure  502 {object} prod.HTTPError
// @Router   /product/{id} [get]
func getProductHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := prod.ParseID(c.Param("id"))
		if err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		raw, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			upstreamError(c, err)
			return
		}
		if v, ok := raw["id"]; !ok || v == nil {
			upstreamError(c, prod.ErrInvalidResponse)
			return
		}

		c.JSON(http.StatusOK, prod.FormatProduct(raw, false))
	}
}

// searchProductsHandler godoc
// @Summary  Search products
// @Tags     products
// @Produce  json
// @Param    q     query string true  "search text"
// @Param    limit query int    false "page size"     default(10) minimum(1)
// @Param    skip  query int    false "items to skip" default(0)  minimum(0)
// @Success  200 {object} prod.ListResponse
// @Failure  400 {object} prod.HTTPError
// @Failure  502 {object} prod.HTTPError
// @Router   /products/search [get]
func searchProductsHandler(repo prod.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := prod.ResolveSearchParams(c.GetQuery)
		if err != nil {
			httpx.Error(c, http.StatusBadRequest, err.Error())
			return
		}

		page, err := repo.Search(c.Request.Context(), prod.Query{Q: params.Q, Limit: params.Limit, Skip: params.Skip})
		if err != nil {
			upstreamError(c, err)
			return
		}
		if !page.HasProducts {
			upstreamError(c, prod.ErrInvalidResponse)
			return
		}

		c.JSON(http.StatusOK, prod.FormatList(page.Products, page.Total, params.Limit, params.Skip))
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func homeHandler(c *gin.Context) {
	c.Redirect(http.StatusFound, "/swagger/index.html")
}

// upstreamError maps a failed upstream call to its error body.
func upstreamError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	var reqErr *catalog.RequestError
	switch {
	case errors.As(err, &reqErr):
		logger.Warn(ctx).Err(err).Str("url", reqErr.URL).Int("upstream_status", reqErr.Status).Msg("upstream request failed")
		httpx.Error(c, http.StatusBadGateway, apiRequestFailed+reqErr.Error())
	case errors.Is(err, prod.ErrInvalidResponse):
		logger.Warn(ctx).Err(err).Msg("upstream contract violation")
		httpx.Error(c, http.StatusBadGateway, prod.ErrInvalidResponse.Error())
	default:
		logger.Warn(ctx).Err(err).Msg("upstream request failed")
		httpx.Error(c, http.StatusBadGateway, apiRequestFailed+err.Error())
	}
}

// Legacy list routes carry limit/skip/sortBy/order as path segments.
var legacySegments = map[string]*regexp.Regexp{
	"limit":  regexp.MustCompile(`^\d+$`),
	"skip":   regexp.MustCompile(`^\d+$`),
	"sortBy": regexp.MustCompile(`^[a-z]+$`),
	"order":  regexp.MustCompile(`^(asc|desc)$`),
}

// legacyPath rejects path segments the legacy routes would not have matched.
func legacyPath() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range c.Params {
			if re, ok := legacySegments[p.Key]; ok && !re.MatchString(p.Value) {
				httpx.Error(c, http.StatusNotFound, "Not found")
				return
			}
		}
		c.Next()
	}
}

// pathOrQuery prefers a path segment over the query parameter of the same name.
func pathOrQuery(c *gin.Context) prod.Lookup {
	return func(key string) (string, bool) {
		if v := c.Param(key); v != "" {
			return v, true
		}
		return c.GetQuery(key)
	}
}
