package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/catalog-gateway/docs"
	"github.com/MikeMC777/catalog-gateway/internal/catalog"
	"github.com/MikeMC777/catalog-gateway/internal/config"
	"github.com/MikeMC777/catalog-gateway/internal/httpx"
	prod "github.com/MikeMC777/catalog-gateway/internal/product"
	"github.com/MikeMC777/catalog-gateway/pkg/logger"
)

// @title       Catalog Gateway API
// @version     1.0
// @description Display-oriented read facade over a public product catalog.
// @BasePath    /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init()
		logger.Fatal().Err(err).Msg("config")
	}
	logger.Init(logger.Options{Production: cfg.Environment.IsProduction()})
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	client := catalog.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: newRouter(client, cfg.CORSOrigin),
	}

	go func() {
		logger.Info(context.Background()).
			Str("addr", cfg.Addr).
			Str("upstream", client.BaseURL).
			Dur("timeout", cfg.UpstreamTimeout).
			Msg("catalog-service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error(ctx).Err(err).Msg("shutdown")
	}
	logger.Info(ctx).Msg("catalog-service stopped")
}

func newRouter(repo prod.Repository, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS(corsOrigin))
	r.NoRoute(httpx.NotFound())

	r.GET("/", homeHandler)
	r.GET("/healthz", healthHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	list := listProductsHandler(repo)
	r.GET("/products", list)
	r.GET("/products/search", searchProductsHandler(repo))
	r.GET("/product/:id", getProductHandler(repo))

	legacy := r.Group("/products", legacyPath())
	legacy.GET("/:limit", list)
	legacy.GET("/:limit/:skip", list)
	legacy.GET("/:limit/:skip/:sortBy", list)
	legacy.GET("/:limit/:skip/:sortBy/:order", list)
	return r
}
