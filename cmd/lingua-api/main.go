// @title         Lingua API
// @version       0.1.0
// @description   Natural language detection over HTTP

package main

import (
	"context"
	"time"

	"github.com/rogierslag/lingua/internal/httpapi"
	"github.com/rogierslag/lingua/internal/platform/config"
	"github.com/rogierslag/lingua/internal/platform/logger"
	"github.com/rogierslag/lingua/internal/platform/net/middleware"
	phttp "github.com/rogierslag/lingua/internal/platform/net/http"
)

func main() {
	// service-scoped config for HTTP etc (LINGUA_API_*)
	root := config.New()
	apiCfg := root.Prefix("LINGUA_API_")

	l := logger.Get()
	startedAt := time.Now()

	srv := phttp.NewServer(apiCfg)
	r := srv.Router()

	r.Use(middleware.Defaults()...)
	r.Use(middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}))
	r.Use(middleware.CORS(middleware.CORSOptions{
		AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
	}))

	httpapi.Register(r, startedAt)

	phttp.MountSwagger(r, apiCfg.MayBool("SWAGGER", true))
	phttp.MountProfiler(r, "/debug", apiCfg.MayBool("PROFILER", false))

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
