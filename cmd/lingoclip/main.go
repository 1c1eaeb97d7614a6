package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/lingoclip/lingoclip/internal/config"
	"github.com/lingoclip/lingoclip/internal/infra/database"
	"github.com/lingoclip/lingoclip/internal/infra/elastic"
	"github.com/lingoclip/lingoclip/internal/infra/repository"
	"github.com/lingoclip/lingoclip/internal/present/rest"
	"github.com/lingoclip/lingoclip/internal/service"
	"github.com/lingoclip/lingoclip/internal/usecase"
)

func main() {
	godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if conf.Server.EnableTrace {
		shutdown, err := setupTracer(conf.Server.TraceEndpoint)
		if err != nil {
			panic("failed to set up tracing: " + err.Error())
		}
		defer shutdown(context.Background())
	}

	backend, err := elastic.New(conf.Server.ElasticAddrs, conf.Server.ElasticUser, conf.Server.ElasticPassword)
	if err != nil {
		panic("failed to connect search backend")
	}

	subRepo := repository.NewSubtitleRepository(backend)

	var playlistCache usecase.PlaylistCache
	if conf.Media.PlaylistCacheTTL > 0 {
		rdb, err := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
		if err != nil {
			panic("failed to connect redis")
		}
		playlistCache = service.NewPlaylistCacheService(rdb, time.Duration(conf.Media.PlaylistCacheTTL)*time.Second)
	}

	playlistUC := usecase.NewPlaylistUsecase(subRepo, playlistCache, conf.Media.BaseURL)
	subtitleUC := usecase.NewSubtitleUsecase(subRepo)

	h := rest.NewHandler(playlistUC, subtitleUC)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("lingoclip"))
	}
	h.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

func setupTracer(endpoint string) (func(context.Context) error, error) {
	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("lingoclip"),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
