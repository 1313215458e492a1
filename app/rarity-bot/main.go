package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/bwmarrin/discordgo"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"
	"google.golang.org/api/option"

	"github.com/x-xyz/rarity/app/internal/wire"
	"github.com/x-xyz/rarity/base/config"
	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/database/mongoclient"
	"github.com/x-xyz/rarity/base/database/redisclient"
	"github.com/x-xyz/rarity/base/goroutine"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/base/metrics"
	bValidator "github.com/x-xyz/rarity/base/validator"
	"github.com/x-xyz/rarity/domain/artifact"
	"github.com/x-xyz/rarity/domain/auth"
	"github.com/x-xyz/rarity/domain/run"
	mmiddleware "github.com/x-xyz/rarity/middleware"
	"github.com/x-xyz/rarity/service/cache/provider"
	"github.com/x-xyz/rarity/service/cache/provider/primitive"
	cacheRedis "github.com/x-xyz/rarity/service/cache/provider/redis"
	"github.com/x-xyz/rarity/service/query"
	"github.com/x-xyz/rarity/service/redis"
	artifact_repository "github.com/x-xyz/rarity/stores/artifact/repository"
	artifact_usecase "github.com/x-xyz/rarity/stores/artifact/usecase"
	auth_delivery "github.com/x-xyz/rarity/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/rarity/stores/auth/delivery/http/middleware"
	auth_repository "github.com/x-xyz/rarity/stores/auth/repository"
	auth_usecase "github.com/x-xyz/rarity/stores/auth/usecase"
	hc_delivery "github.com/x-xyz/rarity/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/rarity/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/rarity/stores/healthcheck/usecase"
	run_discord "github.com/x-xyz/rarity/stores/run/delivery/discord"
	run_delivery "github.com/x-xyz/rarity/stores/run/delivery/http"
	run_repository "github.com/x-xyz/rarity/stores/run/repository"

	_ "github.com/x-xyz/rarity/app/rarity-bot/docs"
)

// throttle cache size in MB when redis is not configured
const throttleCacheSize = 8

var configPath = pflag.String("config", config.DefaultPath, "config file")

//	@title			NFT Rarity API
//	@version		1.0
//	@description	Fetches a collection's metadata from IPFS and ranks its tokens by trait rarity.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrieve token from #/auth/post_auth and apply with `bearer {token}`
func main() {
	pflag.Parse()
	if err := config.Load(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := log.Init(viper.GetBool("debug")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	context, cancel := ctx.WithCancel(ctx.Background())
	defer cancel()
	if viper.GetBool("debug") {
		context.Info("Service RUN on DEBUG mode")
	}

	// init Redis service
	var redisSvc redis.Service
	if uri := viper.GetString("redis.uri"); uri != "" {
		context.Info("init redis")
		pool := redisclient.MustConnectRedis(redisclient.RedisCfg{
			Uri:            uri,
			Password:       viper.GetString("redis.password"),
			PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
			Retry:          true,
		})
		redisSvc = redis.New("rarity", metrics.New("redis"), &redis.Pools{Src: pool})
	}

	// init mongo client
	var (
		mongoClient *mongoclient.Client
		q           query.Mongo
		history     run.HistoryRepo
	)
	if uri := viper.GetString("mongo.uri"); uri != "" {
		context.Info("init mongo")
		mongoClient = mongoclient.MustConnectMongoClient(mongoclient.MongoCfg{
			Uri:                uri,
			AuthDBName:         viper.GetString("mongo.authDBName"),
			DbName:             viper.GetString("mongo.dbName"),
			EnableSSL:          viper.GetBool("mongo.enableSSL"),
			SetSafe:            true,
			PoolSizeMultiplier: 2,
		})
		q = query.New(mongoClient)
		if err := run_repository.EnsureIndexes(context, q); err != nil {
			context.WithField("err", err).Panic("run_repository.EnsureIndexes failed")
		}
		history = run_repository.NewHistoryRepo(q)
	}

	authStore := mustAuthStore(context, redisSvc, q)
	var throttle provider.Provider = primitive.NewPrimitive("auth", throttleCacheSize)
	if redisSvc != nil {
		throttle = cacheRedis.NewRedis(redisSvc)
	}
	authUC := auth_usecase.New(&auth_usecase.AuthUseCaseCfg{
		Store:         authStore,
		AccessKey:     viper.GetString("auth.accessKey"),
		JwtSecret:     viper.GetString("auth.jwtSecret"),
		TokenTTL:      viper.GetDuration("auth.tokenTTL"),
		Throttle:      throttle,
		MaxAttempts:   viper.GetInt("auth.maxAttempts"),
		AttemptWindow: viper.GetDuration("auth.attemptWindow"),
	})

	outputDir := viper.GetString("pipeline.outputDir")
	artifactUC := artifact_usecase.NewArtifactUseCase(&artifact_usecase.ArtifactUseCaseCfg{
		Writer:       mustArtifactWriter(context),
		OutputDir:    outputDir,
		RetryLimit:   viper.GetInt("artifact.retryLimit"),
		BackoffStart: viper.GetDuration("artifact.backoffStart"),
		BackoffLimit: viper.GetDuration("artifact.backoffLimit"),
	})
	janitor, err := artifact_usecase.NewJanitor(&artifact_usecase.JanitorCfg{
		Artifact: artifactUC,
		Schedule: viper.GetString("artifact.janitor.schedule"),
		MaxAge:   viper.GetDuration("artifact.janitor.maxAge"),
	})
	if err != nil {
		context.WithField("err", err).Panic("artifact_usecase.NewJanitor failed")
	}
	janitor.Start()

	runUC, err := wire.RunUseCase(context, outputDir, history)
	if err != nil {
		context.WithField("err", err).Panic("wire.RunUseCase failed")
	}

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.AddContext())
	e.Use(middL.ResponseLogger())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(validator.New())

	authMiddleware := auth_middleware.New(authUC)
	hc_delivery.New(e, hc_usecase.New(hc_repo.New(mongoClient, redisSvc), outputDir))
	auth_delivery.New(e, authUC)
	run_delivery.New(e, runUC, artifactUC, history, authMiddleware)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	stop := make(chan struct{})
	goroutine.Supervise("http", stop, func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	})

	if token := viper.GetString("discord.token"); token != "" {
		session, err := discordgo.New("Bot " + token)
		if err != nil {
			context.WithField("err", err).Panic("discordgo.New failed")
		}
		bot := run_discord.New(&run_discord.HandlerCfg{
			Auth:             authUC,
			Run:              runUC,
			Artifact:         artifactUC,
			Prefix:           viper.GetString("discord.prefix"),
			ProgressInterval: viper.GetDuration("discord.progressInterval"),
			RunTimeout:       viper.GetDuration("discord.runTimeout"),
		})
		if err := run_discord.Serve(context, session, bot); err != nil {
			context.WithField("err", err).Panic("run_discord.Serve failed")
		}
		context.Info("discord bot connected")
	} else {
		context.Warn("discord.token not set, bot disabled")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	close(stop)
	cancel()
	janitor.Stop()

	shutdownCtx, shutdownCancel := ctx.WithTimeout(ctx.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

func mustAuthStore(c ctx.Ctx, redisSvc redis.Service, q query.Mongo) auth.Store {
	var store auth.Store
	switch kind := viper.GetString("auth.store"); kind {
	case "redis":
		if redisSvc == nil {
			c.Panic("auth.store is redis but redis.uri is not set")
		}
		store = auth_repository.NewRedisStore(redisSvc)
	case "mongo":
		if q == nil {
			c.Panic("auth.store is mongo but mongo.uri is not set")
		}
		if err := auth_repository.EnsureIndexes(c, q); err != nil {
			c.WithField("err", err).Panic("auth_repository.EnsureIndexes failed")
		}
		store = auth_repository.NewMongoStore(q)
	default:
		c.WithField("store", kind).Panic("unknown auth.store")
	}
	cached, err := auth_repository.NewCachedStore(store, viper.GetInt("auth.cacheSize"))
	if err != nil {
		c.WithField("err", err).Panic("auth_repository.NewCachedStore failed")
	}
	return cached
}

// mustArtifactWriter returns nil for the none sink
func mustArtifactWriter(c ctx.Ctx) artifact.WriterRepository {
	var (
		writer artifact.WriterRepository
		err    error
	)
	switch sink := viper.GetString("artifact.sink"); sink {
	case "", "none":
		return nil
	case "gcs":
		opts := []option.ClientOption{}
		if f := viper.GetString("artifact.gcs.credentialsFile"); f != "" {
			opts = append(opts, option.WithCredentialsFile(f))
		}
		client, cerr := storage.NewClient(c, opts...)
		if cerr != nil {
			c.WithField("err", cerr).Panic("storage.NewClient failed")
		}
		writer, err = artifact_repository.NewCloudStorageWriterRepo(&artifact_repository.CloudStorageWriterRepoCfg{
			Timeout:    viper.GetDuration("artifact.gcs.timeout"),
			Client:     client,
			BucketName: viper.GetString("artifact.gcs.bucket"),
			Url:        viper.GetString("artifact.gcs.url"),
		})
	case "s3":
		writer, err = artifact_repository.NewS3WriterRepo(&artifact_repository.S3WriterRepoCfg{
			Endpoint:  viper.GetString("artifact.s3.endpoint"),
			Region:    viper.GetString("artifact.s3.region"),
			AccessKey: viper.GetString("artifact.s3.accessKey"),
			SecretKey: viper.GetString("artifact.s3.secretKey"),
			Bucket:    viper.GetString("artifact.s3.bucket"),
			UseSSL:    viper.GetBool("artifact.s3.useSSL"),
			UrlExpiry: viper.GetDuration("artifact.s3.urlExpiry"),
			Timeout:   viper.GetDuration("artifact.s3.timeout"),
		})
	default:
		c.WithField("sink", sink).Panic("unknown artifact.sink")
	}
	if err != nil {
		c.WithField("err", err).Panic("artifact writer init failed")
	}
	c.WithField("sink", writer.Name()).Info("artifact sink")
	return writer
}
