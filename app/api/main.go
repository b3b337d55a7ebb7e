package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"

	"github.com/bayt-xyz/marketapi/base/ctx"
	"github.com/bayt-xyz/marketapi/base/database/mongoclient"
	"github.com/bayt-xyz/marketapi/base/database/redisclient"
	"github.com/bayt-xyz/marketapi/base/log"
	"github.com/bayt-xyz/marketapi/base/metrics"
	bValidator "github.com/bayt-xyz/marketapi/base/validator"
	"github.com/bayt-xyz/marketapi/domain"
	"github.com/bayt-xyz/marketapi/domain/marketplace"
	mmiddleware "github.com/bayt-xyz/marketapi/middleware"
	"github.com/bayt-xyz/marketapi/service/broadcast"
	"github.com/bayt-xyz/marketapi/service/query"
	"github.com/bayt-xyz/marketapi/service/redis"
	auth_delivery "github.com/bayt-xyz/marketapi/stores/auth/delivery/http"
	auth_middleware "github.com/bayt-xyz/marketapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/bayt-xyz/marketapi/stores/auth/usecase"
	bank_repository "github.com/bayt-xyz/marketapi/stores/bank/repository"
	bank_usecase "github.com/bayt-xyz/marketapi/stores/bank/usecase"
	hc_delivery "github.com/bayt-xyz/marketapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/bayt-xyz/marketapi/stores/healthcheck/repository"
	hc_usecase "github.com/bayt-xyz/marketapi/stores/healthcheck/usecase"
	marketplace_delivery "github.com/bayt-xyz/marketapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/bayt-xyz/marketapi/stores/marketplace/repository"
	marketplace_usecase "github.com/bayt-xyz/marketapi/stores/marketplace/usecase"
	"github.com/bayt-xyz/marketapi/stores/notifier"
	registry_repository "github.com/bayt-xyz/marketapi/stores/registry/repository"
	registry_usecase "github.com/bayt-xyz/marketapi/stores/registry/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bayt-xyz/marketapi/app/api/docs"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Bayt Marketplace API
//	@version		1.0
//	@description	API Document for the Bayt NFT marketplace.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := marketplace_repository.NewListing(q)
	stateRepo := marketplace_repository.NewState(q)
	tokenRepo := registry_repository.New(q)
	balanceRepo := bank_repository.New(q)

	hc := hc_usecase.New(hcRepo)
	registryUC := registry_usecase.New(tokenRepo, redisCache)
	bankUC := bank_usecase.New(balanceRepo)

	// seed the market state document on first boot
	defaultFee := domain.Amount(viper.GetString("marketplace.listingFee"))
	if err := stateRepo.EnsureDefault(context, defaultFee); err != nil {
		context.WithField("err", err).Panic("seed market state failed")
	}

	publishers := []marketplace.EventPublisher{broadcast.New(redisCache)}
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		bot, err := notifier.NewDiscordBot(notifier.DiscordBotConfig{
			BotKey:    botKey,
			ChannelId: viper.GetString("discord.channelId"),
		})
		if err != nil {
			context.WithField("err", err).Warn("discord bot disabled")
		} else {
			publishers = append(publishers, bot)
		}
	}

	ownerAddress := viper.GetString("marketplace.ownerAddress")
	marketplaceUC := marketplace_usecase.New(&marketplace_usecase.MarketplaceUsecaseCfg{
		ListingRepo:    listingRepo,
		StateRepo:      stateRepo,
		Registry:       registryUC,
		Bank:           bankUC,
		TxRunner:       q,
		Publishers:     publishers,
		OwnerAddress:   domain.Address(ownerAddress),
		CustodyAddress: domain.Address(viper.GetString("marketplace.custodyAddress")),
	})

	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))
	// admin routes are gated by the same owner address the fee check uses
	authMiddleware := auth_middleware.New(auth, []string{ownerAddress})

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	marketplace_delivery.New(e, authMiddleware, marketplaceUC, registryUC, bankUC)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
