package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/cart"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/gateway"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type ApplicationContext struct {
	Cf     *config.Config
	Logger *zerolog.Logger

	CartStore      *cart.Store
	RedisClient    *redis.Client
	ProductCache   *redis_repo.ProductCache
	UserGateway    gateway.IUserGateway
	ProductGateway gateway.IProductGateway
	OrderGateway   gateway.IOrderGateway

	UserService      service.IUserService
	ProductService   service.IProductService
	CheckoutService  service.ICheckoutService
	OrderViewService service.IOrderViewService
	SummaryService   service.ISummaryService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()
	app.setUpCartStore()
	app.setUpGateways()

	if err := app.setUpRedis(); err != nil {
		// redis只是目錄快取，連不上就不開快取，照樣啟動
		app.Logger.Warn().Err(err).Msg("redis unavailable, product cache disabled")
	}

	app.setUpServices()
	return nil
}

func (app *ApplicationContext) setUpLogger() {
	log.Printf("Start setup logger")
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("module", "storefront").Logger()
	app.Logger = &logger
	log.Printf("Finish setup logger")
}

func (app *ApplicationContext) setUpCartStore() {
	log.Printf("Start setup cart store")
	app.CartStore = cart.NewStore()
	log.Printf("Finish setup cart store")
}

func (app *ApplicationContext) setUpGateways() {
	log.Printf("Start setup remote gateways")
	timeout := time.Duration(app.Cf.HttpTimeoutSec) * time.Second
	app.UserGateway = gateway.NewUserGateway(app.Cf.UserApiBaseUrl, timeout)
	app.ProductGateway = gateway.NewProductGateway(app.Cf.ProductApiBaseUrl, timeout)
	app.OrderGateway = gateway.NewOrderGateway(app.Cf.OrderApiBaseUrl, timeout)
	log.Printf("Finish setup remote gateways")
}

func (app *ApplicationContext) setUpRedis() error {
	if app.Cf.RedisAddr == "" {
		return nil
	}

	log.Printf("Start setup redis")
	rdb := redis.NewClient(&redis.Options{
		Addr:     app.Cf.RedisAddr,
		Password: app.Cf.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return err
	}

	app.RedisClient = rdb
	app.ProductCache = redis_repo.NewProductCache(rdb, "storefront", time.Duration(app.Cf.CacheTTLSec)*time.Second)
	log.Printf("Finish setup redis")
	return nil
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")
	app.UserService = service.NewUserService(app.UserGateway)
	app.ProductService = service.NewProductService(app.ProductGateway, app.ProductCache, app.Logger)
	app.CheckoutService = service.NewCheckoutService(app.CartStore, app.OrderGateway, app.Logger)
	app.OrderViewService = service.NewOrderViewService(app.OrderGateway, app.Logger)
	app.SummaryService = service.NewSummaryService(app.UserGateway, app.ProductGateway, app.OrderGateway)
	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.RedisClient != nil {
			log.Printf("Closing redis connection...")
			if err := app.RedisClient.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("redis close error: %v", err)
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
