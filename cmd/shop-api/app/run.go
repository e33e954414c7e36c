package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/Khaoshimself/online-shopping-site/configs"
	"github.com/Khaoshimself/online-shopping-site/internal/adapter/cache"
	"github.com/Khaoshimself/online-shopping-site/internal/adapter/http"
	"github.com/Khaoshimself/online-shopping-site/internal/adapter/http/middleware"
	"github.com/Khaoshimself/online-shopping-site/internal/adapter/kafka"
	"github.com/Khaoshimself/online-shopping-site/internal/adapter/queue"
	"github.com/Khaoshimself/online-shopping-site/internal/adapter/repo"
	"github.com/Khaoshimself/online-shopping-site/internal/logging"
	"github.com/Khaoshimself/online-shopping-site/internal/security"
	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logging.Init(cfg.App.Name, cfg.App.LogFile, logging.ParseLevel(cfg.App.LogLevel))
	log := logging.New("app")

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, nil, err
	}

	log.Info("shop-api: starting up")

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	// init rabbitmq
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}
	producer, err := queue.NewRabbitProducer(ch, queue.Topology{
		Exchange:   cfg.Rabbit.Exchange,
		RoutingKey: cfg.Rabbit.RoutingKey,
		Queue:      cfg.Rabbit.Queue,
	})
	if err != nil {
		return nil, nil, err
	}

	// init kafka
	syncProducer, err := kafka.NewSyncProducer(cfg.Kafka.Brokers)
	if err != nil {
		return nil, nil, err
	}
	stream := kafka.NewAnalyticsProducer(syncProducer, cfg.Kafka.TopicEvents)

	// infra
	products := repo.NewMySQLProductRepo(db)
	discounts := repo.NewMySQLDiscountRepo(db)
	orders := repo.NewMySQLOrderRepo(db)
	users := repo.NewMySQLUserRepo(db)
	carts := cache.NewRedisCartStore(rdb, cfg.Cart.TTL)
	orderCache := cache.NewRedisOrderCache(rdb, cfg.Cart.TTL)
	hasher := security.NewPasswordHasher()
	tokens := security.NewTokenIssuer(cfg)

	// register queue-handler
	setupQueue(ch, cfg.Rabbit.Queue, orderCache)

	// usecases
	compute := usecase.NewComputeCart(products, carts, cfg.Pricing.TaxRate)
	handlers := http.Handlers{
		Catalog: http.NewCatalogHandler(products),
		Cart: http.NewCartHandler(
			compute,
			usecase.NewMutateCart(products, carts, compute),
			usecase.NewApplyDiscount(discounts, carts, compute),
			usecase.NewCheckout(orders, carts, compute, producer, stream, logging.New("checkout")),
		),
		Auth: http.NewAuthHandler(
			usecase.NewSignup(users, hasher),
			usecase.NewLogin(users, hasher, tokens, carts),
			usecase.NewUpdateAccount(users, hasher),
			usecase.NewDeleteAccount(users, hasher),
		),
		Order:          http.NewOrderHandler(orders, orderCache),
		AdminItems:     http.NewAdminItemHandler(products),
		AdminDiscounts: http.NewAdminDiscountHandler(discounts),
		AdminOrders:    http.NewAdminOrderHandler(orders),
		AdminUsers:     http.NewAdminUserHandler(users, hasher),
	}
	router := http.NewRouter(handlers, middleware.NewAuthz(tokens), logging.New("http"))

	cleanup := func() {
		_ = db.Close()
		_ = rdb.Close()
		_ = stream.Close()
		_ = ch.Close()
		_ = conn.Close()
	}

	return &App{Router: router}, cleanup, nil
}

func setupQueue(ch *amqp091.Channel, queueName string, orderCache usecase.OrderCache) {
	h := queue.NewOrderPlacedHandler(orderCache, logging.New("queue"))

	router := queue.NewRouter(ch, logging.New("queue"), queue.WithPrefetch(50))
	router.Register(queueName, queue.JSONHandler[usecase.OrderPlacedMsg]{HandleFunc: h.HandlePlaced})

	if err := router.Start(); err != nil {
		panic(err)
	}
}
