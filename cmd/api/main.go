package main

import (
	"log"

	"finflow/api"
	"finflow/internal/clock"
	db "finflow/internal/db/query"
	"finflow/internal/events"
	"finflow/internal/repository"
	"finflow/internal/resolver"
	"finflow/internal/service"
	"finflow/internal/util"

	_ "github.com/lib/pq"
)

func main() {
	cfg := util.LoadConfig()
	logger := util.NewLogger(cfg.LogLevel)

	dbConn, err := db.New()
	if err != nil {
		log.Fatal(err)
	}

	userRepository := repository.NewUserRepository()
	accountRepository := repository.NewAccountRepository()
	holdingRepository := repository.NewHoldingRepository()
	orderRepository := repository.NewOrderRepository()
	externalAccountRepository := repository.NewExternalAccountRepository()

	clk := clock.New()

	var publisher events.Publisher = events.NewLogPublisher(logger)
	if cfg.EventQueueUrl != "" {
		publisher, err = events.NewSqsPublisher(cfg.AwsRegion, cfg.EventQueueUrl, logger)
		if err != nil {
			log.Fatal(err)
		}
	}

	portfolioService := service.NewPortfolioService(
		userRepository,
		accountRepository,
		holdingRepository,
		publisher,
		clk,
	)
	orderService := service.NewOrderService(
		orderRepository,
		clk,
	)
	externalAccountService := service.NewExternalAccountService(
		userRepository,
		externalAccountRepository,
		clk,
	)

	r := resolver.NewResolver(
		dbConn,
		portfolioService,
		orderService,
		externalAccountService,
	)

	logger.Info("starting api", "port", cfg.Port)
	err = api.StartApi(cfg.Port, r)
	if err != nil {
		log.Fatal(err)
	}
}
