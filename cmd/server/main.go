package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/shop-api/internal/config"
	"github.com/example/shop-api/internal/data"
	"github.com/example/shop-api/internal/httpapi"
	"github.com/example/shop-api/internal/infra"
	"github.com/example/shop-api/internal/seed"
	"github.com/example/shop-api/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&infra.Member{}, &infra.Delivery{}, &infra.Order{}); err != nil {
		logrus.Fatalf("migrate: %v", err)
	}

	transactionManager := data.NewGormTransactionManager(db)
	memberRepository := infra.NewMemberRepository(transactionManager)
	orderRepository := infra.NewOrderRepository(transactionManager)
	summaryRepository := infra.NewOrderSummaryRepository(transactionManager)

	memberService := service.NewMemberService(memberRepository, transactionManager)
	orderService := service.NewOrderService(orderRepository, memberRepository, transactionManager)

	if cfg.Seed {
		if err := seed.Run(ctx, memberService, orderService); err != nil {
			logrus.Fatalf("seed: %v", err)
		}
	}

	server := httpapi.NewServer(memberService, orderRepository, summaryRepository)
	srv := &http.Server{Addr: cfg.Addr, Handler: server.Router}
	go func() {
		logrus.Infof("http listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}
