package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/acaihub/delivery-catalog/app/catalog"
	"github.com/acaihub/delivery-catalog/config"
	"github.com/acaihub/delivery-catalog/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	initLogger(cfg)
	defer func() { _ = zap.L().Sync() }()

	bus := EventBus.New()
	sync := catalog.NewSynchronizer(store.NewProductStore(cfg), bus)

	_ = bus.Subscribe(catalog.TopicCatalogChanged, func() {
		st := sync.State()
		zap.S().Infof("catalog changed: %d products (source=%s)", len(sync.Products()), st.Source)
	})

	sync.Load(context.Background())
	printCatalog(sync)

	if cfg.RefreshEvery <= 0 {
		return
	}
	refresher := catalog.NewRefresher(sync)
	if err := refresher.Start(cfg.RefreshEvery); err != nil {
		zap.S().Fatalf("auto-refresh setup failed: %v", err)
	}
	defer refresher.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
}

func printCatalog(sync *catalog.Synchronizer) {
	now := time.Now()
	for _, p := range sync.Products() {
		marker := " "
		if !catalog.IsAvailable(&p, now) {
			marker = "*"
		}
		fmt.Printf("%s %-32s %-12s R$ %s\n", marker, p.Name, p.Category, p.Price.StringFixed(2))
	}
}

func initLogger(cfg *config.Config) {
	var zc zap.Config
	if cfg.LogMode == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	logger, err := zc.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
