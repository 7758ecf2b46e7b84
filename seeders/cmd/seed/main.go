package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"region-service/internal/repositories"
	"region-service/pkg/config"
	"region-service/pkg/database/postgresql"
	applogger "region-service/pkg/logger"
	"region-service/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runTaxonomy := flag.Bool("taxonomy", false, "Наполнить пустую БД демонстрационной иерархией area / sub-area / branch")
	runAll := flag.Bool("all", false, "Запустить все сидеры")
	flag.Parse()

	if !*runTaxonomy && !*runAll {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Пример: go run ./seeders/cmd/seed -taxonomy")
		return
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации: %v", err)
	}
	logger, err := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("❌ Не удалось создать логгер: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, cfg.Postgres.ConnectTimeout)
	if err != nil {
		logger.Fatal("❌ Не удалось подключиться к БД", zap.Error(err))
	}
	defer dbPool.Close()

	// Сидер не должен зависеть от того, стартовал ли уже сервис
	if err := postgresql.InitSchema(ctx, dbPool, logger); err != nil {
		logger.Fatal("❌ Не удалось инициализировать схему БД", zap.Error(err))
	}

	if err := seeders.SeedTaxonomy(ctx, repositories.NewTxManager(dbPool), logger); err != nil {
		logger.Fatal("❌ Ошибка наполнения иерархии", zap.Error(err))
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
