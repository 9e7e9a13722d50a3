package main

import (
	"DailyManna/internal/config"
	"DailyManna/internal/handlers"
	"DailyManna/internal/mail"
	"DailyManna/internal/middleware"
	"DailyManna/internal/repo"
	"DailyManna/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	// Redis опционален: без него статус подписки пересчитывается на каждый запрос
	statusCache := repo.NewNoopCache()
	if cfg.RedisURI != "" {
		rdb, err := repo.NewRedisClient(cfg.RedisURI)
		if err != nil {
			sugar.Warnw("redis unavailable, running without status cache", "error", err)
		} else {
			statusCache = repo.NewRedisCache(rdb)
		}
	}

	// Почта опциональна: без SMTP квитанции не отправляются
	var mailer mail.Sender
	smtpCfg := mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
	}
	if smtpCfg.Configured() {
		m, err := mail.NewSMTPMailer(smtpCfg)
		if err != nil {
			sugar.Warnw("smtp misconfigured, receipts disabled", "error", err)
		} else {
			mailer = m
		}
	}

	devotionalRepo := repo.NewDevotionalRepository(gormDB)
	paymentRepo := repo.NewPaymentRepository(gormDB)
	deviceRepo := repo.NewDeviceRepository(gormDB)
	favoriteRepo := repo.NewFavoriteRepository(gormDB)

	contentService := service.NewContentService(devotionalRepo)
	entitlementService := service.NewEntitlementService(paymentRepo, statusCache, sugar)
	paymentService := service.NewPaymentService(paymentRepo, entitlementService, mailer, sugar)
	deviceService := service.NewDeviceService(deviceRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)

	h := handlers.NewHandler(contentService, paymentService, entitlementService, deviceService, favoriteService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"FreeDay", cfg.FreeDay,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
