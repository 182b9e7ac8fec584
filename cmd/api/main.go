package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/NicholasChen868/xedulichvogia/internal/pkg/config"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/database"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/health"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/logger"
	"github.com/NicholasChen868/xedulichvogia/internal/pkg/ratelimit"
	"github.com/NicholasChen868/xedulichvogia/internal/utils"
	bookinghandler "github.com/NicholasChen868/xedulichvogia/services/booking/handler/http"
	bookingrepo "github.com/NicholasChen868/xedulichvogia/services/booking/repository"
	bookinguc "github.com/NicholasChen868/xedulichvogia/services/booking/usecase"
	distancehandler "github.com/NicholasChen868/xedulichvogia/services/distance/handler/http"
	distancegw "github.com/NicholasChen868/xedulichvogia/services/distance/gateway"
	distanceuc "github.com/NicholasChen868/xedulichvogia/services/distance/usecase"
	driverhandler "github.com/NicholasChen868/xedulichvogia/services/driver/handler/http"
	driverrepo "github.com/NicholasChen868/xedulichvogia/services/driver/repository"
	driveruc "github.com/NicholasChen868/xedulichvogia/services/driver/usecase"
	matchinghandler "github.com/NicholasChen868/xedulichvogia/services/matching/handler/http"
	matchingrepo "github.com/NicholasChen868/xedulichvogia/services/matching/repository"
	matchinguc "github.com/NicholasChen868/xedulichvogia/services/matching/usecase"
	notificationgw "github.com/NicholasChen868/xedulichvogia/services/notification/gateway"
	notificationhandler "github.com/NicholasChen868/xedulichvogia/services/notification/handler/http"
	notificationuc "github.com/NicholasChen868/xedulichvogia/services/notification/usecase"
	paymentgw "github.com/NicholasChen868/xedulichvogia/services/payment/gateway"
	paymenthandler "github.com/NicholasChen868/xedulichvogia/services/payment/handler/http"
	paymentrepo "github.com/NicholasChen868/xedulichvogia/services/payment/repository"
	paymentuc "github.com/NicholasChen868/xedulichvogia/services/payment/usecase"
	pricinghandler "github.com/NicholasChen868/xedulichvogia/services/pricing/handler/http"
	pricingrepo "github.com/NicholasChen868/xedulichvogia/services/pricing/repository"
	pricinguc "github.com/NicholasChen868/xedulichvogia/services/pricing/usecase"
	reporthandler "github.com/NicholasChen868/xedulichvogia/services/report/handler/http"
	reportrepo "github.com/NicholasChen868/xedulichvogia/services/report/repository"
	reportuc "github.com/NicholasChen868/xedulichvogia/services/report/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	appLogger, err := logger.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Close()

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pgClient.Close()
	db := pgClient.GetDB()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	limiter := ratelimit.NewRedisLimiter(redisClient.GetClient())

	// Repositories
	bookingRepo := bookingrepo.NewBookingRepo(db)
	matchRepo := matchingrepo.NewMatchRepo(db)
	driverRepo := driverrepo.NewDriverRepo(db)
	otpRepo := driverrepo.NewOTPRepo(db)
	paymentRepo := paymentrepo.NewPaymentRepo(db)
	pricingRepo := pricingrepo.NewPricingRepo(db)
	reportRepo := reportrepo.NewReportRepo(db)

	// Gateways
	smsGateway := notificationgw.NewESMSGateway(cfg.SMS)
	mapsGateway, err := distancegw.NewGoogleMapsGateway(cfg.Maps)
	if err != nil {
		appLogger.Fatal("failed to init maps gateway", zap.Error(err))
	}
	momoGateway := paymentgw.NewMomoGateway(cfg.Momo, cfg.App.BaseURL+"/payments/callback/momo")
	vnpayGateway := paymentgw.NewVNPayGateway(cfg.VNPay, cfg.Notification.ReturnURL)
	zalopayGateway := paymentgw.NewZaloPayGateway(cfg.ZaloPay, cfg.App.BaseURL+"/payments/callback/zalopay")

	// Usecases
	notifyUC := notificationuc.NewNotifyUC(smsGateway, driverRepo, appLogger)
	pricingUC := pricinguc.NewPricingUC(pricingRepo, appLogger)
	distanceUC := distanceuc.NewDistanceUC(cfg.Maps, redisClient, mapsGateway, appLogger)
	matchUC := matchinguc.NewMatchUC(cfg.Booking, matchRepo, notifyUC, appLogger)
	bookingUC := bookinguc.NewBookingUC(cfg.Booking, bookingRepo, limiter, matchUC, pricingUC, distanceUC, notifyUC, appLogger)
	driverUC := driveruc.NewDriverUC(cfg.Booking, cfg.OTP, cfg.JWT, driverRepo, otpRepo, limiter, smsGateway, notifyUC, appLogger)
	paymentUC := paymentuc.NewPaymentUC(paymentRepo, bookingRepo, momoGateway, vnpayGateway, zalopayGateway, cfg.Notification.ReturnURL, appLogger)
	reportUC := reportuc.NewReportUC(cfg.Booking, reportRepo, appLogger)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = utils.NewRequestValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.App.CORSOrigin},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-API-Key"},
	}))
	e.Use(logger.EchoMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, cfg.App.Name, cfg.App.Version, map[string]health.Pinger{
		"postgres": pgClient,
		"redis":    redisClient,
	})

	bookinghandler.NewBookingHandler(bookingUC).RegisterRoutes(e, cfg.JWT, cfg.Admin.APIKey)
	matchinghandler.NewMatchHandler(matchUC).RegisterRoutes(e, cfg.Admin.APIKey)
	driverhandler.NewDriverHandler(driverUC).RegisterRoutes(e, cfg.JWT, cfg.Admin.APIKey)
	paymenthandler.NewPaymentHandler(paymentUC).RegisterRoutes(e)
	pricinghandler.NewPricingHandler(pricingUC).RegisterRoutes(e)
	distancehandler.NewDistanceHandler(distanceUC).RegisterRoutes(e)
	notificationhandler.NewNotificationHandler(notifyUC).RegisterRoutes(e, cfg.Admin.APIKey)
	reporthandler.NewReportHandler(reportUC).RegisterRoutes(e, cfg.Admin.APIKey)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Reassignment sweeper: periodically frees stale matches and retries them
	go runSweeper(ctx, matchUC, cfg.Booking.SweepIntervalSeconds, appLogger)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		appLogger.Info("server starting",
			zap.String("addr", addr),
			zap.String("environment", cfg.App.Environment))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func runSweeper(ctx context.Context, matchUC *matchinguc.MatchUC, intervalSeconds int, appLogger *logger.Logger) {
	if intervalSeconds <= 0 {
		intervalSeconds = 60
	}
	ticker := time.NewTicker(time.Duration(intervalSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			report, err := matchUC.SweepStaleMatches(sweepCtx)
			cancel()
			if err != nil {
				appLogger.Error("reassignment sweep failed", zap.Error(err))
				continue
			}
			if report.Total > 0 {
				appLogger.Info("reassignment sweep",
					zap.Int("stale", report.Total),
					zap.Int("reassigned", report.Reassigned))
			}
		}
	}
}
