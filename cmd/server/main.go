package main

import (
	"net/http"

	"go.uber.org/zap"

	"luxe-be/internal/cart"
	"luxe-be/internal/catalog"
	"luxe-be/internal/config"
	"luxe-be/internal/httpapi"
	"luxe-be/internal/ids"
	"luxe-be/internal/invoice"
	"luxe-be/internal/logger"
	"luxe-be/internal/metrics"
	"luxe-be/internal/middleware"
	"luxe-be/internal/notify"
	"luxe-be/internal/order"
	"luxe-be/internal/payment"
	"luxe-be/internal/recommend"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	log := logger.L()

	renderer, err := invoice.NewPDFRenderer(cfg.InvoiceDir)
	if err != nil {
		log.Fatal("failed to set up invoice renderer", zap.Error(err))
	}

	catalogRepo := catalog.NewRepository()
	catalogSvc := catalog.NewService(catalogRepo)

	cartSvc := cart.NewService(cart.NewMemoryRepository())

	gateway := payment.NewSimulator(cfg.PaymentSuccessRate, cfg.PaymentLatency)

	orderSvc := order.NewService(
		order.NewMemoryRepository(),
		gateway,
		renderer,
		notify.NewLogNotifier(),
		ids.NewGenerator(),
		cfg.PaymentTimeout,
	)

	recommendSvc := recommend.NewService(catalogRepo)

	requestMetrics := &metrics.Requests{}

	server := httpapi.NewServer(catalogSvc, cartSvc, orderSvc, recommendSvc, gateway, requestMetrics, cfg.InvoiceDir)

	var handler http.Handler = server.Routes()
	handler = logger.LoggingMiddleware(handler)
	handler = metrics.Middleware(requestMetrics)(handler)
	handler = middleware.RateLimitMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)
	handler = middleware.CORS(handler)

	addr := ":" + cfg.AppPort
	log.Info("server starting",
		zap.String("addr", addr),
		zap.String("env", cfg.AppEnv),
	)

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
