// cmd/marketpulse/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"marketpulse-client/internal/backend"
	"marketpulse-client/internal/common/config"
	"marketpulse-client/internal/common/logger"
	"marketpulse-client/internal/common/observability"
	"marketpulse-client/internal/domain"
	"marketpulse-client/internal/monitor"
	"marketpulse-client/internal/session"
)

func main() {
	mode := flag.String("mode", "analyze", "analysis mode: analyze, listing, or predict")

	productReviews := flag.String("product-reviews", "", "product review text (analyze mode)")
	competitorReviews := flag.String("competitor-reviews", "", "competitor review text (analyze mode)")

	productName := flag.String("product-name", "", "product name (listing mode)")
	category := flag.String("category", "", "product category (listing mode)")
	features := flag.String("features", "", "product features (listing mode)")
	targetAudience := flag.String("target-audience", "", "target audience (listing mode)")
	brandTone := flag.String("brand-tone", "", "brand tone (listing mode)")

	modelOutput := flag.String("model-output", "", "model output to explain (predict mode)")
	inputFeatures := flag.String("input-features", "", "model input features (predict mode)")
	historicalContext := flag.String("historical-context", "", "historical context (predict mode)")

	flag.Parse()

	zapLog := logger.New("info", "console")
	defer func() { _ = zapLog.Sync() }()
	log := logger.NewZapAdapter(zapLog)

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}
	zapLog.Sync()
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer obs.Shutdown(context.Background())

	client := backend.NewClient(cfg.Backend, log, obs)

	mon := monitor.New(client, cfg.Monitor, log)
	updates := mon.Subscribe()
	mon.Start(ctx)

	if cfg.Metrics.Enabled {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			log.Info("metrics endpoint listening", map[string]interface{}{"address": cfg.Metrics.Address})
			if err := http.ListenAndServe(cfg.Metrics.Address, nil); err != nil {
				log.Error("metrics endpoint failed", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	// Wait for the startup probe to settle so the connectivity gate has a
	// real answer before the submission is attempted.
	status := awaitProbe(ctx, mon, updates, cfg.Monitor.ProbeTimeout+time.Second)
	if !status.Connected {
		log.Warn("backend unreachable, submissions will be rejected until it comes back", map[string]interface{}{
			"status": string(status.State),
		})
	}

	manager := session.NewManager(client, mon, log)

	var result interface{}
	var submitErr error

	switch *mode {
	case "analyze":
		manager.Activate(session.ModeAnalysis)
		result, submitErr = manager.SubmitReviewAnalysis(ctx, *productReviews, *competitorReviews)
	case "listing":
		manager.Activate(session.ModeListing)
		result, submitErr = manager.SubmitListingGeneration(ctx, domain.ListingInput{
			ProductName:    *productName,
			Category:       *category,
			Features:       *features,
			TargetAudience: *targetAudience,
			BrandTone:      *brandTone,
		})
	case "predict":
		manager.Activate(session.ModePrediction)
		result, submitErr = manager.SubmitPredictionExplanation(ctx, domain.PredictionInput{
			ModelOutput:       *modelOutput,
			InputFeatures:     *inputFeatures,
			HistoricalContext: *historicalContext,
		})
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (want analyze, listing, or predict)\n", *mode)
		os.Exit(2)
	}

	if submitErr != nil {
		fmt.Fprintln(os.Stderr, submitErr.Error())
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		zapLog.Fatal("encode result failed", zap.Error(err))
	}
	fmt.Println(string(out))
}

// awaitProbe blocks until the monitor leaves the checking state or the
// deadline passes.
func awaitProbe(ctx context.Context, mon *monitor.Monitor, updates <-chan domain.ConnectionStatus, deadline time.Duration) domain.ConnectionStatus {
	timer := time.NewTimer(deadline)
	defer timer.Stop()

	for {
		status := mon.Status()
		if status.State != domain.StateChecking {
			return status
		}
		select {
		case status = <-updates:
			if status.State != domain.StateChecking {
				return status
			}
		case <-timer.C:
			return mon.Status()
		case <-ctx.Done():
			return mon.Status()
		}
	}
}
