package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/civicdata/permit-geocoder/internal/geocoding"
	"github.com/civicdata/permit-geocoder/internal/metrics"
	"github.com/civicdata/permit-geocoder/internal/models"
	"github.com/civicdata/permit-geocoder/internal/repository"
)

// Resolver resolves one raw address against the lookup table. Satisfied by
// *geocoding.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, raw string) (*models.GeocodeResult, error)
}

// GeocodingService periodically fetches permits without coordinates and
// resolves them against the lookup table with a pool of workers. Lookup
// misses are routine outcomes, not errors; an optional fallback provider
// can pick up what the table misses. The service only reads the lookup
// table; administrative appends run out of band, never interleaved with a
// running batch.
type GeocodingService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for permit repository access
	resolver     Resolver             // Lookup-table resolver, the primary resolution path
	fallback     geocoding.Provider   // Optional external provider for lookup misses, may be nil
	fallbackName string               // Name of the fallback provider for metrics labeling
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	pollInterval time.Duration        // Interval for polling permits without coordinates
}

// NewGeocodingService creates a new instance of GeocodingService. The
// fallback provider may be nil, in which case lookup misses are recorded
// and skipped.
func NewGeocodingService(
	log *slog.Logger,
	repo repository.Interface,
	resolver Resolver,
	fallback geocoding.Provider,
	fallbackName string,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
) *GeocodingService {
	return &GeocodingService{
		log:          log,
		repo:         repo,
		resolver:     resolver,
		fallback:     fallback,
		fallbackName: fallbackName,
		metrics:      metrics,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
	}
}

// Run starts the geocoding service, which periodically polls for permits
// to geocode. It listens for a cancellation signal from the context to
// gracefully stop the service.
func (gs *GeocodingService) Run(ctx context.Context) {
	ticker := time.NewTicker(gs.pollInterval)
	defer ticker.Stop()

	gs.log.InfoContext(ctx, "Geocoding service started...")

	for {
		select {
		case <-ctx.Done():
			gs.log.InfoContext(ctx, "Geocoding service stopped.")
			return
		case <-ticker.C:
			gs.log.InfoContext(ctx, "Polling for permits to geocode...")
			gs.processBatch(ctx)
		}
	}
}

// processBatch fetches permits needing coordinates, starts a worker pool to
// resolve them, and waits for all workers to finish. Misses inside the
// batch never abort it.
func (gs *GeocodingService) processBatch(ctx context.Context) {
	permitLimit := 100
	permits, err := gs.repo.FetchPermitsForGeocoding(ctx, permitLimit)
	if err != nil {
		gs.log.ErrorContext(ctx, "Failed to fetch permits", "error", err)
		return
	}
	if len(permits) == 0 {
		gs.log.InfoContext(ctx, "No permits to process.")
		return
	}

	gs.log.InfoContext(
		ctx,
		"Found permits to process. Starting worker pool.",
		"jobs",
		len(permits),
		"num_workers",
		gs.numWorkers,
	)

	jobs := make(chan models.Permit, len(permits))
	var wgr sync.WaitGroup

	for i := 1; i <= gs.numWorkers; i++ {
		wgr.Add(1)
		go gs.worker(ctx, i, &wgr, jobs)
	}

	for _, permit := range permits {
		jobs <- permit
	}
	close(jobs)

	wgr.Wait()
	gs.log.InfoContext(ctx, "Processing batch finished")
}

// worker resolves permits from the jobs channel. A lookup hit stores the
// coordinates and parcel identifier; a miss goes to the fallback provider
// when one is configured, otherwise it bumps the attempt count and moves
// on. Only infrastructure errors are logged at error level.
func (gs *GeocodingService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Permit) {
	defer wg.Done()
	for permit := range jobs {
		gs.metrics.ActiveWorkers.Inc()
		gs.log.DebugContext(ctx, "Processing permit", "worker", idx, "permit", permit.ID)

		startTime := time.Now()
		result, err := gs.resolver.Resolve(ctx, permit.Address)
		gs.metrics.ResolveSeconds.WithLabelValues("lookup").Observe(time.Since(startTime).Seconds())

		switch {
		case err == nil:
			gs.metrics.PermitsProcessed.WithLabelValues("matched").Inc()
			coords := models.Coordinates{Latitude: result.Latitude, Longitude: result.Longitude}
			gs.updateCoordinates(ctx, idx, permit, coords, result.ParcelID)

		case errors.Is(err, geocoding.ErrNoMatch):
			gs.handleMiss(ctx, idx, permit)

		default:
			gs.log.ErrorContext(ctx, "Failed to resolve permit", "worker", idx, "permit", permit.ID, "error", err)
			gs.metrics.PermitsProcessed.WithLabelValues("failure").Inc()
			gs.recordFailure(ctx, idx, permit, err.Error())
		}

		gs.metrics.ActiveWorkers.Dec()
	}
}

// handleMiss deals with a routine lookup miss: try the fallback provider if
// configured, otherwise record the miss and continue.
func (gs *GeocodingService) handleMiss(ctx context.Context, idx int, permit models.Permit) {
	if gs.fallback == nil {
		gs.log.DebugContext(ctx, "No lookup match for permit", "worker", idx, "permit", permit.ID)
		gs.metrics.PermitsProcessed.WithLabelValues("miss").Inc()
		gs.recordFailure(ctx, idx, permit, geocoding.ErrNoMatch.Error())
		return
	}

	startTime := time.Now()
	coords, err := gs.fallback.Geocode(ctx, permit.Address)
	gs.metrics.ResolveSeconds.WithLabelValues(gs.fallbackName).Observe(time.Since(startTime).Seconds())

	if err != nil {
		gs.log.DebugContext(ctx, "Fallback provider could not geocode permit",
			"worker", idx, "permit", permit.ID, "error", err)
		gs.metrics.PermitsProcessed.WithLabelValues("miss").Inc()
		gs.metrics.ProviderErrors.Inc()
		gs.recordFailure(ctx, idx, permit, "no lookup match, fallback failed: "+err.Error())
		return
	}

	gs.metrics.PermitsProcessed.WithLabelValues("fallback").Inc()
	gs.updateCoordinates(ctx, idx, permit, *coords, "")
}

func (gs *GeocodingService) updateCoordinates(
	ctx context.Context,
	idx int,
	permit models.Permit,
	coords models.Coordinates,
	parcelID string,
) {
	if err := gs.repo.UpdatePermitCoordinates(ctx, permit.ID, coords, parcelID); err != nil {
		gs.log.ErrorContext(
			ctx,
			"Failed to update coordinates for permit",
			"worker", idx,
			"permit", permit.ID,
			"error", err,
		)
	} else {
		gs.log.DebugContext(ctx, "Worker successfully processed the permit", "worker", idx, "permit", permit.ID)
	}
}

func (gs *GeocodingService) recordFailure(ctx context.Context, idx int, permit models.Permit, msg string) {
	if err := gs.repo.IncrementFailureCount(ctx, permit.ID, msg); err != nil {
		gs.log.ErrorContext(
			ctx,
			"Could not update failure count for permit",
			"worker", idx,
			"permit", permit.ID,
			"error", err,
		)
	}
}
