package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"rateshopper/config"
	roomTypeRepo "rateshopper/database/repository/roomtype"
	snapshotRepo "rateshopper/database/repository/snapshot"
	"rateshopper/models"
	"rateshopper/services/rateshop"

	"github.com/hibiken/asynq"
)

const (
	TypeSnapshotPersist = "snapshot:persist"
	TypeRateRefresh     = "rateshop:refresh"
)

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewQueueClient returns an asynq client for enqueueing background tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// NewSnapshotTask builds a snapshot-persist task from a completed calculation.
func NewSnapshotTask(snapshot models.PricingSnapshot) (*asynq.Task, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSnapshotPersist, payload), nil
}

// NewRateRefreshTask builds a rate-refresh task for one property. An empty
// propertyID means refresh the whole portfolio.
func NewRateRefreshTask(propertyID string) (*asynq.Task, error) {
	payload, err := json.Marshal(models.RateRefreshPayload{PropertyID: propertyID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRateRefresh, payload), nil
}

// InitRateRefreshScheduler enqueues the portfolio-wide rate refresh on the
// configured cron schedule (nightly by default).
func InitRateRefreshScheduler() {
	scheduler := asynq.NewScheduler(redisOpts(), nil)

	task, err := NewRateRefreshTask("")
	if err != nil {
		log.Printf("[RateRefreshScheduler] Failed to build refresh task: %v", err)
		return
	}

	spec := config.AppConfig.RateRefreshCron
	if spec == "" {
		spec = "0 3 * * *"
	}
	if _, err := scheduler.Register(spec, task); err != nil {
		log.Printf("[RateRefreshScheduler] Failed to register schedule %q: %v", spec, err)
		return
	}

	go func() {
		log.Printf("[RateRefreshScheduler] Scheduling rate refresh at %q", spec)
		if err := scheduler.Run(); err != nil {
			log.Printf("[RateRefreshScheduler] Scheduler stopped: %v", err)
		}
	}()
}

// InitPricingWorker runs the async worker in background.
func InitPricingWorker(snapRepo snapshotRepo.PricingSnapshotRepository, rateSvc rateshop.RateShopService, roomRepo roomTypeRepo.RoomTypeRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSnapshotPersist, handleSnapshotTask(snapRepo))
	mux.HandleFunc(TypeRateRefresh, handleRateRefreshTask(rateSvc, roomRepo))

	// Start async worker with retry logic
	go func() {
		log.Println("[PricingWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PricingWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PricingWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleSnapshotTask(repo snapshotRepo.PricingSnapshotRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var snapshot models.PricingSnapshot
		if err := json.Unmarshal(task.Payload(), &snapshot); err != nil {
			log.Printf("[SnapshotHandler] Invalid payload: %v", err)
			return err
		}
		if _, err := repo.Create(ctx, snapshot); err != nil {
			log.Printf("[SnapshotHandler] Failed to persist snapshot for room %s: %v", snapshot.RoomTypeID, err)
			return err
		}
		return nil
	}
}

func handleRateRefreshTask(svc rateshop.RateShopService, roomRepo roomTypeRepo.RoomTypeRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.RateRefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RateRefreshHandler] Invalid payload: %v", err)
			return err
		}

		properties := []string{p.PropertyID}
		if p.PropertyID == "" {
			ids, err := roomRepo.PropertyIDs(ctx)
			if err != nil {
				log.Printf("[RateRefreshHandler] Failed to list properties: %v", err)
				return err
			}
			properties = ids
		}

		var failed int
		for _, propertyID := range properties {
			if _, err := svc.Refresh(ctx, propertyID); err != nil {
				log.Printf("[RateRefreshHandler] Refresh failed for property %s: %v", propertyID, err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("rate refresh failed for %d of %d properties", failed, len(properties))
		}
		return nil
	}
}
