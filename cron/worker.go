package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"petsit/config"
	"petsit/services/booking"

	"github.com/hibiken/asynq"
)

const TypeStatusSweep = "booking:sweep"

// InitStatusSweepWorker runs the async worker and its periodic scheduler in
// the background. The sweep persists derived booking statuses
// (accepted -> current -> done) so stored state and unread notifications keep
// up with the calendar; reads derive the same statuses on the fly regardless.
func InitStatusSweepWorker(bookingSvc booking.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeStatusSweep, handleStatusSweep(bookingSvc))

	go func() {
		log.Println("[StatusSweep] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[StatusSweep] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[StatusSweep] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runScheduler(redisOpts)
}

func runScheduler(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)

	interval := config.AppConfig.SweepIntervalMin
	if interval <= 0 {
		interval = 5
	}
	spec := fmt.Sprintf("@every %dm", interval)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeStatusSweep, nil)); err != nil {
		log.Printf("[StatusSweep] failed to register periodic sweep: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[StatusSweep] scheduler stopped: %v", err)
	}
}

func handleStatusSweep(bookingSvc booking.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		updated, err := bookingSvc.SweepStatuses(ctx, time.Now())
		if err != nil {
			log.Printf("[StatusSweep] sweep failed: %v", err)
			return err
		}
		if updated > 0 {
			log.Printf("[StatusSweep] moved %d bookings forward", updated)
		}
		return nil
	}
}
