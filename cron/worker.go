package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gamecoach/config"
	bookingRepo "gamecoach/database/repository/booking"
	coachRepo "gamecoach/database/repository/coach"
	"gamecoach/models"
	"gamecoach/services/availability"
	"gamecoach/services/notification"
	"gamecoach/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] firing reminder for booking %s (coach %s)", p.BookingID, p.CoachUsername)

		if err := notifSvc.SendBookingReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// InitHousekeeping schedules the nightly maintenance jobs: pruning explicit
// per-date slots whose date has passed and marking finished bookings
// completed.
func InitHousekeeping(coaches coachRepo.CoachRepository, bookings bookingRepo.BookingRepository) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("15 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		today := availability.LocalDateKey(time.Now())
		pruned, err := coaches.PruneExplicitSlotsBefore(ctx, today)
		if err != nil {
			log.Printf("[Housekeeping] slot pruning failed: %v", err)
		} else if pruned > 0 {
			log.Printf("[Housekeeping] pruned stale explicit slots from %d services", pruned)
		}

		completed, err := bookings.MarkCompletedBefore(ctx, time.Now())
		if err != nil {
			log.Printf("[Housekeeping] booking completion sweep failed: %v", err)
		} else if completed > 0 {
			log.Printf("[Housekeeping] marked %d bookings completed", completed)
		}
	})
	if err != nil {
		log.Fatalf("[Housekeeping] failed to schedule jobs: %v", err)
	}

	c.Start()
	return c
}
