package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasktrack/internal/config"
	"tasktrack/internal/repository"
	"tasktrack/internal/service"
	"tasktrack/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	categorySvc := service.NewCategoryService(categoryRepo)
	taskSvc := service.NewTaskService(taskRepo, categoryRepo)

	if cfg.TrashRetention > 0 {
		scheduler := service.NewSchedulerService(time.Local)
		_, err := scheduler.ScheduleDaily(cfg.TrashSweepTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			purged, err := taskSvc.PurgeExpired(jobCtx, cfg.TrashRetention)
			if err != nil {
				log.Printf("trash sweep: %v", err)
				return
			}
			if purged > 0 {
				log.Printf("trash sweep: purged %d tasks", purged)
			}
		})
		if err != nil {
			log.Fatalf("schedule trash sweep: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	handler := web.NewHandler(authSvc, taskSvc, categorySvc)
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: web.NewRouter(handler),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Task tracker listening on %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
