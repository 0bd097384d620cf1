package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/config"
	"github.com/tourops/tour-logistics/internal/database"
	"github.com/tourops/tour-logistics/internal/handler"
	"github.com/tourops/tour-logistics/internal/middleware"
	"github.com/tourops/tour-logistics/internal/queue"
	"github.com/tourops/tour-logistics/internal/repository"
	"github.com/tourops/tour-logistics/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and export caching disabled")
	}

	tourRepo := repository.NewTourRepo(db)
	showRepo := repository.NewShowRepo(db)
	flightRepo := repository.NewFlightRepo(db)
	hotelRepo := repository.NewHotelRepo(db)
	transportRepo := repository.NewTransportRepo(db)
	teamRepo := repository.NewTeamRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	checklistRepo := repository.NewChecklistRepo(db)

	tours := handler.NewTourHandler(tourRepo, showRepo, flightRepo, hotelRepo, transportRepo, teamRepo, activityRepo)
	shows := handler.NewShowHandler(tourRepo, showRepo, flightRepo, hotelRepo, transportRepo, activityRepo)
	flights := handler.NewFlightHandler(showRepo, flightRepo, transportRepo)
	hotels := handler.NewHotelHandler(showRepo, hotelRepo)
	transports := handler.NewTransportHandler(showRepo, flightRepo, transportRepo)
	checklists := handler.NewChecklistHandler(showRepo, checklistRepo)
	exports := handler.NewExportHandler(tourRepo, showRepo, flightRepo, hotelRepo, transportRepo, teamRepo)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e, db)

	v1 := e.Group("/v1")
	v1.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterTourRoutes(v1, tours, shows)
	router.RegisterTravelRoutes(v1, flights, hotels, transports)
	router.RegisterChecklistRoutes(v1, checklists)
	router.RegisterExportRoutes(v1, exports, cacheMW)

	// Drain activity events into the audit trail in the background.
	go func() {
		if err := queue.StartActivityConsumer(db); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
