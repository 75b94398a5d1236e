package main // Entry point package

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/myacars/myacars/internal/cache"
	"github.com/myacars/myacars/internal/config"
	"github.com/myacars/myacars/internal/database"
	"github.com/myacars/myacars/internal/handler"
	"github.com/myacars/myacars/internal/protocol"
	"github.com/myacars/myacars/internal/queue"
	"github.com/myacars/myacars/internal/repository"
	"github.com/myacars/myacars/internal/router"
)

// version is reported in the protocol handshake banner.
var version = "1.0.0"

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("database migrate: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient() // nil when redis is unreachable
	if rdb == nil {
		log.Printf("redis unavailable, catalog cache disabled")
	}

	sessions := repository.NewSessionRepo(db)
	flights := repository.NewFlightRepo(db)
	positions := repository.NewPositionRepo(db)
	airports := repository.NewAirportRepo(db)
	aircraft := repository.NewAircraftRepo(db)

	dispatcher := protocol.NewDispatcher(
		protocol.Config{
			AirlineICAO: cfg.AirlineICAO,
			FirstName:   cfg.FirstName,
			LastName:    cfg.LastName,
			RankLevel:   cfg.RankLevel,
			RankString:  cfg.RankString,
			UserID:      cfg.UserID,
			Password:    cfg.Password,
			EnableChat:  cfg.EnableChat,
			Version:     version,
		},
		sessions, flights, positions, airports, aircraft,
		cache.New(rdb, cfg.CacheTTL),
		queue.NewPublisher(),
	)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	router.RegisterRoutes(e, handler.NewSmartcars(dispatcher, cfg.Env == "dev"))

	// Optional in-process track logger; deployments running the live map
	// consume acars.position themselves and leave this off.
	if v := os.Getenv("TRACK_CONSUMER"); strings.EqualFold(v, "true") || v == "1" {
		go func() {
			if err := queue.StartTrackConsumer(); err != nil {
				log.Printf("track consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
