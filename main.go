package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"timetracker-backend/config"
	apiv1 "timetracker-backend/controllers/v1"
	"timetracker-backend/db"
	"timetracker-backend/fiberlog"
	"timetracker-backend/initializers"
	"timetracker-backend/middleware"
)

func main() {
	initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // limit of 1MB
	})
	app.Use(fiberRecover.New())

	app.Get("/health", func(ctx *fiber.Ctx) error {
		if err := db.PingDB(); err != nil {
			return ctx.SendStatus(fiber.StatusServiceUnavailable)
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	// public routes
	apiv1.InitAuthApiRouters(apiV1)

	// everything else requires a token and passes the role check
	secured := fiber.New()
	apiV1.Mount("/", secured)
	secured.Use(middleware.AuthorizationRequired())
	secured.Use(middleware.RbacMiddleware())
	apiv1.InitTimeApiRouters(secured)
	apiv1.InitTeamApiRouters(secured)
	apiv1.InitSupervisorApiRouters(secured)
	apiv1.InitReportApiRouters(secured)
	apiv1.InitGoalsApiRouters(secured)
	apiv1.InitNotificationApiRouters(secured)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
}
