package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/report"
)

func main() {
	schedulerConfig := config.GetSchedulerConfig()

	// with a file argument, schedule the CSV and print the results
	// instead of serving
	if len(os.Args) > 1 {
		if err := report.RunFile(os.Stdout, os.Args[1], schedulerConfig.RoundRobinTimeQuantum); err != nil {
			log.Fatalln(err)
		}
		return
	}

	app := fiber.New()
	handler := api.NewSchedulerHandlerImpl()

	apiGroup := app.Group("/api")

	v1 := apiGroup.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", schedulerConfig.Port)))
}
