// @title RescueTime dashboard API
// @description Backend for the RescueTime usage dashboard
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"time"

	"github.com/dr-aiuta/rescuetimedashboard/internal/api"
	"github.com/dr-aiuta/rescuetimedashboard/internal/repository"
	"github.com/dr-aiuta/rescuetimedashboard/internal/rescuetime"
	"github.com/dr-aiuta/rescuetimedashboard/internal/service"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/cleanup"
	"github.com/dr-aiuta/rescuetimedashboard/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	client := rescuetime.NewClient(&rescuetime.RTCfg{
		Key: cfg.GetString("RESCUETIME_API_KEY"),
		URL: cfg.GetString("RESCUETIME_BASE_URL"),
	})
	dashboardService := service.NewDashboardService(client)
	goalsService := service.NewGoalsService(repository.NewGoalsRepo(&dbCfg), dashboardService)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	if err := goalsService.SeedDefaults(ctx); err != nil {
		log.Println("seeding sample goals error: " + err.Error())
	}
	cancel()

	serv := api.New(&api.ServicesList{
		GoalsService:     goalsService,
		DashboardService: dashboardService,
	})
	err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
