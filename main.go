package main

import (
	"github.com/vidaleve/missioncal/config"
	"github.com/vidaleve/missioncal/models"
	"github.com/vidaleve/missioncal/routes"
	"github.com/vidaleve/missioncal/store"
	"github.com/vidaleve/missioncal/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.Profile{}, &models.MissionDay{}, &models.DailyScore{})

	st := store.NewGormMissionStore(db)
	r := routes.SetupRouter(st)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
