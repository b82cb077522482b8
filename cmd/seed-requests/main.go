package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hostelhq/outpass-backend/internal/config"
	"github.com/hostelhq/outpass-backend/internal/database"
	"github.com/hostelhq/outpass-backend/internal/logger"
	"github.com/hostelhq/outpass-backend/internal/model"
	"github.com/hostelhq/outpass-backend/internal/repository"
	"github.com/hostelhq/outpass-backend/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	gatePassRepo := repository.NewGatePassRepository(pool)
	gatePassService := service.NewGatePassService(gatePassRepo, cfg, nil, log)

	fmt.Println("=== Seeding Sample Gate-Pass Requests ===")

	samples := []model.CreateGatePassRequest{
		{Name: "Arjun Reddy", RegisterNo: "21BCE1042", RoomNumber: "A-214", Reason: "Family function at home", Village: "Sullurpeta", PhoneNumber: "+919876501042", Days: "2"},
		{Name: "Kiran Kumar", RegisterNo: "21BCE1107", RoomNumber: "A-220", Reason: "Medical appointment", Village: "Gudur", PhoneNumber: "+919876501107", Days: "1"},
		{Name: "Sandeep Varma", RegisterNo: "22BEC2015", RoomNumber: "B-105", Reason: "Sister's wedding", Village: "Naidupeta", PhoneNumber: "+919876502015", Days: "4"},
		{Name: "Ravi Teja", RegisterNo: "22BME2203", RoomNumber: "B-311", Reason: "Collect certificates from school", Village: "Srikalahasti", PhoneNumber: "+919876502203", Days: "1"},
		{Name: "Mahesh Babu", RegisterNo: "23BCS3310", RoomNumber: "C-002", Reason: "Festival at native place", Village: "Venkatagiri", PhoneNumber: "+919876503310", Days: "3"},
	}

	for _, sample := range samples {
		pass, err := gatePassService.Create(ctx, sample)
		if err != nil {
			log.Fatal().Err(err).Str("register_no", sample.RegisterNo).Msg("Failed to seed request")
		}
		fmt.Printf("Created request %s for %s (%s)\n", pass.ID, pass.Name, pass.RegisterNo)
	}

	fmt.Printf("Done. Seeded %d requests.\n", len(samples))
}
