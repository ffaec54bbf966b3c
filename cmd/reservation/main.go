package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Astemirdum/hotel-reservation/reservation/app"
	"github.com/Astemirdum/hotel-reservation/reservation/config"
)

// @title Hotel reservation API
// @version 1.0
// @description Reserve, move and cancel hotel rooms.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app.Run ", err)
	}
}
