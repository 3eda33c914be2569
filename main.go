package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cotmonitor/src/cache"
	"cotmonitor/src/fetcher"
	"cotmonitor/src/server"
	"cotmonitor/src/socrata"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
)

var APP_NAME = os.Getenv("APP_NAME")

func SetupLogger() {
	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))

	level, err := logger.ParseLevel(levelStr)
	if err != nil {
		level = logger.InfoLevel
	}

	logger.SetLevel(level)
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logger.SetFormatter(&logger.JSONFormatter{})
	} else {
		logger.SetFormatter(&logger.TextFormatter{
			FullTimestamp: true,
		})
	}
}

func main() {
	_ = godotenv.Load()
	SetupLogger()
	defer handlePanic()

	store, err := cache.New(cache.GetConfig())
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize snapshot cache")
	}

	engine := fetcher.NewEngine(socrata.NewClient(socrata.GetConfig()), store)

	server.StartServer(server.GetConfig().Port, engine)
}

func handlePanic() {
	if r := recover(); r != nil {
		logger.WithError(fmt.Errorf("%+v", r)).Error(fmt.Sprintf("Application %s panic", APP_NAME))
	}
	//nolint
	time.Sleep(time.Second * 5)
}
