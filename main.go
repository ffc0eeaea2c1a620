package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"agentchat/app"
	"agentchat/config"
)

func main() {
	cfg := config.Load()

	application, err := app.New(cfg)
	if err != nil {
		logrus.Fatalf("Failed to start: %v", err)
	}
	defer application.Close()

	logrus.Infof("Server running on port %s", cfg.Port)
	logrus.Fatal(http.ListenAndServe(":"+cfg.Port, application.Router))
}
