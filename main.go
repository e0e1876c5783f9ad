package main

import (
	"slotpoll/core/logger"
	"slotpoll/core/server"
)

// @title SlotPoll API
// @version 1.0
// @description Backend for SlotPoll - group meeting time polls

// @host localhost:7070
// @BasePath /api/v1

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
