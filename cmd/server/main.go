package main

import (
	"os"

	"pulse-ai/backend/internal/app"
)

// @title Pulse Playground API
// @version 1.0
// @description Backend for the Pulse multi-modal playground: chat sessions, model catalogue, vision/file/voice pass-through and the upstream CORS relay.
// @BasePath /
func main() {
	os.Exit(app.Run())
}
