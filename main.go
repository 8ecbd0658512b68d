package main

import (
	"github.com/biosecret/taskflow/app"
	_ "github.com/biosecret/taskflow/docs"
)

// @title TaskFlow API
// @version 1.0
// @description Per-user task tracker.
// @host localhost:3000
// @BasePath /
func main() {
	// CLI; without a subcommand it runs the server
	app.Execute()
}
