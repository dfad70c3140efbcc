// @title           Community Job Board API
// @version         1.0
// @description     Moderated job, internship and course listings with a CV showcase and keyword matching.
// @host            localhost:4000
// @BasePath        /

package main

import (
	"jobboard_backend/internal/app"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	app.Run()
}
