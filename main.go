package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/jaribu/attendance-api/cmd/app"
)

// @contact.name   Jaribu Programming Course
// @contact.email  info@jaribu.org
//
// @securityDefinitions.apikey BearerToken
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
