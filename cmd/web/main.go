// @title           Wagenmarkt API
// @version         1.0
// @description     Marketplace API for used German cars (Swagger documentation).
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"wagenmarkt_backend/internal/app"

	_ "wagenmarkt_backend/docs"
)

func main() {
	app.Run()
}
