package main

import (
	"fmt"
	"os"
	_ "reliant_crm/docs"
	"reliant_crm/internal/adapter/http/routes"
	"reliant_crm/internal/config"
	"reliant_crm/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Reliant CRM Quotation API
// @version         1.0
// @description     Customers, catalog, priced quotations, deposits and price estimates.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal("failed to start the application", "error", err)
	}
}
