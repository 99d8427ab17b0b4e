package main

import (
	"fmt"
	"os"

	_ "thecodecup/docs"
	"thecodecup/internal/adapter/http/routes"
	"thecodecup/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           The Code Cup API
// @version         1.0
// @description     Coffee ordering engine: menu, cart, simulated order fulfillment, loyalty rewards and vouchers.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logger, err := logging.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	routes.Run(logger)
}
