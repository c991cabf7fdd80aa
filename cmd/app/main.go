package main

import (
	"fmt"
	"log/slog"
	httpstd "net/http"
	"os"
	"strconv"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/cartrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/adapters/out/postgres/shopuserrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDatabase(configs)
	cutoff := mustBidCutoff(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	packerOrdersHandler := app.CreateGetPackerOrdersQueryHandler()
	sorterOrdersHandler := app.CreateGetSorterOrdersQueryHandler()

	jobManager := jobs.NewJobManager(packerOrdersHandler, sorterOrdersHandler, cutoff, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := httpin.NewServer(
		app.CreateAddProductToCartCommandHandler(),
		app.CreateRemoveProductFromCartCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreatePlaceContainerCommandHandler(),
		app.CreateChangeContainerQuantityCommandHandler(),
		app.CreateDeleteContainerCommandHandler(),
		app.CreateBulkPlaceContainerCommandHandler(),
		app.CreateMarkItemPackedCommandHandler(),
		app.CreateMarkOrderPackedCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		packerOrdersHandler,
		sorterOrdersHandler,
		app.CreateGetShopUserOrdersQueryHandler(),
		cutoff,
		logger,
	)

	startWebServer(server, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		BidCutoffHour:   goDotEnvVariable("BID_CUTOFF_HOUR"),
		BidCutoffMinute: goDotEnvVariable("BID_CUTOFF_MINUTE"),
		BidCutoffSecond: goDotEnvVariable("BID_CUTOFF_SECOND"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.ContainerDTO{},
		&shopuserrepo.ShopUserDTO{},
		&productrepo.ProductDTO{},
		&cartrepo.CartItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// mustBidCutoff reads the daily order intake cutoff, defaulting to 14:00:00.
func mustBidCutoff(configs cmd.Config) queries.BidCutoff {
	cutoff, err := queries.NewBidCutoff(
		envInt(configs.BidCutoffHour, 14),
		envInt(configs.BidCutoffMinute, 0),
		envInt(configs.BidCutoffSecond, 0),
	)
	if err != nil {
		log.Fatalf("Invalid bid cutoff: %v", err)
	}
	return cutoff
}

func envInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Invalid integer config value %q: %v", value, err)
	}
	return parsed
}

func startWebServer(server *httpin.Server, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(httpstd.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
