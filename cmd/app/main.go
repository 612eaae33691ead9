package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"kirana/cmd"
	httpadapter "kirana/internal/adapters/in/http"
	"kirana/internal/adapters/out/postgres/orderrepo"
	"kirana/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	var gormDB *gorm.DB
	if configs.StorageDriver == cmd.StorageDriverPostgres {
		gormDB = mustConnectDB(configs)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(app.CreateListOrdersQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	// A .env file is optional; the process environment takes precedence.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		StorageDriver:   envOrDefault("STORAGE_DRIVER", cmd.StorageDriverCSV),
		DBHost:          envOrDefault("DB_HOST", "localhost"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          envOrDefault("DB_USER", "postgres"),
		DBPassword:      envOrDefault("DB_PASSWORD", "password"),
		DBName:          envOrDefault("DB_NAME", "kirana"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		OrdersFile:      envOrDefault("ORDERS_FILE", "orders.csv"),
		OrderItemsFile:  envOrDefault("ORDER_ITEMS_FILE", "order_items.csv"),
		BillsDir:        envOrDefault("BILLS_DIR", "bills"),
		AdminToken:      os.Getenv("ADMIN_TOKEN"),
		PriceCatalog:    os.Getenv("PRICE_CATALOG"),
		StoreName:       envOrDefault("STORE_NAME", "KGN KIRANA STORE"),
		StoreAddress:    envOrDefault("STORE_ADDRESS", "Vill: Bhatahawaha, Thana & Post: Thakraha, Dist: West Champaran (Bihar), Pin: 845404"),
		StorePhone:      envOrDefault("STORE_PHONE", "9145206349"),
		StoreProprietor: envOrDefault("STORE_PROPRIETOR", "Irfan Ansari"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateSubmitOrderCommandHandler(),
		app.CreateConfirmOrderCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetBillQueryHandler(),
	)
	server.RegisterRoutes(e, httpadapter.NewAdminGate(httpadapter.TokenVerifier(configs.AdminToken)))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
