package main

import (
	"os"
	"strconv"

	"bourse/controllers"
	"bourse/core"
	"bourse/internal"
	"bourse/ledger"
	"bourse/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	godotenv.Load()

	logger, err := internal.NewLogger()
	if err != nil {
		panic(err)
	}

	// connect to the database
	db, err := core.InitDB()
	if err != nil {
		panic(err)
	}

	// auto migrate the database
	err = db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Stock{},
		&models.Holding{},
		&models.ShareIssuanceEvent{},
		&models.PricePoint{},
		&models.TransactionRecord{},
		&models.FinanceSnapshot{},
	)
	if err != nil {
		panic(err)
	}

	engine := ledger.New(db, logger, ledger.PolicyFromEnv())

	// set up commands
	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	switch command {
	case "reset_counters":
		if err := engine.ResetDailyCounters(); err != nil {
			panic(err)
		}
		return
	default:
		runServer(db, logger, engine)
	}
}

func runServer(db *gorm.DB, logger *zap.SugaredLogger, engine *ledger.Ledger) {
	// set up http server
	router := gin.Default()
	err := router.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "https://"+os.Getenv("UI_DOMAIN"))
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.Use(controllers.RateLimit(10, 30))

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		panic("JWT_SECRET is not set")
	}

	startingMoney := int64(10000)
	if v, err := strconv.ParseInt(os.Getenv("STARTING_MONEY"), 10, 64); err == nil && v >= 0 {
		startingMoney = v
	}

	healthController := controllers.HealthController{DB: db}
	authController := controllers.AuthController{
		DB:            db,
		Logger:        logger,
		Secret:        secret,
		StartingMoney: startingMoney,
	}
	usersController := controllers.UsersController{DB: db, Ledger: engine, Logger: logger}
	companiesController := controllers.NewCompaniesController(engine, logger)
	tradingController := controllers.TradingController{Ledger: engine, Logger: logger}
	issuanceController := controllers.IssuanceController{Ledger: engine, Logger: logger}

	r := controllers.Router{
		Secret:              secret,
		HealthController:    &healthController,
		AuthController:      &authController,
		UsersController:     &usersController,
		CompaniesController: companiesController,
		TradingController:   &tradingController,
		IssuanceController:  &issuanceController,
	}

	r.RegisterRoutes(router)

	err = router.Run()
	if err != nil {
		return
	}
}
