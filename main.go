package main

import (
	"log"

	"MediTrack/Config"
	"MediTrack/CronJobs"
	"MediTrack/Logger"
	"MediTrack/Models"
	"MediTrack/Routes"
	"MediTrack/Utils/Token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
)

func main() {
	cfg, err := Config.Load()
	if err != nil {
		log.Fatal("configuration error: ", err)
	}

	Logger.InitLogger(logging.INFO)

	if err := Token.Setup(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenExpireMinutes); err != nil {
		log.Fatal("token setup error: ", err)
	}

	if err := Models.ConnectDataBase(cfg.DatabaseURL); err != nil {
		log.Fatal("connection error: ", err)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router)

	purger := CronJobs.NewPatientPurger(Models.DB)
	purger.StartPurgeCron()

	router.Run(":" + cfg.ListenPort)
}
