package main

import (
	"context"
	"log"
	"time"

	"Prescryber/auth"
	"Prescryber/config"
	"Prescryber/controllers"
	"Prescryber/jobs"
	"Prescryber/mailer"
	"Prescryber/routes"
	"Prescryber/services"
	"Prescryber/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := store.Connect(ctx, cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("Database connection failed: ", err)
	}
	log.Println("Database connection successful")

	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Println("Error while ensuring indexes:", err)
	}

	users := store.NewMongoUserStore(db)
	prescriptions := store.NewMongoPrescriptionStore(db)
	tokens := auth.NewTokenService(cfg.JWTSecret)
	mail := mailer.NewSMTPSender(cfg)

	userService := &services.UserService{
		Users:  users,
		Tokens: tokens,
		Mail:   mail,
		Config: cfg,
	}
	prescriptionService := &services.PrescriptionService{
		Prescriptions: prescriptions,
		Users:         users,
	}

	reminder := &jobs.Reminder{Prescriptions: prescriptions, Mail: mail}
	reminder.Start()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "x-access-token"},
		AllowCredentials: true,
	}))

	routes.Routes(r, routes.Deps{
		Tokens:        tokens,
		Prescriptions: prescriptions,
		User: &controllers.UserController{
			Users:         userService,
			Prescriptions: prescriptionService,
		},
		Prescription: &controllers.PrescriptionController{
			Prescriptions: prescriptionService,
		},
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
