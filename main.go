package main

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/urboijano/MassageHaven/config"
	"github.com/urboijano/MassageHaven/controllers"
	"github.com/urboijano/MassageHaven/routes"
	"github.com/urboijano/MassageHaven/services"
	"github.com/urboijano/MassageHaven/storage"
	"github.com/urboijano/MassageHaven/utils"
)

func main() {
	cfg := config.Load()

	store, err := storage.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize storage")
	}

	if err := ensureAdminUser(store); err != nil {
		logrus.WithError(err).Fatal("failed to seed admin user")
	}

	if cfg.AutoCompleteBookings {
		sweeper := services.NewSweeperService(store)
		sweeper.StartScheduler()
	}

	h := controllers.New(store, cfg)
	r := routes.SetupRouter(h, cfg)
	printRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}

// ensureAdminUser creates the default admin account when the backend
// starts against an empty database. The in-memory store seeds its own.
func ensureAdminUser(store storage.Storage) error {
	_, err := store.GetUserByUsername("admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword("password")
	if err != nil {
		return err
	}
	_, err = store.CreateUser("admin", hash)
	return err
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
