package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"todo-backend/config"
	"todo-backend/pkg/adapter/controller"
	"todo-backend/pkg/entity/model"
	"todo-backend/pkg/infrastructure/datastore"
	"todo-backend/pkg/infrastructure/logger"
	"todo-backend/pkg/registry"

	"go.uber.org/zap"
)

type seedTodo struct {
	Name     string
	Priority string
	IsFun    bool
}

var seedTodos = []seedTodo{
	{Name: "buy milk", Priority: "low"},
	{Name: "walk dog", Priority: "medium", IsFun: true},
	{Name: "file taxes", Priority: "high"},
}

func main() {
	// Parse command line flags
	env := flag.String("env", "", "Environment (development, test, e2e, staging, production)")
	truncate := flag.Bool("truncate", false, "Delete every todo before seeding")
	flag.Parse()

	// Set environment if provided via flag, otherwise rely on APP_ENV or default
	if *env != "" {
		os.Setenv("APP_ENV", *env)
	}

	config.ReadConfig(config.ReadConfigOption{})
	log := logger.New()
	defer log.Sync()
	log.Infof("Starting seed tool for environment: %s", config.C.AppEnv)

	client, err := datastore.NewClient()
	if err != nil {
		log.Fatalw("Failed to create database client", "error", err)
	}
	defer client.Close()

	ctx := context.Background()
	todos := registry.New(client).NewController().Todo

	if *truncate {
		if err := truncateData(ctx, log, todos); err != nil {
			log.Fatalw("Failed to truncate data", "error", err)
		}
		log.Info("Truncation completed successfully!")
	}

	if err := seedTodosData(ctx, log, todos); err != nil {
		log.Fatalw("Failed to seed todos", "error", err)
	}

	log.Info("Seeding completed successfully!")
}

// truncateData deletes todos one by one so the last delete resets the id counter.
func truncateData(ctx context.Context, log *zap.SugaredLogger, todos controller.Todo) error {
	log.Info("Truncating todos table...")
	existing, err := todos.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list todos: %w", err)
	}
	for _, t := range existing {
		if _, err := todos.Delete(ctx, t.ID); err != nil {
			return fmt.Errorf("failed to delete todo %d: %w", t.ID, err)
		}
	}
	return nil
}

func seedTodosData(ctx context.Context, log *zap.SugaredLogger, todos controller.Todo) error {
	log.Info("Seeding todos...")

	existing, err := todos.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list todos: %w", err)
	}
	if len(existing) > 0 {
		log.Infof("Table already holds %d todos, skipping", len(existing))
		return nil
	}

	for _, s := range seedTodos {
		name, priority, isFun := s.Name, s.Priority, s.IsFun
		todo, err := todos.Create(ctx, model.CreateTodoInput{
			Name:     &name,
			Priority: &priority,
			IsFun:    &isFun,
		})
		if err != nil {
			return fmt.Errorf("failed to create todo %q: %w", s.Name, err)
		}
		log.Infof("Created todo %d: %s", todo.ID, todo.Name)
	}

	return nil
}
