// Package integration содержит интеграционные тесты с реальной инфраструктурой
// (PostgreSQL, Redis, MongoDB, ClickHouse). Тесты используют testcontainers
// для поднятия Docker-контейнеров.
//
// Запуск:
//
//	go test ./tests/integration/... -v
//
// Пропуск (только юнит-тесты):
//
//	go test ./... -short
package integration

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"tapCalc/tests/integration/testutil"
)

// TestMain — точка входа для всех тестов пакета.
// Поднимает контейнеры один раз перед всеми тестами и останавливает после.
// В short-режиме контейнеры не поднимаются вовсе.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// === Setup: поднимаем контейнеры ===
	log.Println("поднимаем тестовые контейнеры...")

	var err error

	pgContainer, err = testutil.NewPostgresContainer(ctx)
	if err != nil {
		log.Fatalf("не удалось поднять PostgreSQL: %v", err)
	}
	log.Printf("PostgreSQL: %s:%s", pgContainer.Host, pgContainer.Port)

	redisContainer, err = testutil.NewRedisContainer(ctx)
	if err != nil {
		log.Fatalf("не удалось поднять Redis: %v", err)
	}
	log.Printf("Redis: %s:%s", redisContainer.Host, redisContainer.Port)

	mongoContainer, err = testutil.NewMongoContainer(ctx)
	if err != nil {
		log.Fatalf("не удалось поднять MongoDB: %v", err)
	}
	log.Printf("MongoDB: %s:%s", mongoContainer.Host, mongoContainer.Port)

	clickContainer, err = testutil.NewClickHouseContainer(ctx)
	if err != nil {
		log.Fatalf("не удалось поднять ClickHouse: %v", err)
	}
	log.Printf("ClickHouse: %s:%s", clickContainer.Host, clickContainer.Port)

	log.Println("запускаем тесты...")

	// === Запуск тестов ===
	code := m.Run()

	// === Teardown: останавливаем контейнеры ===
	log.Println("останавливаем контейнеры...")

	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("ошибка остановки PostgreSQL: %v", err)
		}
	}

	if redisContainer != nil {
		if err := redisContainer.Terminate(ctx); err != nil {
			log.Printf("ошибка остановки Redis: %v", err)
		}
	}

	if mongoContainer != nil {
		if err := mongoContainer.Terminate(ctx); err != nil {
			log.Printf("ошибка остановки MongoDB: %v", err)
		}
	}

	if clickContainer != nil {
		if err := clickContainer.Terminate(ctx); err != nil {
			log.Printf("ошибка остановки ClickHouse: %v", err)
		}
	}

	os.Exit(code)
}
