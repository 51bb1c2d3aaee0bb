package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/MahmoudAkram21/um-qura/internal/db"
	"github.com/MahmoudAkram21/um-qura/internal/mqtt"
	"github.com/MahmoudAkram21/um-qura/internal/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	env := LoadEnvironment()

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	store := db.NewStore()

	if len(os.Args) > 1 && os.Args[1] == "create-admin" {
		runCreateAdmin(store)
		return
	}

	cache := InitCache(env)
	notifier := InitNotifier(env)

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	RegisterRoutes(r, env, store, cache, notifier)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// InitCache selects the Redis cache when configured, else an in-process map.
func InitCache(env Environment) redis.Cache {
	if env.RedisAddress == "" {
		log.Info().Msg("REDIS_ADDRESS not set, using in-process cache")
		return redis.NewMemory()
	}
	log.Info().Str("address", env.RedisAddress).Msg("using redis cache")
	return redis.New(env.RedisAddress, env.RedisUsername, env.RedisPassword)
}

// InitNotifier connects the MQTT publisher when a broker is configured.
func InitNotifier(env Environment) mqtt.Notifier {
	if env.MQTTBrokerURL == "" {
		return mqtt.Noop()
	}
	notifier, err := mqtt.Connect(env.MQTTBrokerURL, "um-qura-server")
	if err != nil {
		log.Error().Err(err).Msg("MQTT connect failed, updates will not be published")
		return mqtt.Noop()
	}
	return notifier
}
