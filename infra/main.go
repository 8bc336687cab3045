package infra

import (
	"github.com/tnqbao/gau-recipe-service/config"
	"github.com/tnqbao/gau-recipe-service/infra/produce"
)

type Infra struct {
	Redis         *RedisClient
	Postgres      *PostgresClient
	Logger        *LoggerClient
	Telemetry     *TelemetryClient
	RabbitMQ      *RabbitMQClient
	UserDirectory *UserDirectoryService
	Produce       *produce.Produce
	Minio         *MinioClient
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	redis := InitRedisClient(cfg.EnvConfig)
	if redis == nil {
		panic("Failed to initialize Redis service")
	}

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	telemetry := InitTelemetryClient(cfg.EnvConfig)

	rabbitMQ := InitRabbitMQClient(cfg.EnvConfig)
	if rabbitMQ == nil {
		panic("Failed to initialize RabbitMQ service")
	}

	userDirectory := InitUserDirectoryService(cfg.EnvConfig, redis)
	if userDirectory == nil {
		panic("Failed to initialize User directory service")
	}

	produceService := produce.InitProduce(rabbitMQ.Channel)
	if produceService == nil {
		panic("Failed to initialize Produce service")
	}

	minio := InitMinioClient(cfg.EnvConfig)
	if minio == nil {
		panic("Failed to initialize MinIO service")
	}

	infraInstance = &Infra{
		Redis:         redis,
		Postgres:      postgres,
		Logger:        logger,
		Telemetry:     telemetry,
		RabbitMQ:      rabbitMQ,
		UserDirectory: userDirectory,
		Produce:       produceService,
		Minio:         minio,
	}

	return infraInstance
}

func GetClient() *Infra {
	if infraInstance == nil {
		panic("Infra not initialized. Call InitInfra() first.")
	}
	return infraInstance
}
