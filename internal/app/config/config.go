package config

import (
	"agenda-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "agenda"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeout:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			AppointmentCacheTTLInSecs: utils.GetEnvInt("APP_APPOINTMENT_CACHE_TTL_IN_SECONDS", 60),
		},
		Scheduling: Scheduling{
			BaseUrl:                 utils.GetEnvString("SCHEDULING_BASE_URL", "http://localhost:3333"),
			RequestTimeoutInSeconds: utils.GetEnvInt("SCHEDULING_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Sadt: Sadt{
			BaseUrl:                  utils.GetEnvString("SADT_BASE_URL", "http://localhost:3333"),
			CheckTimeoutInSeconds:    utils.GetEnvInt("SADT_CHECK_TIMEOUT_IN_SECONDS", 3),
			GenerateTimeoutInSeconds: utils.GetEnvInt("SADT_GENERATE_TIMEOUT_IN_SECONDS", 5),
		},
		Documents: Documents{
			ArchiveBucketName: utils.GetEnvString("DOCUMENTS_ARCHIVE_BUCKET_NAME", "sadt-documents"),
			PrintSpoolDir:     utils.GetEnvString("DOCUMENTS_PRINT_SPOOL_DIR", "/var/spool/agenda"),
			NoticesQueue:      utils.GetEnvString("DOCUMENTS_NOTICES_QUEUE", "agenda_notices"),
			ReprintMaxPerMin:  utils.GetEnvInt("DOCUMENTS_REPRINT_MAX_PER_MINUTE", 10),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
	}
}
