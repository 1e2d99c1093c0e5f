package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "FRESHMANDI"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv = "FRESHMANDI_APP_ENV"
	EnvPort   = "FRESHMANDI_APP_PORT"

	EnvDBDSN  = "FRESHMANDI_DB_DSN"
	EnvDBHost = "FRESHMANDI_DB_HOST"
	EnvDBUser = "FRESHMANDI_DB_USER"
	EnvDBName = "FRESHMANDI_DB_NAME"

	EnvRedisURL = "FRESHMANDI_REDIS_URL"

	EnvCartTokenSecret = "FRESHMANDI_CART_TOKEN_SECRET"
	EnvCartTokenIssuer = "FRESHMANDI_CART_TOKEN_ISSUER"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
