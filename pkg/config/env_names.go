package config

const (
	EnvPrefix = "SALESPULSE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "SALESPULSE_DB_DSN"
	EnvDBHost = "SALESPULSE_DB_HOST"
	EnvDBUser = "SALESPULSE_DB_USER"
	EnvDBName = "SALESPULSE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
