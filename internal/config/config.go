package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"log"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Env     string
	DB      db
	Server  server
	Logger  logger
	Storage storage
}

type defaultConfig struct {
	RunAddress     string
	DatabaseURI    string
	LogLevel       string
	Env            string
	Migrations     string
	StorageBackend string
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type storage struct {
	Backend string `env:"STORAGE_BACKEND" envDefault:"memory"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	d := defaultConfig{
		RunAddress:     viper.GetString("run_address"),
		DatabaseURI:    viper.GetString("database_uri"),
		LogLevel:       viper.GetString("log_level"),
		Env:            viper.GetString("app_env"),
		Migrations:     viper.GetString("migrations_path"),
		StorageBackend: viper.GetString("storage_backend"),
	}
	if d.RunAddress == "" {
		d.RunAddress = ":8080"
	}
	if d.Env == "" {
		d.Env = EnvLocal
	}
	if d.Migrations == "" {
		d.Migrations = "migrations"
	}
	if d.StorageBackend == "" {
		d.StorageBackend = BackendMemory
	}

	config := Config{
		Env: d.Env,
		DB: db{
			DatabaseURI: d.DatabaseURI,
			Migrations:  d.Migrations,
		},
		Server:  server{RunAddress: d.RunAddress},
		Logger:  logger{LogLevel: d.LogLevel},
		Storage: storage{Backend: d.StorageBackend},
	}

	return &config
}
