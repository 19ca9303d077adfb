package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kat-co/vala"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug     bool
		TestMode  bool
		Env       string // DEV (default) | TEST | QA | PROD
		Build     string
		AppName   string
		SecretKey []byte

		DefaultFromEmail mail.Address
		FrontendBaseURL  string

		SendgridAPIKey  string
		RollbarToken    string
		StripeSecretKey string

		Server   serverConfig
		Database databaseConfig
	}

	serverConfig struct {
		Host               string
		Port               string
		DebugHost          string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	databaseConfig struct {
		URI            string
		Name           string
		ConnectTimeout time.Duration
		// UseTransactions runs the payment record + selection clear pair in a
		// multi-document transaction. Requires a replica-set deployment.
		UseTransactions bool
	}
)

func (c serverConfig) Address() string { return c.Host + ":" + c.Port }

// NewConfig loads the app configuration from the environment.
// An optional `config/.env.<env>` file is loaded first if it exists.
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "dev")
	conf.SetDefault("appName", "Picha")
	conf.SetDefault("secretKey", "v#2yj(w!b0b+0m5_pk&0a%0=p8^q4&n$dz&uoxh2(h!x)#*c2(")
	conf.SetDefault("defaultFromEmail", "noreply@localhost")
	conf.SetDefault("frontendBaseUrl", "http://localhost:3000")
	conf.SetDefault("serverHost", "")
	conf.SetDefault("serverPort", "5000")
	conf.SetDefault("serverDebugHost", "localhost:6060")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("jwtExpirationDelta", time.Hour)
	conf.SetDefault("dbUri", "mongodb://localhost:27017")
	conf.SetDefault("dbName", "picha")
	conf.SetDefault("dbConnectTimeout", 10*time.Second)
	conf.SetDefault("dbUseTransactions", false)

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		Debug:            conf.GetBool("debug"),
		TestMode:         conf.GetBool("testMode"),
		Env:              env,
		Build:            conf.GetString("build"),
		AppName:          conf.GetString("appName"),
		SecretKey:        []byte(conf.GetString("secretKey")),
		DefaultFromEmail: mail.Address{Name: conf.GetString("appName"), Address: conf.GetString("defaultFromEmail")},
		FrontendBaseURL:  conf.GetString("frontendBaseUrl"),
		SendgridAPIKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		StripeSecretKey:  conf.GetString("stripeSecretKey"),
		Server: serverConfig{
			Host:               conf.GetString("serverHost"),
			Port:               conf.GetString("serverPort"),
			DebugHost:          conf.GetString("serverDebugHost"),
			ShutdownTimeout:    conf.GetDuration("serverShutdownTimeout"),
			JWTExpirationDelta: conf.GetDuration("jwtExpirationDelta"),
		},
		Database: databaseConfig{
			URI:             conf.GetString("dbUri"),
			Name:            conf.GetString("dbName"),
			ConnectTimeout:  conf.GetDuration("dbConnectTimeout"),
			UseTransactions: conf.GetBool("dbUseTransactions"),
		},
	}

	err := vala.BeginValidation().Validate(
		vala.StringNotEmpty(string(c.SecretKey), "secretKey"),
		vala.StringNotEmpty(c.Database.URI, "dbUri"),
		vala.StringNotEmpty(c.Database.Name, "dbName"),
		vala.StringNotEmpty(c.Server.Port, "serverPort"),
	).Check()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return c
}
