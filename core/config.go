package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime settings. The backend address used to be a
// hard-coded literal on every page; it is externalized here instead.
type Config struct {
	AppName  string
	Env      string
	Debug    bool
	TestMode bool
	Build    string

	API struct {
		BaseURL string
		Timeout time.Duration
	}

	// StorageDir is where the durable client state (session file) lives.
	StorageDir string

	// ShowSampleRows gates the hard-coded demo rows on the SEA/SSC
	// dashboards that have no backing endpoint yet.
	ShowSampleRows bool

	Rollbar struct {
		Token string
	}
}

var Conf *Config

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Jakarta Mandarin")
	v.SetDefault("apiBaseURL", "http://localhost:3000")
	v.SetDefault("apiTimeout", 15*time.Second)
	v.SetDefault("storageDir", defaultStorageDir())
	v.SetDefault("showSampleRows", true)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		AppName:        v.GetString("appName"),
		Env:            env,
		Debug:          v.GetBool("debug"),
		TestMode:       v.GetBool("testMode"),
		Build:          v.GetString("build"),
		StorageDir:     v.GetString("storageDir"),
		ShowSampleRows: v.GetBool("showSampleRows"),
	}
	Conf.API.BaseURL = v.GetString("apiBaseURL")
	Conf.API.Timeout = v.GetDuration("apiTimeout")
	Conf.Rollbar.Token = v.GetString("rollbarToken")
}

func defaultStorageDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "jakartamandarin")
	}
	return filepath.Join(dir, "jakartamandarin")
}
