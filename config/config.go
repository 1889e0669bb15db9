package config

import (
	"time"

	"github.com/gotify/configor"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		TimeZone   string `default:"" env:"APP_TIME_ZONE"` // пусто = локальное время сервера
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-pipeline" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Countdown struct {
		TickIntervalMs int `default:"1000" env:"COUNTDOWN_TICK_INTERVAL_MS"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// Location часовой пояс, в котором сравниваются даты окна оценки
func (c *Configuration) Location() *time.Location {
	if c == nil || c.App.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.App.TimeZone)
	if err != nil {
		log.WithError(err).WithField("time_zone", c.App.TimeZone).Warn("неизвестный часовой пояс, используется локальное время")
		return time.Local
	}
	return loc
}

func (c *Configuration) TickInterval() time.Duration {
	if c == nil || c.Countdown.TickIntervalMs <= 0 {
		return time.Second
	}
	return time.Duration(c.Countdown.TickIntervalMs) * time.Millisecond
}
