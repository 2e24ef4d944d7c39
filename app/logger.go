package app

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/models"
)

func InitLogger(config models.LoggerConfig) {
	logLevel := strings.ToLower(config.Level)
	log.Debug("[LOGGER] Initializing logger with level: ", logLevel)

	if strings.ToLower(config.Format) == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	}

	switch logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	log.Info("[LOGGER] Logger initialized with level: ", logLevel)
}
