package logging

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// init keeps Log usable from tests, where main never runs.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()
	logger.SetOutput(os.Stderr)

	if gin.Mode() == gin.ReleaseMode {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Log = logger.WithFields(logrus.Fields{"service": "bloghub"})
}
