package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloghub/internal/logging"
	"bloghub/internal/validate"
)

func message(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}

// rejected maps a validation failure to its status. All current kinds are
// client errors.
func rejected(c *gin.Context, err *validate.Error) {
	message(c, http.StatusBadRequest, err.Message)
}

// storeFailure surfaces an unexpected store error as a 500 carrying the
// underlying message.
func storeFailure(c *gin.Context, err error) {
	logging.Log.WithError(err).Error("store operation failed")
	message(c, http.StatusInternalServerError, err.Error())
}
