package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var nc *NotCrawlableError
		if errors.As(err, &nc) {
			slog.Warn("Submission rejected, not crawlable", "url", nc.URL, "reason", nc.Err)
			_ = c.JSON(http.StatusBadRequest, map[string]string{"detail": "News is not crawlable"})
			return
		}

		var nf *NotFoundError
		if errors.As(err, &nf) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"detail": nf.Message})
			return
		}

		var se *StorageError
		if errors.As(err, &se) {
			slog.Error("Storage failure", "op", se.Op, "error", se.Err)
			_ = c.JSON(http.StatusInternalServerError, map[string]string{"detail": "Failed to " + se.Op})
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
