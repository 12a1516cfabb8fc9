package encyclopedia

import (
	"toxiscan/internal/common/httpx"
	"toxiscan/internal/common/logger"
)

// Summary is the page summary payload. Only the extract is consumed
// downstream; title and description ride along for logging.
type Summary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Extract     string `json:"extract"`
}

type ServiceDependencies struct {
	Logger logger.Logger
	Client *httpx.Client
}
