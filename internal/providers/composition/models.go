package composition

import (
	"toxiscan/internal/common/httpx"
	"toxiscan/internal/common/logger"
)

type searchResponse struct {
	TotalHits int `json:"totalHits"`
	Foods     []struct {
		Description string `json:"description"`
	} `json:"foods"`
}

type ServiceDependencies struct {
	Logger logger.Logger
	Client *httpx.Client
}
