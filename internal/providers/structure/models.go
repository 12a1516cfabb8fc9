package structure

import (
	"toxiscan/internal/common/httpx"
	"toxiscan/internal/common/logger"
)

type cidResponse struct {
	IdentifierList struct {
		CID []int64 `json:"CID"`
	} `json:"IdentifierList"`
}

type ServiceDependencies struct {
	Logger logger.Logger
	Client *httpx.Client
}
