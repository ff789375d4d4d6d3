package utils

import (
	"aesthetics-service/internal/pkg/constvars"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateObjectName builds a collision free object key below prefix.
func GenerateObjectName(prefix, label, fileExtension string) string {
	if fileExtension != "" && !strings.HasPrefix(fileExtension, ".") {
		fileExtension = "." + fileExtension
	}
	return path.Join(prefix, fmt.Sprintf("%s-%s%s", uuid.NewString(), label, fileExtension))
}
