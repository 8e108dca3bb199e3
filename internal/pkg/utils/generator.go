package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateObjectName(prefix, originalFileName string) string {
	extension := strings.ToLower(filepath.Ext(originalFileName))
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s/%s_%s%s", prefix, timestamp, uuid.NewString(), extension)
}
