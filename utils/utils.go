package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateCertificateNumber produces a unique, human-readable certificate number
func GenerateCertificateNumber(courseID uint) string {
	suffix := strings.ToUpper(strings.Split(uuid.NewString(), "-")[0])
	return fmt.Sprintf("LMS-%d-%d-%s", time.Now().Year(), courseID, suffix)
}
