package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "quizly"
	quizObjectType  = "quiz"
)

// GenerationKey identifies one generation request. Content is hashed so the
// key length does not depend on the request body.
func GenerationKey(modelName string, numQuestions int, content string) string {
	sum := sha256.Sum256([]byte(content))
	return strings.Join([]string{
		GlobalKeyPrefix,
		quizObjectType,
		modelName,
		strconv.Itoa(numQuestions),
		hex.EncodeToString(sum[:]),
	}, ":")
}
