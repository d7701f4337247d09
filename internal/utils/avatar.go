package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// AvatarURL derives the Gravatar image for an email: 200px, G-rated, mystery-man fallback
func AvatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=g&d=mm"
}
