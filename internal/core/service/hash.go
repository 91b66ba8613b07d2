package service

import (
	"crypto/sha256"
	"encoding/hex"
)

const hashContentPrefixLen = 128

// HashAttachment computes the content fingerprint of an attachment: SHA-256
// over "{messageID}:{attachmentID}:{filename}:{first 128 chars of base64
// content}". The result populates FinanceDocument.FileHashSHA256 for change
// detection; identity stays with the document key.
func HashAttachment(messageID, attachmentID, filename, contentBase64 string) string {
	prefix := contentBase64
	if len(prefix) > hashContentPrefixLen {
		prefix = prefix[:hashContentPrefixLen]
	}
	sum := sha256.Sum256([]byte(messageID + ":" + attachmentID + ":" + filename + ":" + prefix))
	return hex.EncodeToString(sum[:])
}
