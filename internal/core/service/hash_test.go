package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAttachment_Deterministic(t *testing.T) {
	a := HashAttachment("msg-1", "att-1", "invoice.pdf", "JVBERi0xLjQK")
	b := HashAttachment("msg-1", "att-1", "invoice.pdf", "JVBERi0xLjQK")

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestHashAttachment_SensitiveToEachInput(t *testing.T) {
	base := HashAttachment("msg-1", "att-1", "invoice.pdf", "JVBERi0xLjQK")

	assert.NotEqual(t, base, HashAttachment("msg-2", "att-1", "invoice.pdf", "JVBERi0xLjQK"))
	assert.NotEqual(t, base, HashAttachment("msg-1", "att-2", "invoice.pdf", "JVBERi0xLjQK"))
	assert.NotEqual(t, base, HashAttachment("msg-1", "att-1", "receipt.pdf", "JVBERi0xLjQK"))
	assert.NotEqual(t, base, HashAttachment("msg-1", "att-1", "invoice.pdf", "JVBERi0xLjUK"))
}

func TestHashAttachment_OnlyContentPrefixCounts(t *testing.T) {
	prefix := strings.Repeat("A", 128)

	same := HashAttachment("msg-1", "att-1", "invoice.pdf", prefix+"tail-one")
	alsoSame := HashAttachment("msg-1", "att-1", "invoice.pdf", prefix+"tail-two")
	different := HashAttachment("msg-1", "att-1", "invoice.pdf", strings.Repeat("B", 8)+prefix)

	assert.Equal(t, same, alsoSame)
	assert.NotEqual(t, same, different)
}
