package utilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testCase struct {
	source string
	hash   int
}

var testStrings = []testCase{
	{"test", 137050753280518951},
	{"test2", 253748902539114519},
	{"tester", 115586007494858103},
	{"ardvark", 242448674802442711},
	{"Test", 32906162972958471},
	{"Test2", 235707456239602295},
	{"blarg", 226522123152123963},
	{"日本語", 100391766260962863},
}

func TestHashing(t *testing.T) {
	compactMask := CompactMask(5)
	for _, test := range testStrings {
		assert.Equal(t, test.hash, GetStringHash(test.source, compactMask), "hash of %q", test.source)
	}
}

func TestHashLengthBits(t *testing.T) {
	compactMask := CompactMask(5)
	assert.Equal(t, 0, GetStringHash("", compactMask)&3)
	assert.Equal(t, 1, GetStringHash("a", compactMask)&3)
	assert.Equal(t, 2, GetStringHash("日本", compactMask)&3)
	assert.Equal(t, 3, GetStringHash("abcdef", compactMask)&3)
}
