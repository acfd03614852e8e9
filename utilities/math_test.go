package utilities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testCaseAbs struct {
	input, expected int
}

var testCasesAbs = []testCaseAbs{
	{-4, 4},
	{1, 1},
	{-1, 1},
	{-3, 3},
	{-10, 10},
}

type testCaseMax struct {
	inputA, inputB, expected int
}

var testCasesMax = []testCaseMax{
	{-4, 3, 3},
	{4, 5, 5},
	{2, 1, 2},
	{10, 4, 10},
	{-1, 1, 1},
}

type testCaseMin struct {
	inputA, inputB, expected int
}

var testCasesMin = []testCaseMin{
	{-4, 3, -4},
	{4, 5, 4},
	{2, 1, 1},
	{10, 4, 4},
	{-1, 1, -1},
}

func TestAbs(t *testing.T) {
	for _, testCase := range testCasesAbs {
		assert.Equal(t, testCase.expected, Abs(testCase.input), "Abs(%d)", testCase.input)
	}
}

func TestMax(t *testing.T) {
	for _, testCase := range testCasesMax {
		assert.Equal(t, testCase.expected, Max(testCase.inputA, testCase.inputB), "Max(%d, %d)", testCase.inputA, testCase.inputB)
	}
}

func TestMin(t *testing.T) {
	for _, testCase := range testCasesMin {
		assert.Equal(t, testCase.expected, Min(testCase.inputA, testCase.inputB), "Min(%d, %d)", testCase.inputA, testCase.inputB)
	}
}

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, int64(14), SaturatingAdd(11, 3))
	assert.Equal(t, int64(math.MaxInt64), SaturatingAdd(math.MaxInt64-10, 11))
	assert.Equal(t, int64(math.MaxInt64), SaturatingAdd(math.MaxInt64, math.MaxInt64))
	assert.Equal(t, int64(math.MaxInt64), SaturatingAdd(math.MaxInt64-10, 10))
}
