package util_test

import (
	"testing"

	"github.com/dbsteward/tablespec/lib/util"
	"github.com/stretchr/testify/assert"
)

func TestCondJoin(t *testing.T) {
	assert.Equal(t, "PK, NOT NULL", util.CondJoin(", ", "PK", "", "NOT NULL"))
	assert.Equal(t, "", util.CondJoin(", ", "", ""))
	assert.Equal(t, "a", util.CondJoin(", ", "", "a", ""))
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "b", util.CoalesceStr("", "b", "c"))
	assert.Equal(t, "", util.CoalesceStr())
}

func TestSquashSpace(t *testing.T) {
	assert.Equal(t, "SELECT a FROM b", util.SquashSpace("\n  SELECT a\n\tFROM   b \n"))
}

func TestMapErr(t *testing.T) {
	out, err := util.MapErr([]int{1, 2, 3}, func(i int) (int, error) { return i * 2, nil })
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, out)

	_, err = util.MapErr([]int{1, 2}, func(i int) (int, error) {
		if i == 2 {
			return 0, assert.AnError
		}
		return i, nil
	})
	assert.Equal(t, assert.AnError, err)
}
