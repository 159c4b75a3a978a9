package main

import (
	"reflect"
	"testing"
)

func TestFilterPresets(t *testing.T) {
	names := []string{"death", "doorSwap", "wallBreak", "wallCrack"}

	if got := filterPresets(names, ""); !reflect.DeepEqual(got, names) {
		t.Errorf("empty query = %v", got)
	}
	if got := filterPresets(names, "WALL"); !reflect.DeepEqual(got, []string{"wallBreak", "wallCrack"}) {
		t.Errorf("WALL = %v", got)
	}
	if got := filterPresets(names, "zzz"); len(got) != 0 {
		t.Errorf("zzz = %v", got)
	}
}

func TestIndexOf(t *testing.T) {
	names := []string{"a", "b", "c"}
	if got := indexOf(names, "c"); got != 2 {
		t.Errorf("indexOf(c) = %d", got)
	}
	if got := indexOf(names, "missing"); got != 0 {
		t.Errorf("indexOf(missing) = %d", got)
	}
}
