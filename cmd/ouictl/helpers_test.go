package main

import (
	"testing"

	"github.com/omeyang/ouikit/pkg/registry/xoui"
	"github.com/omeyang/ouikit/pkg/registry/xresolver"
)

func newTestResolver(t *testing.T) *xresolver.Resolver {
	t.Helper()
	reg, err := xoui.Default()
	if err != nil {
		t.Fatal(err)
	}
	res, err := xresolver.New(reg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = res.Close() })
	return res
}
