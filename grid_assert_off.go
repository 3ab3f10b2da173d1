//go:build !gridassert

package main

func assertCell(_ *scalarGrid, _, _ int) {}
