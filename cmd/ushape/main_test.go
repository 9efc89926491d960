package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/ushape"
)

func TestRun(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tests := []struct {
		args     []string
		stdin    string
		expected string
	}{
		{[]string{"-opts", "0x100008", "abc", "(שלום)"}, "", "abc (םולש)\n"},
		{[]string{"-opts", "0x8", "سلام"}, "", "\uFEB3\uFEFC\uFEE1\n"},
		{[]string{"-locale", "he-IL"}, "ישראל\nabc\n", "לארשי\nabc\n"},
		{[]string{"-locale", "ar", "-nobidi"}, "سلام", "\uFEB3\uFEFC\uFEE1\n"},
		{[]string{"-opts", "0x8", "-unshape", "\uFEB3\uFEFC\uFEE1"}, "", "سلام\n"},
	}
	for _, test := range tests {
		var out bytes.Buffer
		if err := run(test.args, strings.NewReader(test.stdin), &out); err != nil {
			t.Fatalf("%v: %v", test.args, err)
		}
		if out.String() != test.expected {
			t.Errorf("%v: expected %q, have %q", test.args, test.expected, out.String())
		}
	}
}

func TestRunErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var out bytes.Buffer
	err := run([]string{"-validate", "-opts", "0x100028", "x"}, strings.NewReader(""), &out)
	if !errors.Is(err, ushape.ErrUnsupportedOption) {
		t.Errorf("expected unsupported option error, have %v", err)
	}
	if err = run([]string{"-opts", "zz", "x"}, strings.NewReader(""), &out); err == nil {
		t.Errorf("expected invalid option mask to be reported")
	}
}
