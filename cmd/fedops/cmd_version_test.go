package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCmdVersion(t *testing.T) {
	c := newCmdVersion()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.Run(c, nil)

	out := buf.String()
	for _, want := range []string{version, commit, date} {
		if !strings.Contains(out, want) {
			t.Errorf("version output %q missing %q", out, want)
		}
	}
}
