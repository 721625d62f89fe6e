package cli

import (
	"io"
	"testing"
)

func TestDictsCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.dictsCommand()

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Errorf("dicts RunE() = %v, want nil", err)
	}
}
