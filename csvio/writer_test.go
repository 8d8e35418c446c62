package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ledgerkit/payproc"
)

func TestWriter_SerializesSnapshots(t *testing.T) {
	snapshots := []payproc.AccountSnapshot{
		{
			Client:    101,
			Available: amt(t, "10"),
			Held:      amt(t, "20"),
			Total:     amt(t, "30"),
			Locked:    true,
		},
	}

	var output bytes.Buffer
	if err := NewWriter(&output).Write(snapshots); err != nil {
		t.Fatalf("expected serialization to succeed, got %v", err)
	}

	expected := strings.Join([]string{
		"client,available,held,total,locked",
		"101,10,20,30,true",
	}, "\n")
	if got := strings.TrimSpace(output.String()); got != expected {
		t.Errorf("output = %q, want %q", got, expected)
	}
}

func TestWriter_EmptySnapshotListWritesHeaderOnly(t *testing.T) {
	var output bytes.Buffer
	if err := NewWriter(&output).Write(nil); err != nil {
		t.Fatalf("expected serialization to succeed, got %v", err)
	}
	if got := strings.TrimSpace(output.String()); got != "client,available,held,total,locked" {
		t.Errorf("output = %q, want header only", got)
	}
}
