package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestWriteReservedKeysWin(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Warn("diagnostic.unrecognized_answer", map[string]any{
		"msg":         "overridden",
		"question_id": "alpha",
		"err":         errors.New("boom"),
	})

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if got["msg"] != "diagnostic.unrecognized_answer" || got["level"] != "warn" {
		t.Fatalf("unexpected entry %v", got)
	}
	if got["question_id"] != "alpha" || got["err"] != "boom" {
		t.Fatalf("expected fields to be kept, got %v", got)
	}
	if _, ok := got["ts"].(string); !ok {
		t.Fatalf("expected ts, got %v", got)
	}
}
