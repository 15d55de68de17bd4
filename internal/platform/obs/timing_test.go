package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestTimeLogsRequestIDAndError(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRequestID(context.Background(), "abc-123")
	err := errors.New("boom")
	Time(ctx, "unit.op")(&err)

	out := buf.String()
	for _, want := range []string{"req_id=abc-123", "op=unit.op", "err=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}

func TestTimeWithoutRequest(t *testing.T) {
	buf := captureLog(t)

	var err error
	Time(context.Background(), "unit.ok")(&err)

	out := buf.String()
	if !strings.Contains(out, "req_id=- op=unit.ok") {
		t.Errorf("unexpected log line %q", out)
	}
	if strings.Contains(out, "err=") {
		t.Errorf("log line %q should not report an error", out)
	}
}
