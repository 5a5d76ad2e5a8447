package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestSendCmdPrintsReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webhook" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"บันทึกแล้ว"}`))
	}))
	defer server.Close()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"send", "--url", server.URL, "--group", "g1", "กาแฟ", "50"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("command failed: %v", err)
		}
	})

	if strings.TrimSpace(out) != "บันทึกแล้ว" {
		t.Fatalf("expected reply output, got %q", out)
	}
}

func TestSendCmdRequiresGroup(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"send", "--group", "", "hello"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error without --group")
	}
}

func TestSummaryTodayCmd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/groups/g1/summary/today" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"day_key":"2026-02-10"}`))
	}))
	defer server.Close()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"summary", "today", "--url", server.URL, "--group", "g1"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, "2026-02-10") {
		t.Fatalf("expected day key in output, got %q", out)
	}
}

func TestSummaryCycleCmdBuildsQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cycle_key":"2026-01"}`))
	}))
	defer server.Close()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"summary", "cycle", "--url", server.URL, "--group", "g1", "--offset", "-1"})

	captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("command failed: %v", err)
		}
	})

	if gotQuery != "offset=-1" {
		t.Fatalf("expected offset query, got %q", gotQuery)
	}
}
