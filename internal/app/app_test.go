package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeClient returns a canned reply or error without any network traffic.
type fakeClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestRun_WritesReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.txt")
	fc := &fakeClient{reply: "Contractor: Acme Builders\nTrade: Electrical\nResources: wiring\n"}
	a := &App{cfg: Config{OutputPath: out}, client: fc}

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(b), "Contractor: Acme Builders") {
		t.Errorf("report missing contractor:\n%s", b)
	}
	if fc.calls != 1 {
		t.Errorf("model called %d times, want exactly 1", fc.calls)
	}
}

func TestRun_ClientErrorMapsToErrNoReply(t *testing.T) {
	fc := &fakeClient{err: errors.New("connection refused")}
	a := &App{cfg: Config{OutputPath: "-"}, client: fc}

	err := a.Run(context.Background())
	if !errors.Is(err, ErrNoReply) {
		t.Fatalf("err = %v, want ErrNoReply", err)
	}
}

func TestRun_EmptyReplyMapsToErrUnparsable(t *testing.T) {
	fc := &fakeClient{reply: ""}
	a := &App{cfg: Config{OutputPath: "-"}, client: fc}

	err := a.Run(context.Background())
	if !errors.Is(err, ErrUnparsableReply) {
		t.Fatalf("err = %v, want ErrUnparsableReply", err)
	}
}

func TestRun_MissingInputIsFatal(t *testing.T) {
	fc := &fakeClient{reply: "irrelevant"}
	a := &App{cfg: Config{Inputs: []string{"no-such-file.pdf"}, OutputPath: "-"}, client: fc}

	err := a.Run(context.Background())
	if err == nil {
		t.Fatal("expected open failure to propagate")
	}
	if errors.Is(err, ErrNoReply) || errors.Is(err, ErrUnparsableReply) {
		t.Fatalf("open failure mapped to wrong sentinel: %v", err)
	}
	if fc.calls != 0 {
		t.Errorf("model called despite fatal input error")
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	if _, err := New(Config{Provider: "bogus"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestRun_WritesPDFWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.txt")
	pdfOut := filepath.Join(dir, "report.pdf")
	fc := &fakeClient{reply: "Client: Jane Doe\n"}
	a := &App{cfg: Config{OutputPath: out, OutputPDFPath: pdfOut}, client: fc}

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(pdfOut)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if !strings.HasPrefix(string(b), "%PDF") {
		t.Error("pdf output does not look like a PDF")
	}
}
