// cmd/bank/main_test.go
//
// 指令列測試：旗標驗證、version 子指令，以及 stdin 退回方案的取消行為。
package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/muesli/cancelreader"
)

func TestRunRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts options
		want string
	}{
		{"unknown level", options{logLevel: "loud", logFormat: "text"}, "loud"},
		{"unknown format", options{logLevel: "warn", logFormat: "xml"}, "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 兩者都應在開啟 stdin 之前失敗
			err := run(context.Background(), tt.opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err=%v want mention of %q", err, tt.want)
			}
		})
	}
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
		wantOut string
	}{
		{name: "version", args: []string{"version"}, wantOut: version + "\n"},
		{name: "bad level flag", args: []string{"--log-level=loud"}, wantErr: true},
		{name: "bad format flag", args: []string{"--log-format", "xml"}, wantErr: true},
		{name: "unexpected argument", args: []string{"extra"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tt.wantErr)
			}
			if tt.wantOut != "" && stdout.String() != tt.wantOut {
				t.Errorf("stdout=%q want %q", stdout.String(), tt.wantOut)
			}
		})
	}
}

func TestDetachedReader(t *testing.T) {
	t.Run("passes data through", func(t *testing.T) {
		d := newDetachedReader(strings.NewReader("6\n"))
		got, err := io.ReadAll(d)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "6\n" {
			t.Fatalf("got=%q want %q", got, "6\n")
		}
	})

	t.Run("cancel unblocks pending read", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()
		d := newDetachedReader(pr)

		done := make(chan error, 1)
		go func() {
			_, err := d.Read(make([]byte, 16))
			done <- err
		}()

		time.Sleep(20 * time.Millisecond)
		if !d.Cancel() {
			t.Fatal("Cancel returned false")
		}

		select {
		case err := <-done:
			if !errors.Is(err, cancelreader.ErrCanceled) {
				t.Fatalf("err=%v want ErrCanceled", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Read did not return after Cancel")
		}

		// 取消後的讀取立即失敗
		if _, err := d.Read(make([]byte, 1)); !errors.Is(err, cancelreader.ErrCanceled) {
			t.Fatalf("err=%v want ErrCanceled", err)
		}
		if err := d.Close(); err != nil {
			t.Fatal(err)
		}
	})
}
