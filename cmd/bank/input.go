// cmd/bank/input.go
//
// stdin 的包裝：優先使用 cancelreader；平台不支援時改用 detachedReader，
// 讓中斷訊號仍能解除阻塞中的讀取。
package main

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/cancelreader"
)

// openInput 以 cancelreader 包裝 stdin，讓中斷訊號能解除阻塞中的讀取。
// 無法包裝時（例如某些重導向的輸入）退回 detachedReader。
func openInput(logger *slog.Logger) io.ReadCloser {
	cr, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		logger.Warn("stdin is not cancelable, falling back to detached reads", "error", err)
		return newDetachedReader(os.Stdin)
	}
	return cr
}

// detachedReader 在背景 goroutine 中讀取底層 reader，
// Cancel 後等待中的 Read 立即回傳 cancelreader.ErrCanceled。
// 被放棄的那次讀取仍阻塞在底層 reader 上，直到程式結束。
type detachedReader struct {
	r    io.Reader
	done chan struct{}
	once sync.Once
}

type readResult struct {
	n   int
	err error
}

func newDetachedReader(r io.Reader) *detachedReader {
	return &detachedReader{r: r, done: make(chan struct{})}
}

func (d *detachedReader) Read(p []byte) (int, error) {
	select {
	case <-d.done:
		return 0, cancelreader.ErrCanceled
	default:
	}

	// 背景讀取使用自己的 buffer；取消後不得再寫入呼叫端的 p
	buf := make([]byte, len(p))
	ch := make(chan readResult, 1)
	go func() {
		n, err := d.r.Read(buf)
		ch <- readResult{n: n, err: err}
	}()

	select {
	case res := <-ch:
		return copy(p, buf[:res.n]), res.err
	case <-d.done:
		return 0, cancelreader.ErrCanceled
	}
}

// Cancel 解除等待中與之後的所有 Read。
func (d *detachedReader) Cancel() bool {
	d.once.Do(func() { close(d.done) })
	return true
}

// Close 只取消讀取，不關閉底層的 stdin。
func (d *detachedReader) Close() error {
	d.Cancel()
	return nil
}
