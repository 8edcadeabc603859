// internal/repl/repl.go
//
// Package repl 提供互動式選單（表現層）。
// REPL 只是帳本的呼叫端：收集使用者輸入、呼叫 bank.Ledger、顯示結果或錯誤。
// 它自行維護「目前帳戶」的選擇，帳本對此一無所知。
//
// 除了明確選擇離開、輸入結束 (EOF) 或中斷訊號外，任何領域錯誤都不會結束程式；
// 無法辨識的錯誤則不吞掉，由 Run 回傳給呼叫端。
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"simplebank/internal/bank"
	"simplebank/internal/logging"
)

const (
	farewell    = "Thank you for using the banking system. Goodbye!"
	interrupted = "Program terminated by user. Goodbye!"
)

// Options 控制畫面呈現。
type Options struct {
	// Clear 為 true 時，每次顯示選單前清除畫面。
	Clear bool
	// Pause 為每個動作完成後的暫停時間；0 表示不暫停。
	Pause time.Duration

	Logger *slog.Logger
}

// canceler 由可中斷的輸入來源實作（例如 cancelreader.CancelReader）。
type canceler interface {
	Cancel() bool
}

// REPL 為選單迴圈。零值不可用，請以 New 建立。
type REPL struct {
	ledger *bank.Ledger

	// I/O
	src io.Reader
	in  *bufio.Reader
	out io.Writer

	opts   Options
	logger *slog.Logger

	// 目前選取的帳號；0 表示尚未選取。
	current bank.AccountNumber
}

// New 建立一個操作 ledger 的 REPL。
// 若 in 實作 Cancel() bool，Run 的 context 取消時會中斷等待中的讀取。
func New(ledger *bank.Ledger, in io.Reader, out io.Writer, opts Options) *REPL {
	logger := logging.Default(opts.Logger).With("component", "repl")
	return &REPL{
		ledger: ledger,
		src:    in,
		in:     bufio.NewReader(in),
		out:    out,
		opts:   opts,
		logger: logger,
	}
}

// Current 回傳目前選取的帳號；ok 為 false 表示尚未選取。
func (r *REPL) Current() (n bank.AccountNumber, ok bool) {
	return r.current, r.current != 0
}

// Run 執行選單迴圈，直到使用者離開、輸入結束或 ctx 被取消。
// 前兩者與中斷皆會印出道別訊息並回傳 nil。
func (r *REPL) Run(ctx context.Context) error {
	if c, ok := r.src.(canceler); ok {
		stop := context.AfterFunc(ctx, func() { c.Cancel() })
		defer stop()
	}

	r.logger.Info("session started")
	for {
		r.showMenu()

		var quit bool
		choice, err := r.readLine(ctx, "Enter your choice (1-6): ")
		switch {
		case err == nil:
			quit, err = r.execute(ctx, choice)
		case r.report(err):
			// 例如選項那一行過長：提示後回到選單
			err = r.pause(ctx)
		}
		if err != nil {
			return r.finish(err)
		}
		if quit {
			r.printf("\n%s\n", farewell)
			r.logger.Info("session ended", "reason", "quit")
			return nil
		}
	}
}

// execute 執行單一選項。回傳 true 代表應離開。
// 已知的錯誤會顯示給使用者並回到選單；其餘錯誤原樣回傳。
func (r *REPL) execute(ctx context.Context, choice string) (bool, error) {
	r.logger.Debug("menu selection", "choice", choice)

	var err error
	switch choice {
	case "1":
		err = r.cmdCreate(ctx)
	case "2":
		err = r.cmdSwitch(ctx)
	case "3":
		err = r.cmdDeposit(ctx)
	case "4":
		err = r.cmdWithdraw(ctx)
	case "5":
		err = r.cmdDetails()
	case "6":
		return true, nil
	default:
		r.printf("Invalid choice. Please enter a number between 1 and 6.\n\n")
	}

	if err != nil && !r.report(err) {
		return false, err
	}
	return false, r.pause(ctx)
}

// finish 處理結束迴圈的錯誤：EOF 視同離開、中斷印出道別，其餘回傳。
func (r *REPL) finish(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		r.printf("\n%s\n", farewell)
		r.logger.Info("session ended", "reason", "eof")
		return nil
	case errors.Is(err, errInterrupted):
		r.printf("\n\n%s\n", interrupted)
		r.logger.Info("session ended", "reason", "interrupt")
		return nil
	default:
		r.logger.Error("session aborted", "error", err)
		return err
	}
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
