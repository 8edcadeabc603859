// internal/repl/input.go
//
// 輸入處理：顯示提示、逐行讀取、解析金額與帳號。
// 解析失敗一律回傳 *InputFormatError，由選單顯示後回到主選單，不會結束程式。
// 單行長度有上限；過長的行會被整行丟棄並視為輸入格式錯誤。
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/cancelreader"

	"simplebank/internal/bank"
	"simplebank/internal/money"
)

// MaxLineLength 為單行輸入（不含換行）的最大位元組數。
const MaxLineLength = 4096

var (
	// errInterrupted 代表輸入等待期間收到中斷（ctx 取消）。
	errInterrupted = errors.New("interrupted")

	// ErrLineTooLong 代表單行輸入超過 MaxLineLength。
	ErrLineTooLong = fmt.Errorf("line longer than %d bytes", MaxLineLength)
)

// InputFormatError 代表使用者輸入無法解析為預期的型別。
// 只屬於表現層，不是帳本錯誤。
type InputFormatError struct {
	Field string // 例如 "amount"、"account number"、"input"
	Input string
	Err   error
}

func (e *InputFormatError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *InputFormatError) Unwrap() error { return e.Err }

// readLine 顯示提示並讀取一行，回傳去除前後空白的內容。
// 輸入結束回傳 io.EOF；中斷回傳 errInterrupted；過長的行回傳 *InputFormatError。
func (r *REPL) readLine(ctx context.Context, prompt string) (string, error) {
	r.printf("%s", prompt)
	if ctx.Err() != nil {
		return "", errInterrupted
	}
	line, err := r.nextLine()
	if err != nil {
		switch {
		case errors.Is(err, cancelreader.ErrCanceled), ctx.Err() != nil:
			return "", errInterrupted
		case errors.Is(err, io.EOF):
			return "", io.EOF
		case errors.Is(err, ErrLineTooLong):
			return "", &InputFormatError{Field: "input", Err: err}
		default:
			return "", fmt.Errorf("read input: %w", err)
		}
	}
	return strings.TrimSpace(line), nil
}

// nextLine 讀取到下一個換行為止。
// 超過 MaxLineLength 時持續讀完並丟棄該行剩餘內容，再回傳 ErrLineTooLong，
// 讓下一次讀取從新的一行開始。最後一行沒有換行也照常回傳。
func (r *REPL) nextLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)
	for {
		chunk, err := r.in.ReadSlice('\n')
		if !tooLong {
			line = append(line, chunk...)
			if len(strings.TrimRight(string(line), "\r\n")) > MaxLineLength {
				tooLong, line = true, nil
			}
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err != nil && !errors.Is(err, io.EOF):
			return "", err
		case tooLong:
			return "", ErrLineTooLong
		case err != nil && len(line) == 0:
			return "", io.EOF
		default:
			return strings.TrimRight(string(line), "\r\n"), nil
		}
	}
}

// readAmount 讀取並解析金額。正負號的檢查交給帳本。
func (r *REPL) readAmount(ctx context.Context, prompt string) (money.Amount, error) {
	s, err := r.readLine(ctx, prompt)
	if err != nil {
		return 0, err
	}
	a, err := money.Parse(s)
	if err != nil {
		return 0, &InputFormatError{Field: "amount", Input: s, Err: err}
	}
	return a, nil
}

func (r *REPL) readAccountNumber(ctx context.Context, prompt string) (bank.AccountNumber, error) {
	s, err := r.readLine(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return parseAccountNumber(s)
}

func parseAccountNumber(s string) (bank.AccountNumber, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &InputFormatError{Field: "account number", Input: s, Err: err}
	}
	return bank.AccountNumber(n), nil
}
