// internal/logging/logging.go
//
// Package logging 提供結構化日誌（log/slog）的建構工具。
//
// 原則：
//   - 日誌以依賴注入傳遞，不使用全域 logger（不呼叫 slog.SetDefault）
//   - 各元件於建構時以 logger.With("component", ...) 綁定一次
//   - 未提供 logger 時使用 Discard()
//
// 輸出格式、等級與目的地只在 main() 決定。
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// Discard 回傳丟棄所有輸出的 logger。
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// Default 若 logger 非 nil 則原樣回傳，否則回傳 Discard()。
//
//	func NewComponent(logger *slog.Logger) *Component {
//	    logger = logging.Default(logger)
//	    return &Component{logger: logger.With("component", "name")}
//	}
func Default(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return Discard()
}

// ParseLevel 解析 debug / info / warn / error（不分大小寫）。
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", s)
	}
	return lvl, nil
}

// New 建立寫入 w 的 logger；format 為 "text" 或 "json"。
func New(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}
}
