// cmd/bank/main.go

// 互動式銀行帳本：開戶、存款、提款與餘額查詢，資料只存在於本次執行的記憶體中。
// 此檔案負責解析旗標、建立 logger、初始化帳本 (bank) 並啟動選單 (repl)；
// 收到 SIGINT/SIGTERM 時中斷等待中的輸入，印出道別訊息後以成功狀態結束。
//
// Logging：基底 logger 在此建立（輸出至 stderr），以依賴注入傳給各元件。
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"simplebank/internal/bank"
	"simplebank/internal/logging"
	"simplebank/internal/repl"
)

var version = "dev"

type options struct {
	logLevel  string
	logFormat string
	pause     time.Duration
	clear     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "bank",
		Short:        "Interactive in-memory bank ledger",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts options
			opts.logLevel, _ = cmd.Flags().GetString("log-level")
			opts.logFormat, _ = cmd.Flags().GetString("log-format")
			opts.pause, _ = cmd.Flags().GetDuration("pause")
			opts.clear, _ = cmd.Flags().GetBool("clear")

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return run(ctx, opts)
		},
	}

	rootCmd.Flags().String("log-level", "warn", "log level: debug, info, warn or error")
	rootCmd.Flags().String("log-format", "text", "log format: text or json")
	rootCmd.Flags().Duration("pause", time.Second, "pause after each action (0 disables)")
	rootCmd.Flags().Bool("clear", true, "clear the screen before each menu (terminals only)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func run(ctx context.Context, opts options) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, level, opts.logFormat)
	if err != nil {
		return err
	}
	logger = logger.With("session", uuid.NewString())

	in := openInput(logger)
	defer in.Close()

	ledger := bank.NewLedger(logger)
	r := repl.New(ledger, in, os.Stdout, repl.Options{
		Clear:  opts.clear && term.IsTerminal(int(os.Stdout.Fd())),
		Pause:  opts.pause,
		Logger: logger,
	})
	return r.Run(ctx)
}
