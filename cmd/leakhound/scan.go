package leakhound

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/leakhound/leakhound/internal/alert"
	"github.com/leakhound/leakhound/internal/audit"
	"github.com/leakhound/leakhound/internal/config"
	"github.com/leakhound/leakhound/internal/engine"
	"github.com/leakhound/leakhound/internal/pipeline"
	"github.com/leakhound/leakhound/internal/report"
	"github.com/leakhound/leakhound/internal/types"
	"github.com/leakhound/leakhound/internal/verify"
)

var (
	flagPath          string
	flagInclude       string
	flagExclude       string
	flagMaxBytes      int64
	flagVerify        bool
	flagAlert         bool
	flagRegion        string
	flagVerifyTimeout time.Duration
	flagAlertInterval time.Duration
	flagTelegramToken string
	flagTelegramChat  string
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan files for leaked credentials",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().BoolVar(&flagVerify, "verify", false, "confirm findings against the issuing service")
	cmd.Flags().BoolVar(&flagAlert, "alert", false, "send rate-limited Telegram alerts per finding")
	cmd.Flags().StringVar(&flagRegion, "region", "us-east-1", "AWS region for SES verification")
	cmd.Flags().DurationVar(&flagVerifyTimeout, "verify-timeout", 10*time.Second, "per-call verification timeout")
	cmd.Flags().DurationVar(&flagAlertInterval, "alert-interval", 5*time.Second, "minimum time between alerts")
	cmd.Flags().StringVar(&flagTelegramToken, "telegram-token", "", "Telegram bot token (or TELEGRAM_BOT_TOKEN)")
	cmd.Flags().StringVar(&flagTelegramChat, "telegram-chat", "", "Telegram chat id (or TELEGRAM_CHAT_ID)")
}

func runScan(_ *cobra.Command, _ []string) error {
	applyFileConfig(flagPath)

	var verifiers *verify.Registry
	if flagVerify {
		verifiers = verify.NewRegistry(verify.Options{
			Region:  flagRegion,
			Timeout: flagVerifyTimeout,
		})
	}
	var dispatcher *alert.Dispatcher
	if flagAlert {
		token, chat := telegramCreds()
		if token == "" || chat == "" {
			return fmt.Errorf("--alert requires a Telegram token and chat id")
		}
		dispatcher = alert.NewDispatcher(alert.Options{
			Token:    token,
			ChatID:   chat,
			Interval: flagAlertInterval,
		})
	}

	cfg := engine.Config{
		Root:            flagPath,
		IncludeGlobs:    flagInclude,
		ExcludeGlobs:    flagExclude,
		MaxBytes:        flagMaxBytes,
		Threads:         flagThreads,
		MinConfidence:   flagMinConfidence,
		NoCache:         flagNoCache,
		DefaultExcludes: flagDefaultExcludes,
		Pipeline: pipeline.New(pipeline.Options{
			Verifiers:  verifiers,
			Dispatcher: dispatcher,
		}),
	}

	res, err := engine.Scan(context.Background(), cfg)
	if err != nil {
		return err
	}

	switch {
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Findings); err != nil {
			return err
		}
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, res.Findings); err != nil {
			return err
		}
	default:
		report.PrintTable(os.Stdout, res.Findings, report.PrintOptions{
			NoColor:      flagNoColor,
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
	}

	var alertsSent int64
	if dispatcher != nil {
		alertsSent = dispatcher.Hits()
	}
	_ = audit.NewLog(flagPath).Append(
		audit.NewRecord(flagPath, res.Findings, res.FilesScanned, res.Duration, alertsSent))

	if shouldFail(res.Findings, flagFailOn) {
		os.Exit(1)
	}
	return nil
}

// applyFileConfig overlays .leakhound.yml values onto flags left at their
// defaults.
func applyFileConfig(root string) {
	fc, err := config.LoadLocal(root)
	if err != nil {
		return
	}
	if flagInclude == "" && fc.Include != nil {
		flagInclude = *fc.Include
	}
	if flagExclude == "" && fc.Exclude != nil {
		flagExclude = *fc.Exclude
	}
	if fc.MaxBytes != nil {
		flagMaxBytes = *fc.MaxBytes
	}
	if flagThreads == 0 && fc.Threads != nil {
		flagThreads = *fc.Threads
	}
	if flagMinConfidence == 0 && fc.MinConfidence != nil {
		flagMinConfidence = *fc.MinConfidence
	}
	if fc.NoColor != nil {
		flagNoColor = flagNoColor || *fc.NoColor
	}
	if fc.NoCache != nil {
		flagNoCache = flagNoCache || *fc.NoCache
	}
	if fc.Verify != nil {
		flagVerify = flagVerify || *fc.Verify
	}
	if fc.Region != nil {
		flagRegion = *fc.Region
	}
	if fc.VerifyTimeout != nil {
		if d, err := time.ParseDuration(*fc.VerifyTimeout); err == nil {
			flagVerifyTimeout = d
		}
	}
	if flagTelegramToken == "" && fc.TelegramToken != nil {
		flagTelegramToken = *fc.TelegramToken
	}
	if flagTelegramChat == "" && fc.TelegramChatID != nil {
		flagTelegramChat = *fc.TelegramChatID
	}
	if fc.AlertInterval != nil {
		if d, err := time.ParseDuration(*fc.AlertInterval); err == nil {
			flagAlertInterval = d
		}
	}
}

func telegramCreds() (string, string) {
	token := flagTelegramToken
	if token == "" {
		token = os.Getenv("TELEGRAM_BOT_TOKEN")
	}
	chat := flagTelegramChat
	if chat == "" {
		chat = os.Getenv("TELEGRAM_CHAT_ID")
	}
	return token, chat
}

func shouldFail(findings []types.Finding, failOn string) bool {
	threshold := types.Severity(failOn).Rank()
	for _, f := range findings {
		if f.Severity.Rank() >= threshold {
			return true
		}
	}
	return false
}
