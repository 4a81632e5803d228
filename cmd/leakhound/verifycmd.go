package leakhound

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/leakhound/leakhound/internal/types"
	"github.com/leakhound/leakhound/internal/verify"
)

var (
	flagVerifyKind   string
	flagVerifyKey    string
	flagVerifySecret string
)

func init() {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a single credential against its issuing service",
		RunE:  runVerify,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagVerifyKind, "kind", "", "credential kind (aws_access_key, sendgrid_key)")
	cmd.Flags().StringVar(&flagVerifyKey, "key", "", "access key or API key")
	cmd.Flags().StringVar(&flagVerifySecret, "secret", "", "secret key, for paired credentials")
	cmd.Flags().StringVar(&flagRegion, "region", "us-east-1", "AWS region for SES verification")
	cmd.Flags().DurationVar(&flagVerifyTimeout, "timeout", 10*time.Second, "per-call timeout")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("key")
}

func runVerify(_ *cobra.Command, _ []string) error {
	reg := verify.NewRegistry(verify.Options{
		Region:  flagRegion,
		Timeout: flagVerifyTimeout,
	})
	kind := types.Kind(flagVerifyKind)
	if !reg.Supports(kind) {
		return fmt.Errorf("no verification adapter for kind %q", kind)
	}
	res := reg.Verify(context.Background(), kind, flagVerifyKey, flagVerifySecret)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
