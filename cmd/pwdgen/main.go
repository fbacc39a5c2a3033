package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if os.Getenv("PWDGEN_DEBUG") != "" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	cobra.CheckErr(NewCLI().ExecuteContext(context.Background()))
}
