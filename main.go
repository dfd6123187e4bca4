package main

import (
	"fmt"
	"os"

	"social-sentiment/cmd"
	"social-sentiment/pkg/signals"

	"go.uber.org/zap"
)

func main() {
	ctx := signals.SetupSignalHandler()
	err := cmd.NewRootCommand().ExecuteContext(ctx)
	_ = zap.L().Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
