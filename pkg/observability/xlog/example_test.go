package xlog_test

import (
	"context"
	"fmt"
	"os"

	"github.com/omeyang/ouikit/pkg/observability/xlog"
)

func ExampleBuilder() {
	logger, cleanup, err := xlog.New().
		SetOutput(os.Stdout).
		SetLevelString("info").
		Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer func() { _ = cleanup() }()

	fmt.Println(logger.GetLevel())
	fmt.Println(logger.Enabled(context.Background(), xlog.LevelDebug))
	// Output:
	// INFO
	// false
}

func ExampleParseLevel() {
	level, err := xlog.ParseLevel("warning")
	fmt.Println(level, err)
	// Output:
	// WARN <nil>
}
