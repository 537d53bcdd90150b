package main

import (
	"github.com/tansive/hecate/internal/cli"
	"github.com/tansive/hecate/internal/common/logtrace"
)

func init() {
	logtrace.InitLogger(logtrace.LevelFor(false))
}

func main() {
	cli.Execute()
}
