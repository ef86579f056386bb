// Package main 是上交所每日成交概况快照工具的入口：拉取指定日期的成交统计，
// 重排成固定的指标×板块表后写成带日期的 JSON 文件，并打印落盘路径。
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"marketDaily/internal/api"
	"marketDaily/internal/config"
	"marketDaily/internal/dateutil"
	"marketDaily/internal/reshape"
	"marketDaily/internal/store"
	"marketDaily/internal/trace"
)

// 整次抓取的超时（单次请求，无重试）
const fetchTimeout = 20 * time.Second

var outputPath string

var rootCmd = &cobra.Command{
	Use:          "marketDaily [date]",
	Short:        "拉取上交所每日成交概况并保存为 JSON（date 支持 YYYYMMDD 或 YYYY-MM-DD，缺省为今天）",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

var apiClient = api.NewClient()

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"输出文件路径（默认 <输出目录>/YYYY-MM/YYYY-MM-DD.json）")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := trace.WithTraceID(context.Background(), trace.NewTraceID())

	var input string
	if len(args) == 1 {
		input = args[0]
	}
	spec, err := dateutil.Normalize(input)
	if err != nil {
		return err
	}
	trace.Log(ctx, "main: start date=%s", spec.FileDate)

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()
	items, err := apiClient.GetDealDaily(fetchCtx, spec.APIDate)
	if err != nil {
		trace.Log(ctx, "main: GetDealDaily err=%v", err)
		return err
	}
	rows := reshape.Records(items)
	if len(rows) == 0 {
		trace.Log(ctx, "main: %s 无数据（非交易日？），照常落盘空表", spec.FileDate)
	}

	path := outputPath
	if path == "" {
		path = store.DefaultPath(config.Load().OutputDir, spec.FileDate)
	}
	out, err := store.Save(path, spec.FileDate, rows)
	if err != nil {
		trace.Log(ctx, "main: save err=%v", err)
		return err
	}
	trace.Log(ctx, "main: saved %s rows=%d", out, len(rows))
	fmt.Println(out)
	return nil
}
