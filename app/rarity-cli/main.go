package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/rarity/app/internal/wire"
	"github.com/x-xyz/rarity/base/config"
	bCtx "github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/run"
)

var (
	configPath = pflag.String("config", config.DefaultPath, "config file")
	cid        = pflag.String("cid", "", "collection root cid")
	start      = pflag.Int64("start", 0, "first token id")
	end        = pflag.Int64("end", 0, "last token id, inclusive")
	out        = pflag.String("out", ".", "directory receiving the report and the archive")
	progress   = pflag.Int("progress", 100, "log progress every n tokens, 0 to disable")
)

func main() {
	pflag.Parse()
	if err := config.Load(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := log.Init(viper.GetBool("debug")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	defer cancel()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-quit
		ctx.WithField("signal", sig).Warn("received signal, cancelling")
		cancel()
	}()

	runUseCase, err := wire.RunUseCase(ctx, *out, nil)
	if err != nil {
		ctx.WithField("err", err).Error("wire.RunUseCase failed")
		os.Exit(1)
	}

	res, err := runUseCase.Analyze(ctx, run.Request{Cid: *cid, Start: *start, End: *end}, observer(ctx))
	if err != nil {
		if domain.IsUserError(err) {
			fmt.Fprintln(os.Stderr, err)
		} else {
			ctx.WithField("err", err).Error("analysis failed")
		}
		os.Exit(1)
	}

	fmt.Printf("run %s: fetched %d/%d tokens, %d trait types\n", res.RunId, res.Fetched, res.Requested, res.Traits)
	for _, r := range res.Top {
		fmt.Printf("  #%d\t%s\ttoken %s\n", r.Rank, r.Score.String(), r.TokenId.String())
	}
	for _, a := range res.Artifacts {
		fmt.Println(a.Path)
	}
}

func observer(ctx bCtx.Ctx) domain.ProgressObserver {
	if *progress <= 0 {
		return nil
	}
	return func(done, total int) {
		if done%*progress == 0 || done == total {
			ctx.WithFields(log.Fields{
				"done":  done,
				"total": total,
			}).Info("fetching")
		}
	}
}
