package wire

import (
	"net/http"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/spf13/viper"

	"github.com/x-xyz/rarity/base/config"
	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/run"
	metadataRepository "github.com/x-xyz/rarity/stores/metadata/repository"
	metadataUsecase "github.com/x-xyz/rarity/stores/metadata/usecase"
	rarityUsecase "github.com/x-xyz/rarity/stores/rarity/usecase"
	reportUsecase "github.com/x-xyz/rarity/stores/report/usecase"
	runUsecase "github.com/x-xyz/rarity/stores/run/usecase"
)

// Sources lists the configured gateways in priority order, then the ipfs node when ipfs.api is set
func Sources(c ctx.Ctx) ([]domain.MetadataReaderRepository, error) {
	gateways, err := config.Gateways()
	if err != nil {
		return nil, err
	}
	timeout := viper.GetDuration("pipeline.timeout")
	httpClient := http.Client{}
	sources := []domain.MetadataReaderRepository{}
	for _, g := range gateways {
		sources = append(sources, metadataRepository.NewGatewayReaderRepo(&metadataRepository.GatewayReaderRepoCfg{
			Name:    g.Name,
			Client:  httpClient,
			Gateway: g.Url,
			Timeout: timeout,
			Rps:     g.Rps,
			Burst:   g.Burst,
		}))
	}
	if api := viper.GetString("ipfs.api"); api != "" {
		sources = append(sources, metadataRepository.NewIpfsNodeReaderRepo(ipfsapi.NewShell(api), viper.GetDuration("ipfs.timeout")))
	}

	names := []string{}
	for _, s := range sources {
		names = append(names, s.Name())
	}
	c.WithFields(log.Fields{
		"sources": names,
		"timeout": timeout,
	}).Info("metadata sources")
	return sources, nil
}

// RunUseCase builds the pipeline writing into outputDir. history may be nil.
func RunUseCase(c ctx.Ctx, outputDir string, history run.HistoryRepo) (run.Usecase, error) {
	sources, err := Sources(c)
	if err != nil {
		return nil, err
	}
	fetcher := metadataUsecase.NewGatewayFetcher(&metadataUsecase.GatewayFetcherCfg{})
	return runUsecase.NewRunUseCase(&runUsecase.RunUseCaseCfg{
		Sources:  sources,
		Suffixes: viper.GetStringSlice("pipeline.suffixes"),
		Coordinator: metadataUsecase.NewFetchCoordinator(&metadataUsecase.FetchCoordinatorCfg{
			Fetcher: fetcher,
			Workers: viper.GetInt("pipeline.workers"),
		}),
		Parser: metadataUsecase.NewDefaultParser(),
		Index:  rarityUsecase.NewIndex(),
		Builder: reportUsecase.NewReportBuilder(&reportUsecase.ReportBuilderCfg{
			Scorer: rarityUsecase.NewScorer(),
		}),
		HistoryRepo: history,
		OutputDir:   outputDir,
		MaxRange:    viper.GetInt64("pipeline.maxRange"),
		TopN:        viper.GetInt("pipeline.topN"),
	}), nil
}
