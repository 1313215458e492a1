package usecase

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
	"github.com/x-xyz/rarity/domain/artifact"
	"github.com/x-xyz/rarity/domain/rarity"
	"github.com/x-xyz/rarity/domain/report"
	rarityUsecase "github.com/x-xyz/rarity/stores/rarity/usecase"
)

const runIdSuffixLen = 8

type ReportBuilderCfg struct {
	Scorer rarity.Scorer
}

type builder struct {
	scorer rarity.Scorer
}

func NewReportBuilder(cfg *ReportBuilderCfg) report.Builder {
	scorer := cfg.Scorer
	if scorer == nil {
		scorer = rarityUsecase.NewScorer()
	}
	return &builder{scorer: scorer}
}

// ReportName is rarity_report_{stamp}[_{runId prefix}].csv
func ReportName(rc *domain.RunContext) string {
	return "rarity_report_" + nameStamp(rc) + ".csv"
}

// ArchiveName is nft_metadata_{stamp}[_{runId prefix}].zip
func ArchiveName(rc *domain.RunContext) string {
	return "nft_metadata_" + nameStamp(rc) + ".zip"
}

func nameStamp(rc *domain.RunContext) string {
	stamp := rc.ArtifactStamp()
	if rc.RunId == "" {
		return stamp
	}
	id := rc.RunId
	if len(id) > runIdSuffixLen {
		id = id[:runIdSuffixLen]
	}
	return stamp + "_" + id
}

// Build ranks the tokens and writes both artifacts. Tokens must be sorted by ascending id.
// Nothing is left on disk when an error is returned.
func (b *builder) Build(c ctx.Ctx, rc *domain.RunContext, tokens []*domain.Token, table *rarity.FrequencyTable) ([]*rarity.Record, []artifact.Artifact, error) {
	records := rarityUsecase.Records(tokens, table, b.scorer)

	if err := os.MkdirAll(rc.OutputDir, 0o755); err != nil {
		c.WithField("err", err).Error("os.MkdirAll failed")
		return nil, nil, err
	}

	reportPath := filepath.Join(rc.OutputDir, ReportName(rc))
	if err := writeReport(reportPath, records, table.Traits); err != nil {
		os.Remove(reportPath)
		c.WithFields(log.Fields{
			"path": reportPath,
			"err":  err,
		}).Error("writeReport failed")
		return nil, nil, err
	}

	archivePath := filepath.Join(rc.OutputDir, ArchiveName(rc))
	if err := writeArchive(archivePath, tokens, rc); err != nil {
		os.Remove(reportPath)
		os.Remove(archivePath)
		c.WithFields(log.Fields{
			"path": archivePath,
			"err":  err,
		}).Error("writeArchive failed")
		return nil, nil, err
	}

	artifacts := []artifact.Artifact{}
	for _, a := range []struct {
		kind artifact.Kind
		path string
	}{
		{artifact.KindReport, reportPath},
		{artifact.KindArchive, archivePath},
	} {
		res, err := describe(a.kind, a.path)
		if err != nil {
			os.Remove(reportPath)
			os.Remove(archivePath)
			c.WithFields(log.Fields{
				"path": a.path,
				"err":  err,
			}).Error("describe failed")
			return nil, nil, err
		}
		artifacts = append(artifacts, res)
	}

	c.WithFields(log.Fields{
		"rows":    len(records),
		"columns": len(report.LeadingColumns) + len(table.Traits),
		"report":  artifacts[0].Name,
		"archive": artifacts[1].Name,
	}).Info("report built")
	return records, artifacts, nil
}

func writeReport(path string, records []*rarity.Record, traits []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append(append([]string{}, report.LeadingColumns...), traits...)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		row := make([]string, 0, len(header))
		row = append(row, r.TokenId.String(), rarity.ScoreCell(r.Score), fmt.Sprint(r.Rank))
		for _, trait := range traits {
			row = append(row, r.Traits[trait])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Sync()
}

func writeArchive(path string, tokens []*domain.Token, rc *domain.RunContext) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, token := range tokens {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     token.Id.String() + ".json",
			Method:   zip.Deflate,
			Modified: rc.CreatedAt,
		})
		if err != nil {
			return xerrors.Errorf("failed to add %d.json: %w", token.Id, err)
		}
		if _, err := w.Write(token.Document); err != nil {
			return xerrors.Errorf("failed to write %d.json: %w", token.Id, err)
		}
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return f.Sync()
}

func describe(kind artifact.Kind, path string) (artifact.Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return artifact.Artifact{}, err
	}
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return artifact.Artifact{}, err
	}
	return artifact.Artifact{
		Kind:        kind,
		Name:        info.Name(),
		Path:        path,
		ContentType: mime.String(),
		Size:        info.Size(),
	}, nil
}
