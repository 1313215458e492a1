package repository

import (
	"io"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/x-xyz/rarity/base/ctx"
	"github.com/x-xyz/rarity/base/log"
	"github.com/x-xyz/rarity/domain"
)

type ipfsNodeReaderRepo struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

// NewIpfsNodeReaderRepo reads through the api of an ipfs node. It is used as the
// last source, after the public gateways.
func NewIpfsNodeReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.MetadataReaderRepository {
	return &ipfsNodeReaderRepo{shell: s, ctxTimeout: timeout}
}

func (r *ipfsNodeReaderRepo) Name() string {
	return "ipfs-node"
}

func (r *ipfsNodeReaderRepo) Get(c ctx.Ctx, path string) ([]byte, error) {
	ctx, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	resp, err := r.shell.Request("cat", path).Send(ctx)
	if err != nil {
		c.WithFields(log.Fields{"path": path, "err": err}).Debug("shell.Request failed")
		return nil, err
	}
	defer resp.Close()
	if resp.Error != nil {
		c.WithFields(log.Fields{"path": path, "resp.Error": resp.Error}).Debug("shell.Request failed")
		return nil, resp.Error
	}
	return io.ReadAll(io.LimitReader(resp.Output, maxDocumentSize))
}
