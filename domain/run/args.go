package run

import (
	"strconv"
	"strings"

	"github.com/x-xyz/rarity/domain"
)

// ParseArgs reads "<CID> <start_id> <end_id>". Only the shape and the integer
// bounds are checked here, a reversed range is accepted.
func ParseArgs(args []string) (Request, error) {
	if len(args) != 3 {
		return Request{}, domain.ErrInvalidUsage
	}
	start, err := strconv.ParseInt(strings.TrimSpace(args[1]), 10, 64)
	if err != nil {
		return Request{}, domain.ErrInvalidRange
	}
	end, err := strconv.ParseInt(strings.TrimSpace(args[2]), 10, 64)
	if err != nil {
		return Request{}, domain.ErrInvalidRange
	}
	return Request{
		Cid:   strings.TrimSpace(args[0]),
		Start: start,
		End:   end,
	}, nil
}
