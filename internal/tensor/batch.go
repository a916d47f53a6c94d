package tensor

import (
	"github.com/hearth-ml/hearth/internal/host"
	"github.com/hearth-ml/hearth/internal/parallel"
)

// ConvertAll converts independent COO tensors concurrently. Each conversion
// reads only its own input and writes only its own freshly allocated output,
// so workers need no coordination. Results are positionally aligned with
// tensors, each already resolved when ConvertAll returns.
func ConvertAll(tensors []*COO, h *host.Context, allowed FormatMask, cfg parallel.Config) []*host.AsyncValue[HostTensor] {
	results := make([]*host.AsyncValue[HostTensor], len(tensors))
	parallel.For(len(tensors), func(i int) {
		results[i] = tensors[i].ConvertToHostTensor(h, allowed)
	}, cfg)
	return results
}
