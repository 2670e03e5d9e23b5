package normalizer

import (
	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// NFKCFoldingNormalizer applies NFKC compatibility folding before the
// mapping-table decision, collapsing mathematical/stylistic variants
// (fullwidth letters, circled letters, bold alphabets) onto their plain
// equivalents first. Folding changes which runes reach the table, so it is
// opt-in rather than part of the default pipeline.
type NFKCFoldingNormalizer struct {
	next ports.Normalizer
}

// NewNFKCFoldingNormalizer wraps next with an NFKC pre-fold.
func NewNFKCFoldingNormalizer(next ports.Normalizer) ports.Normalizer {
	return &NFKCFoldingNormalizer{next: next}
}

// Normalize folds text to NFKC and delegates to the wrapped normalizer.
func (n *NFKCFoldingNormalizer) Normalize(text string) string {
	return n.next.Normalize(norm.NFKC.String(text))
}
