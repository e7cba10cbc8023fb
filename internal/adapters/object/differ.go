package object

import (
	"github.com/objdelta/objdelta/internal/core/domain"
	"github.com/objdelta/objdelta/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Differ = (*Differ)(nil)

// Differ pairs symbols by name and annotates both objects in place with
// byte-level match percentages. It is a deliberately simple default; the
// port exists so a real instruction-level engine can replace it.
type Differ struct{}

// NewDiffer creates the default differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff compares first against second and writes match annotations into
// both. Symbols without a counterpart on the other side stay unannotated.
func (d *Differ) Diff(first, second *domain.Object) error {
	if first == nil || second == nil {
		return zerr.With(zerr.Wrap(domain.ErrDiffFailed, "both objects are required"), "reason", "nil object")
	}

	var matched, total float64
	for i := range second.Symbols {
		target := &second.Symbols[i]
		base := first.FindSymbol(target.Name)
		if base == nil {
			continue
		}

		percent := matchPercent(base, target)
		base.MatchPercent = &percent
		target.MatchPercent = &percent

		weight := float64(max(len(base.Bytes), len(target.Bytes)))
		matched += percent / 100 * weight
		total += weight
	}

	overall := 100.0
	if total > 0 {
		overall = matched / total * 100
	}
	first.MatchPercent = overall
	second.MatchPercent = overall
	return nil
}

// matchPercent scores two symbols. Equal fingerprints with equal sizes
// short-circuit to a perfect match.
func matchPercent(a, b *domain.Symbol) float64 {
	if len(a.Bytes) == len(b.Bytes) && a.Fingerprint == b.Fingerprint {
		return 100
	}

	longest := max(len(a.Bytes), len(b.Bytes))
	if longest == 0 {
		return 100
	}

	shared := min(len(a.Bytes), len(b.Bytes))
	equal := 0
	for i := 0; i < shared; i++ {
		if a.Bytes[i] == b.Bytes[i] {
			equal++
		}
	}
	return float64(equal) / float64(longest) * 100
}
