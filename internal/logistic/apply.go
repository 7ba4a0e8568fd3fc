package logistic

import (
	"errors"
	"fmt"

	"github.com/born-ml/logistic/internal/parallel"
)

// ErrLengthMismatch is returned when destination and source slices differ in length.
var ErrLengthMismatch = errors.New("logistic: length mismatch")

// Apply writes σ(src[i]) into dst[i]. dst may alias src.
func Apply[F Float](dst, src []F, cfg parallel.Config) error {
	if len(dst) != len(src) {
		return fmt.Errorf("apply: dst has %d elements, src has %d: %w", len(dst), len(src), ErrLengthMismatch)
	}
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = F(sigmoid64(float64(src[i])))
		}
	}, cfg)
	return nil
}

// ApplyDerivative writes σ'(src[i]) into dst[i]. dst may alias src.
func ApplyDerivative[F Float](dst, src []F, cfg parallel.Config) error {
	if len(dst) != len(src) {
		return fmt.Errorf("apply derivative: dst has %d elements, src has %d: %w", len(dst), len(src), ErrLengthMismatch)
	}
	parallel.ForRange(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = F(derivative64(float64(src[i])))
		}
	}, cfg)
	return nil
}
