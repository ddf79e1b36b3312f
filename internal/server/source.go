package server

import (
	"context"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// Converter renders one CV. *cv2pdf.Converter satisfies it.
type Converter interface {
	Convert(ctx context.Context, input cv2pdf.Input) (*cv2pdf.ConvertResult, error)
}

// Source lends converters to request handlers.
type Source interface {
	Acquire(ctx context.Context) (Converter, error)
	Release(Converter)
}

// PoolSource adapts a cv2pdf.ConverterPool to Source.
type PoolSource struct {
	Pool *cv2pdf.ConverterPool
}

func (s PoolSource) Acquire(ctx context.Context) (Converter, error) {
	conv, err := s.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return conv, nil
}

func (s PoolSource) Release(c Converter) {
	if conv, ok := c.(*cv2pdf.Converter); ok {
		s.Pool.Release(conv)
	}
}
