package services

import (
	"errors"
	"fmt"
	"time"

	"dna-sequence-pro/internal/logger"
	"dna-sequence-pro/internal/models"
	"dna-sequence-pro/internal/sequence"
)

// ErrEmptySequence is returned when the input holds no characters after
// normalization. Callers treat it as a no-op.
var ErrEmptySequence = errors.New("sequence is empty")

// TransformService runs sequence operations for the window and records
// their results on the document.
type TransformService struct {
	doc       *models.SequenceDocument
	logger    logger.Logger
	transform func(string) string
	now       func() time.Time
}

// Option configures a TransformService.
type Option func(*TransformService)

// WithTransform replaces the sequence transform, which defaults to
// sequence.ReverseComplement.
func WithTransform(fn func(string) string) Option {
	return func(ts *TransformService) {
		if fn != nil {
			ts.transform = fn
		}
	}
}

// NewTransformService creates a service backed by doc.
func NewTransformService(doc *models.SequenceDocument, log logger.Logger, opts ...Option) *TransformService {
	ts := &TransformService{
		doc:       doc,
		logger:    log,
		transform: sequence.ReverseComplement,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// Transform computes the reverse complement of raw. A panic raised while
// transforming is recovered and returned as an error.
func (ts *TransformService) Transform(raw string) (result *models.TransformResult, err error) {
	ts.doc.SetInput(raw)

	if sequence.Normalize(raw) == "" {
		return nil, ErrEmptySequence
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform failed: %v", r)
			result = nil
		}
		if err != nil {
			ts.doc.SetError(err)
			ts.logger.Error("TransformService", err, map[string]interface{}{
				"input_length": len(raw),
			})
		}
	}()

	output := ts.transform(raw)
	result = &models.TransformResult{
		Input:     raw,
		Output:    output,
		Stats:     sequence.Analyze(raw),
		Timestamp: ts.now(),
	}
	ts.doc.SetResult(result)

	ts.logger.Debug("TransformService", "reverse complement computed", map[string]interface{}{
		"length":     result.Stats.Length,
		"gc_content": result.Stats.GCContent,
		"unknown":    result.Stats.Unknown,
	})
	return result, nil
}

// BatchInsert inserts char repeated count times into buffer at the rune
// offset. It reports false, leaving buffer untouched, when char or count
// is invalid.
func (ts *TransformService) BatchInsert(buffer, char, count string, offset int) (string, bool) {
	text, err := sequence.Repeat(char, count)
	if err != nil {
		ts.logger.Debug("TransformService", "batch insert ignored", map[string]interface{}{
			"reason": err.Error(),
		})
		return buffer, false
	}
	return sequence.InsertAt(buffer, text, offset), true
}
