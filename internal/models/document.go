package models

import (
	"sync"
	"time"

	"dna-sequence-pro/internal/sequence"
)

// TransformResult is the outcome of one reverse complement run.
type TransformResult struct {
	Input     string
	Output    string
	Stats     sequence.Stats
	Timestamp time.Time
}

// SequenceDocument tracks the latest input and result shown in the
// window.
type SequenceDocument struct {
	mu        sync.RWMutex
	input     string
	result    *TransformResult
	lastError error
	runs      int
}

// NewSequenceDocument creates a document seeded with input.
func NewSequenceDocument(input string) *SequenceDocument {
	return &SequenceDocument{input: input}
}

func (d *SequenceDocument) SetInput(input string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.input = input
}

func (d *SequenceDocument) Input() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.input
}

// SetResult records a successful transform and clears the last error.
func (d *SequenceDocument) SetResult(result *TransformResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.result = result
	d.lastError = nil
	d.runs++
}

// SetError records a failed transform. The previous result is dropped.
func (d *SequenceDocument) SetError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.result = nil
	d.lastError = err
}

func (d *SequenceDocument) Result() *TransformResult {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.result
}

func (d *SequenceDocument) LastError() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastError
}

// Runs is the number of successful transforms.
func (d *SequenceDocument) Runs() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.runs
}
