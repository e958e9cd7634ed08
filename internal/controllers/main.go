package controllers

import (
	"errors"
	"fmt"
	"sync"

	"dna-sequence-pro/internal/logger"
	"dna-sequence-pro/internal/models"
	"dna-sequence-pro/internal/sequence"
	"dna-sequence-pro/internal/services"
)

// Event names emitted by the controller.
const (
	EventSequenceTransformed = "sequence_transformed"
	EventTransformFailed     = "transform_failed"
	EventBatchInserted       = "batch_inserted"
)

// View is the part of the main window the controller drives.
type View interface {
	SetRunHandler(handler func(raw string))
	SetInsertHandler(handler func(char, count string))
	Input() string
	SetInput(text string)
	CursorOffset() int
	SetOutput(text string)
	FocusInput()
	UpdateStatus(status string)
	SetStats(stats sequence.Stats)
}

// EventHandler represents a function that handles application events
type EventHandler func(data interface{}) error

// MainController connects the window to the transform service. Its
// methods run on the UI event loop.
type MainController struct {
	service *services.TransformService
	doc     *models.SequenceDocument
	logger  logger.Logger

	mainView View

	// Event handlers
	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// NewMainController creates a new main controller
func NewMainController(service *services.TransformService, doc *models.SequenceDocument, log logger.Logger) *MainController {
	controller := &MainController{
		service:       service,
		doc:           doc,
		logger:        log,
		eventHandlers: make(map[string][]EventHandler),
	}

	controller.initializeEventHandlers()
	return controller
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

// RunReverseComplement transforms raw and shows the result. Empty input
// is ignored; a failed transform replaces the output with the error text.
func (mc *MainController) RunReverseComplement(raw string) {
	if mc.mainView == nil {
		return
	}

	result, err := mc.service.Transform(raw)
	switch {
	case errors.Is(err, services.ErrEmptySequence):
		return
	case err != nil:
		mc.mainView.SetOutput(fmt.Sprintf("Error: %s", err))
		mc.mainView.UpdateStatus("Transform failed")
		mc.emitEvent(EventTransformFailed, err)
		return
	}

	mc.mainView.SetOutput(result.Output)
	mc.mainView.SetStats(result.Stats)
	mc.mainView.UpdateStatus("Reverse complement computed")
	mc.emitEvent(EventSequenceTransformed, result)
}

// InsertBatch inserts char repeated count times at the input cursor.
// Invalid fields are silently ignored.
func (mc *MainController) InsertBatch(char, count string) {
	if mc.mainView == nil {
		return
	}

	buffer := mc.mainView.Input()
	updated, ok := mc.service.BatchInsert(buffer, char, count, mc.mainView.CursorOffset())
	if !ok {
		return
	}

	mc.mainView.SetInput(updated)
	mc.mainView.FocusInput()
	mc.emitEvent(EventBatchInserted, map[string]interface{}{
		"char":  char,
		"count": count,
	})
}

// OnEvent registers handler for eventType.
func (mc *MainController) OnEvent(eventType string, handler EventHandler) {
	mc.addEventListener(eventType, handler)
}

// initializeEventHandlers sets up default event handlers
func (mc *MainController) initializeEventHandlers() {
	mc.addEventListener(EventSequenceTransformed, mc.onSequenceTransformed)
	mc.addEventListener(EventTransformFailed, mc.onTransformFailed)
}

// setupViewEventHandlers connects view events to controller methods
func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetRunHandler(mc.RunReverseComplement)
	mc.mainView.SetInsertHandler(mc.InsertBatch)
}

// addEventListener adds an event handler for a specific event type
func (mc *MainController) addEventListener(eventType string, handler EventHandler) {
	mc.eventMu.Lock()
	defer mc.eventMu.Unlock()

	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

// emitEvent runs all handlers for eventType in registration order
func (mc *MainController) emitEvent(eventType string, data interface{}) {
	mc.eventMu.RLock()
	handlers := mc.eventHandlers[eventType]
	mc.eventMu.RUnlock()

	for _, h := range handlers {
		if err := h(data); err != nil {
			mc.logger.Error("MainController", err, map[string]interface{}{
				"event": eventType,
			})
		}
	}
}

// onSequenceTransformed logs the completed transform
func (mc *MainController) onSequenceTransformed(data interface{}) error {
	result, ok := data.(*models.TransformResult)
	if !ok {
		return fmt.Errorf("invalid data type for %s event", EventSequenceTransformed)
	}

	mc.logger.Info("MainController", "sequence transformed", map[string]interface{}{
		"length": result.Stats.Length,
		"runs":   mc.doc.Runs(),
	})
	return nil
}

// onTransformFailed logs the failure kept on the document
func (mc *MainController) onTransformFailed(data interface{}) error {
	err, ok := data.(error)
	if !ok {
		return fmt.Errorf("invalid data type for %s event", EventTransformFailed)
	}

	mc.logger.Warning("MainController", "transform failed", map[string]interface{}{
		"error": err.Error(),
	})
	return nil
}

// Shutdown drops the view so late callbacks become no-ops
func (mc *MainController) Shutdown() {
	mc.mainView = nil
	mc.logger.Debug("MainController", "controller shut down", nil)
}
