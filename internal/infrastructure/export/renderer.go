package export

import (
	"context"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
)

// DocumentRenderer renders a tabular document into an artifact
type DocumentRenderer interface {
	Render(ctx context.Context, doc *report.Document) (*report.Artifact, error)
}

// ChartRenderer renders dashboard chart regions into an artifact
type ChartRenderer interface {
	RenderCharts(ctx context.Context, req *report.ChartRequest) (*report.Artifact, error)
}

// Browser is the headless browser used for PDF printing and chart capture
type Browser interface {
	// PrintToPDF loads html into a blank page and prints it
	PrintToPDF(ctx context.Context, html string) ([]byte, error)
	// CaptureRegions opens pageURL and screenshots every element matching
	// each selector. Selectors that cannot be found within regionTimeout
	// are left out of the result.
	CaptureRegions(ctx context.Context, pageURL string, selectors []string, regionTimeout time.Duration) (map[string][]byte, error)
	Close() error
}

// RenderError represents an error during rendering
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for rendering failures
const (
	ErrCodeRenderTimeout = "RENDER_TIMEOUT"
	ErrCodeRenderFailed  = "RENDER_FAILED"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeBrowser       = "BROWSER_UNAVAILABLE"
)

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
