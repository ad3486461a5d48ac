package export

import (
	"context"
	"time"
)

// fakeBrowser records the HTML it is asked to print and serves canned
// screenshots keyed by selector
type fakeBrowser struct {
	printed    []string
	printErr   error
	shots      map[string][]byte
	captureErr error
	pageURL    string
	selectors  []string
}

func (f *fakeBrowser) PrintToPDF(_ context.Context, html string) ([]byte, error) {
	if f.printErr != nil {
		return nil, f.printErr
	}
	f.printed = append(f.printed, html)
	return []byte("%PDF-1.4 fake"), nil
}

func (f *fakeBrowser) CaptureRegions(_ context.Context, pageURL string, selectors []string, _ time.Duration) (map[string][]byte, error) {
	f.pageURL = pageURL
	f.selectors = selectors
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	out := make(map[string][]byte)
	for _, s := range selectors {
		if b, ok := f.shots[s]; ok {
			out[s] = b
		}
	}
	return out, nil
}

func (f *fakeBrowser) Close() error { return nil }

func (f *fakeBrowser) lastHTML() string {
	if len(f.printed) == 0 {
		return ""
	}
	return f.printed[len(f.printed)-1]
}
