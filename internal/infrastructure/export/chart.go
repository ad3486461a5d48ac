package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"html/template"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	defaultImageWidth    = 1200
	defaultRegionTimeout = 10 * time.Second
)

var chartKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

const chartTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 12mm; }
body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 10pt; color: #1f2933; }
section.title-page h1 { font-size: 20pt; margin: 0 0 8px 0; }
section.title-page p { margin: 0 0 4px 0; color: #52606d; }
section.title-page h2 { font-size: 12pt; margin: 16px 0 4px 0; }
section.chart { break-before: page; page-break-before: always; }
section.chart h2 { font-size: 12pt; margin: 0 0 8px 0; }
section.chart img { width: 100%; height: auto; }
</style>
</head>
<body>
<section class="title-page">
<h1>{{.Title}}</h1>
{{if .Company}}<p class="company">{{.Company}}</p>{{end}}
<p class="generated">Generated: {{.Generated}}</p>
<h2>Included charts</h2>
{{if .Charts}}<ul class="captured">{{range .Charts}}<li>{{.Label}}</li>{{end}}</ul>{{else}}<p>None</p>{{end}}
{{if .Skipped}}<h2>Unavailable charts</h2>
<ul class="skipped">{{range .Skipped}}<li>{{.}}</li>{{end}}</ul>{{end}}
</section>
{{range .Charts}}<section class="chart" data-chart-key="{{.Key}}">
<h2>{{.Label}}</h2>
<img src="{{.Src}}" alt="{{.Label}}">
</section>
{{end}}</body>
</html>
`

var chartTmpl = template.Must(template.New("charts").Parse(chartTemplate))

type chartImage struct {
	Key   string
	Label string
	Src   template.URL
}

type chartDocument struct {
	Lang      string
	Title     string
	Company   string
	Generated string
	Charts    []chartImage
	Skipped   []string
}

// ChartSnapshotConfig configures the chart snapshot renderer
type ChartSnapshotConfig struct {
	FrontendBaseURL string
	DashboardPath   string
	ImageWidth      int
	RegionTimeout   time.Duration
	Lang            string
}

// ChartSnapshotRenderer screenshots dashboard regions and prints them to a PDF,
// one chart per page after a title page.
type ChartSnapshotRenderer struct {
	browser   Browser
	formatter *Formatter
	config    ChartSnapshotConfig
	logger    *zap.Logger
	now       func() time.Time
}

var _ ChartRenderer = (*ChartSnapshotRenderer)(nil)

// NewChartSnapshotRenderer creates a ChartSnapshotRenderer
func NewChartSnapshotRenderer(browser Browser, formatter *Formatter, cfg ChartSnapshotConfig, logger *zap.Logger) *ChartSnapshotRenderer {
	if cfg.ImageWidth <= 0 {
		cfg.ImageWidth = defaultImageWidth
	}
	if cfg.RegionTimeout <= 0 {
		cfg.RegionTimeout = defaultRegionTimeout
	}
	if cfg.Lang == "" {
		cfg.Lang = "en"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartSnapshotRenderer{
		browser:   browser,
		formatter: formatter,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// DashboardURL joins the frontend base URL and the dashboard path
func (r *ChartSnapshotRenderer) DashboardURL() (string, error) {
	base, err := url.Parse(r.config.FrontendBaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", NewRenderError(ErrCodeInvalidInput, "invalid frontend base url", err)
	}
	path := r.config.DashboardPath
	if path == "" {
		return base.String(), nil
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(base.String(), "/") + path, nil
}

// RenderCharts captures every requested region. Regions that cannot be
// captured are listed in Artifact.Skipped and on the title page.
func (r *ChartSnapshotRenderer) RenderCharts(ctx context.Context, req *report.ChartRequest) (*report.Artifact, error) {
	if req == nil {
		return nil, NewRenderError(ErrCodeInvalidInput, "chart request is nil", nil)
	}
	if len(req.Regions) == 0 {
		return nil, NewRenderError(ErrCodeInvalidInput, "no chart regions requested", nil)
	}
	selectors := make([]string, len(req.Regions))
	for i, region := range req.Regions {
		if !chartKeyPattern.MatchString(region.Key) {
			return nil, NewRenderError(ErrCodeInvalidInput, "invalid chart key "+region.Key, nil)
		}
		selectors[i] = regionSelector(region.Key)
	}

	pageURL, err := r.DashboardURL()
	if err != nil {
		return nil, err
	}

	shots, err := r.browser.CaptureRegions(ctx, pageURL, selectors, r.config.RegionTimeout)
	if err != nil {
		return nil, err
	}

	generatedAt := req.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = r.now()
	}
	view := chartDocument{
		Lang:      r.config.Lang,
		Title:     req.Title,
		Company:   req.CompanyName,
		Generated: r.formatter.Timestamp(generatedAt),
	}
	var skipped []string
	for i, region := range req.Regions {
		label := region.Label
		if label == "" {
			label = Title(region.Key)
		}
		raw, ok := shots[selectors[i]]
		if !ok || len(raw) == 0 {
			r.logger.Warn("chart region not captured, skipping",
				zap.String("chart_key", region.Key),
				zap.String("url", pageURL))
			skipped = append(skipped, region.Key)
			view.Skipped = append(view.Skipped, label)
			continue
		}
		src, err := r.normalize(raw)
		if err != nil {
			r.logger.Warn("chart image could not be decoded, skipping",
				zap.String("chart_key", region.Key),
				zap.Error(err))
			skipped = append(skipped, region.Key)
			view.Skipped = append(view.Skipped, label)
			continue
		}
		view.Charts = append(view.Charts, chartImage{Key: region.Key, Label: label, Src: src})
	}

	var buf bytes.Buffer
	if err := chartTmpl.Execute(&buf, view); err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "template execution failed", err)
	}
	pdf, err := r.browser.PrintToPDF(ctx, buf.String())
	if err != nil {
		return nil, err
	}

	return &report.Artifact{
		Filename:    r.formatter.Filename(req.ReportType, report.FormatChartSnapshot, generatedAt),
		ContentType: report.FormatChartSnapshot.ContentType(),
		Format:      report.FormatChartSnapshot,
		ReportType:  req.ReportType,
		Data:        pdf,
		Skipped:     skipped,
	}, nil
}

// normalize scales a screenshot to the configured width and returns it as a data URL
func (r *ChartSnapshotRenderer) normalize(raw []byte) (template.URL, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	if img.Bounds().Dx() != r.config.ImageWidth {
		img = imaging.Resize(img, r.config.ImageWidth, 0, imaging.Lanczos)
	}
	var out bytes.Buffer
	if err := imaging.Encode(&out, img, imaging.PNG); err != nil {
		return "", err
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(out.Bytes())), nil
}

func regionSelector(key string) string {
	return `[data-chart-key="` + key + `"]`
}
