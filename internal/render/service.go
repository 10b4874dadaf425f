// Trackviz - Request Tracking Analytics Charts
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trackviz

package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/trackviz/internal/cache"
	"github.com/tomtom215/trackviz/internal/charts"
	"github.com/tomtom215/trackviz/internal/logging"
	"github.com/tomtom215/trackviz/internal/metrics"
	"github.com/tomtom215/trackviz/internal/models"
)

const cacheName = "render"

// Options configure a Service.
type Options struct {
	// CacheSize is the number of outputs kept. Zero disables caching.
	CacheSize int
	CacheTTL  time.Duration

	// PNGRate is the sustained PNG renders per second, PNGBurst the burst
	// size. A zero rate disables throttling.
	PNGRate  float64
	PNGBurst int

	// Timeout bounds one render. Zero means no bound beyond the caller's
	// context.
	Timeout time.Duration

	Interactive InteractiveOptions
}

// Request asks for one chart.
type Request struct {
	Chart   Chart
	Format  Format
	Payload []byte
}

// Result is an encoded chart.
type Result struct {
	Chart       Chart  `json:"chart"`
	Format      Format `json:"format"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"-"`
	// Skipped counts input records dropped during parsing.
	Skipped int  `json:"skipped"`
	Cached  bool `json:"cached"`
}

// DashboardRequest asks for every chart on one page. Omitted payloads leave
// their chart out.
type DashboardRequest struct {
	Devices   json.RawMessage `json:"devices,omitempty"`
	Requests  json.RawMessage `json:"requests,omitempty"`
	Countries json.RawMessage `json:"countries,omitempty"`
	Filters   Filters         `json:"filters"`
	// Format is html or json.
	Format Format `json:"format,omitempty"`
}

// Service renders charts, caching encoded output and throttling PNG
// rasterisation.
type Service struct {
	opts    Options
	cache   *cache.LRU[Result]
	limiter *rate.Limiter
}

// NewService creates a Service.
func NewService(opts Options) *Service {
	s := &Service{opts: opts}
	if opts.CacheSize > 0 {
		s.cache = cache.NewLRU[Result](opts.CacheSize, opts.CacheTTL)
	}
	if opts.PNGRate > 0 {
		burst := opts.PNGBurst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.PNGRate), burst)
	}
	return s
}

// Render parses the payload, lays out the chart and encodes it.
//
// Errors wrap ErrUnknownChart, ErrUnsupportedFormat, a
// *models.PayloadParseError, ErrThrottled when no PNG slot frees up before
// the deadline, or the context error once Options.Timeout has passed.
func (s *Service) Render(ctx context.Context, req Request) (Result, error) {
	if !req.Chart.valid() {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownChart, req.Chart)
	}
	if !req.Format.valid() || !req.Chart.Supports(req.Format) {
		metrics.RecordRender(string(req.Chart), string(req.Format), metrics.OutcomeUnsupported, 0, 0)
		return Result{}, fmt.Errorf("%w: %s chart cannot be drawn as %s", ErrUnsupportedFormat, req.Chart, req.Format)
	}

	key := cache.Key([]byte(req.Chart), []byte(req.Format), req.Payload)
	if res, ok := s.lookup(key); ok {
		metrics.RecordRender(string(req.Chart), string(req.Format), metrics.OutcomeCached, 0, len(res.Body))
		return res, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	res, err := s.render(ctx, req)
	if err != nil {
		outcome := metrics.OutcomeError
		if models.IsPayloadParseError(err) {
			outcome = metrics.OutcomeBadPayload
		}
		metrics.RecordRender(string(req.Chart), string(req.Format), outcome, 0, 0)
		logging.Ctx(ctx).Warn().Err(err).
			Str("component", "render").
			Str("chart", string(req.Chart)).
			Str("format", string(req.Format)).
			Msg("Chart render failed")
		return Result{}, err
	}

	elapsed := time.Since(start)
	metrics.RecordRender(string(req.Chart), string(req.Format), metrics.OutcomeOK, elapsed, len(res.Body))
	metrics.RecordSkipped(string(req.Chart), res.Skipped)
	s.store(key, res)

	logging.Ctx(ctx).Debug().
		Str("chart", string(req.Chart)).
		Str("format", string(req.Format)).
		Int("bytes", len(res.Body)).
		Int("skipped", res.Skipped).
		Dur("elapsed", elapsed).
		Msg("Rendered chart")
	return res, nil
}

func (s *Service) render(ctx context.Context, req Request) (Result, error) {
	layout, skipped, err := Layout(req.Chart, req.Payload)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("lay out %s: %w", req.Chart, err)
	}

	if req.Format == FormatPNG {
		if err := s.waitPNG(ctx); err != nil {
			return Result{}, err
		}
	}

	var buf bytes.Buffer
	if err := s.encode(&buf, req.Format, layout); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("encode %s as %s: %w", req.Chart, req.Format, err)
	}
	return Result{
		Chart:       req.Chart,
		Format:      req.Format,
		ContentType: req.Format.ContentType(),
		Body:        buf.Bytes(),
		Skipped:     skipped,
	}, nil
}

func (s *Service) encode(buf *bytes.Buffer, format Format, layout interface{}) error {
	if format == FormatJSON {
		return json.NewEncoder(buf).Encode(layout)
	}

	switch c := layout.(type) {
	case charts.DeviceBarChart:
		if format == FormatHTML {
			return renderHTML(buf, DeviceBar(c, s.opts.Interactive))
		}
		return DrawDeviceBarChart(buf, format, c)
	case charts.RequestsAreaChart:
		if format == FormatHTML {
			return renderHTML(buf, RequestsArea(c, s.opts.Interactive))
		}
		return DrawRequestsAreaChart(buf, format, c)
	case charts.WorldMap:
		if format == FormatHTML {
			return renderHTML(buf, WorldMap(c, s.opts.Interactive))
		}
	}
	return fmt.Errorf("%w: %T as %s", ErrUnsupportedFormat, layout, format)
}

// Layout parses a chart payload and lays the chart out. It also returns the
// number of records skipped while parsing.
func Layout(chart Chart, payload []byte) (layout interface{}, skipped int, err error) {
	switch chart {
	case ChartDevices:
		stats, err := models.ParseDevices(payload)
		if err != nil {
			return nil, 0, err
		}
		return charts.BuildDeviceBarChart(stats), 0, nil
	case ChartRequests:
		series, err := models.ParseRequests(payload)
		if err != nil {
			return nil, 0, err
		}
		return charts.BuildRequestsAreaChart(series), len(series.Skipped), nil
	case ChartCountries:
		stats, err := models.ParseCountries(payload)
		if err != nil {
			return nil, 0, err
		}
		return charts.BuildWorldMap(stats), 0, nil
	}
	return nil, 0, fmt.Errorf("%w: %q", ErrUnknownChart, chart)
}

// Dashboard renders every supplied chart not made redundant by the filters
// onto one HTML page, or returns the layouts as JSON. It returns
// ErrEmptyDashboard when the filters drop every supplied chart.
func (s *Service) Dashboard(ctx context.Context, req DashboardRequest) (Result, error) {
	format := req.Format
	if format == "" {
		format = FormatHTML
	}
	if format != FormatHTML && format != FormatJSON {
		return Result{}, fmt.Errorf("%w: dashboard cannot be drawn as %s", ErrUnsupportedFormat, format)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	filters := req.Filters
	var d Dashboard
	skipped := 0

	if len(req.Devices) > 0 && filters.DeviceType == "" {
		stats, err := models.ParseDevices(req.Devices)
		if err != nil {
			return Result{}, err
		}
		c := charts.BuildDeviceBarChart(stats)
		d.Devices = &c
	}
	if len(req.Requests) > 0 {
		series, err := models.ParseRequests(req.Requests)
		if err != nil {
			return Result{}, err
		}
		c := charts.BuildRequestsAreaChart(series)
		d.Requests = &c
		skipped += len(series.Skipped)
	}
	if len(req.Countries) > 0 && filters.Country == "" {
		stats, err := models.ParseCountries(req.Countries)
		if err != nil {
			return Result{}, err
		}
		c := charts.BuildWorldMap(stats)
		d.Countries = &c
	}
	d = filters.Apply(d)
	if d.Empty() {
		return Result{}, ErrEmptyDashboard
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("lay out dashboard: %w", err)
	}
	metrics.RecordSkipped("dashboard", skipped)

	var buf bytes.Buffer
	if format == FormatJSON {
		if err := json.NewEncoder(&buf).Encode(d); err != nil {
			return Result{}, fmt.Errorf("encode dashboard: %w", err)
		}
	} else if err := DrawDashboard(&buf, d, s.opts.Interactive); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("encode dashboard: %w", err)
	}

	logging.Ctx(ctx).Debug().
		Bool("devices", d.Devices != nil).
		Bool("requests", d.Requests != nil).
		Bool("countries", d.Countries != nil).
		Int("skipped", skipped).
		Msg("Rendered dashboard")

	return Result{
		Format:      format,
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
		Skipped:     skipped,
	}, nil
}

// ClearCache drops every cached output.
func (s *Service) ClearCache() {
	if s.cache != nil {
		s.cache.Clear()
		metrics.RecordCacheStore(cacheName, 0, false)
	}
}

// CacheStats reports cache counters; the zero value when caching is off.
func (s *Service) CacheStats() cache.Stats {
	if s.cache == nil {
		return cache.Stats{}
	}
	return s.cache.Stats()
}

// CleanupExpired drops expired cache entries.
func (s *Service) CleanupExpired() int {
	if s.cache == nil {
		return 0
	}
	n := s.cache.CleanupExpired()
	metrics.RecordCacheStore(cacheName, s.cache.Len(), false)
	return n
}

func (s *Service) lookup(key uint64) (Result, bool) {
	if s.cache == nil {
		return Result{}, false
	}
	res, ok := s.cache.Get(key)
	metrics.RecordCacheLookup(cacheName, ok)
	if ok {
		res.Cached = true
	}
	return res, ok
}

func (s *Service) store(key uint64, res Result) {
	if s.cache == nil {
		return
	}
	evicted := s.cache.Add(key, res)
	metrics.RecordCacheStore(cacheName, s.cache.Len(), evicted)
}

func (s *Service) waitPNG(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	start := time.Now()
	err := s.limiter.Wait(ctx)
	metrics.RecordThrottleWait(time.Since(start))
	if err != nil {
		// Wait also fails early when the limiter predicts a miss; only that
		// case is throttling. An expired context is reported as-is.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("wait for png render slot: %w", ctxErr)
		}
		return fmt.Errorf("wait for png render slot: %w", errors.Join(ErrThrottled, err))
	}
	return nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.Timeout)
}

// FilenameFor is the suggested download name of a rendered chart.
func FilenameFor(chart Chart, format Format) string {
	return string(chart) + "." + format.Extension()
}

// SkippedHeader carries Result.Skipped in HTTP responses.
const SkippedHeader = "X-Skipped-Records"

// SkippedValue formats Result.Skipped for SkippedHeader.
func SkippedValue(n int) string {
	return strconv.Itoa(n)
}
