// Package httpsrv serves the generator over HTTP: JSON generation, report
// download, a websocket value stream and Prometheus metrics.
package httpsrv

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"

	"github.com/tutils/lcgen/lcg"
	"github.com/tutils/lcgen/report"
)

const maxBodyBytes = 4 << 10

// APIResponse 定义统一的API响应格式
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Field   string      `json:"field,omitempty"`
}

// GenerateData is the payload of a successful generation.
type GenerateData struct {
	Params  lcg.Raw `json:"params"`
	Values  []int64 `json:"values"`
	Period  int     `json:"period"`
	Found   bool    `json:"periodFound"`
	Horizon int     `json:"horizon"`
}

// PresetData describes one named parameter set.
type PresetData struct {
	Name   string  `json:"name"`
	Params lcg.Raw `json:"params"`
}

// StatsData reports emitted value totals.
type StatsData struct {
	ValuesTotal  int64 `json:"valuesTotal"`
	ValuesPerSec int64 `json:"valuesPerSec"`
}

// Server is the HTTP front end of the generator.
type Server struct {
	opts    Options
	log     *logan.Entry
	metrics *metrics
	mux     *http.ServeMux
	srv     *http.Server

	// one generation in flight at a time
	gate sync.Mutex
}

// NewServer creates a server, routes are registered on a private mux.
func NewServer(opts ...Option) *Server {
	opt := newOptions(opts...)

	s := &Server{
		opts:    *opt,
		log:     opt.log.WithField("service", "httpsrv"),
		metrics: newMetrics(opt.registerer),
		mux:     http.NewServeMux(),
	}

	// 设置路由
	s.mux.HandleFunc("/api/generate", s.handleGenerate)
	s.mux.HandleFunc("/api/report", s.handleReport)
	s.mux.HandleFunc("/api/presets", s.handlePresets)
	s.mux.HandleFunc("/api/stats", s.handleStats)
	s.mux.HandleFunc("/api/stream", s.handleStream)
	s.mux.Handle("/metrics", promhttp.HandlerFor(opt.gatherer, promhttp.HandlerOpts{}))

	s.srv = &http.Server{
		Addr:    opt.addr,
		Handler: s.mux,
	}
	return s
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.log.WithField("addr", s.opts.addr).Info("starting http server")
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return errors.Wrap(err, "http server failed", logan.F{"addr": s.opts.addr})
}

// Shutdown stops accepting requests and waits for active ones.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// readRaw takes parameters from a JSON body on POST, or from the query/form otherwise.
func readRaw(r *http.Request) (lcg.Raw, error) {
	var raw lcg.Raw
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if r.Method == http.MethodPost && ct == "application/json" {
		dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
		if err := dec.Decode(&raw); err != nil {
			return raw, errors.Wrap(err, "failed to decode request body")
		}
		return raw, nil
	}

	if err := r.ParseForm(); err != nil {
		return raw, errors.Wrap(err, "failed to parse form")
	}
	raw.Modulus = r.Form.Get("modulus")
	raw.Multiplier = r.Form.Get("multiplier")
	raw.Increment = r.Form.Get("increment")
	raw.Seed = r.Form.Get("seed")
	raw.Count = r.Form.Get("count")
	return raw, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	resp := APIResponse{Success: false, Error: err.Error()}
	if verr, ok := err.(*lcg.ValidationError); ok {
		resp.Field = verr.Field
	}
	s.writeJSON(w, status, resp)
}

func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

// params reads and validates the request parameters, answering the client
// itself when they are unusable.
func (s *Server) params(w http.ResponseWriter, r *http.Request) (lcg.Params, bool) {
	log := s.log.WithField("remote", r.RemoteAddr)

	raw, err := readRaw(r)
	if err != nil {
		log.WithError(err).Debug("bad request")
		s.metrics.runs.WithLabelValues(outcomeInvalid).Inc()
		s.writeError(w, http.StatusBadRequest, err)
		return lcg.Params{}, false
	}

	p, err := lcg.Validate(raw)
	if err != nil {
		log.WithError(err).Debug("rejected parameters")
		s.metrics.runs.WithLabelValues(outcomeInvalid).Inc()
		s.writeError(w, http.StatusBadRequest, err)
		return lcg.Params{}, false
	}
	return p, true
}

// acquire takes the generation gate or answers 409.
func (s *Server) acquire(w http.ResponseWriter) bool {
	if !s.gate.TryLock() {
		s.metrics.runs.WithLabelValues(outcomeBusy).Inc()
		s.writeJSON(w, http.StatusConflict, APIResponse{Success: false, Error: "a generation is already running"})
		return false
	}
	return true
}

func (s *Server) record(n int, period int) {
	s.metrics.runs.WithLabelValues(outcomeOK).Inc()
	s.metrics.values.Add(float64(n))
	if period != lcg.PeriodNotFound {
		s.metrics.period.Observe(float64(period))
	}
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) (lcg.Params, lcg.Result, bool) {
	p, ok := s.params(w, r)
	if !ok {
		return p, lcg.Result{}, false
	}
	if !s.acquire(w) {
		return p, lcg.Result{}, false
	}
	defer s.gate.Unlock()

	res := lcg.Generate(p)
	s.opts.throughput.Add(int64(len(res.Values)))
	s.record(len(res.Values), res.Period)
	s.log.WithFields(logan.F{
		"remote": r.RemoteAddr,
		"params": p.String(),
		"period": res.Period,
	}).Debug("generated")
	return p, res, true
}

// handleGenerate 生成序列
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	p, res, ok := s.generate(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: GenerateData{
			Params:  p.Raw(),
			Values:  res.Values,
			Period:  res.Period,
			Found:   res.PeriodFound(),
			Horizon: lcg.DetectionHorizon(p),
		},
	})
}

// handleReport 下载文本报告
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodPost) {
		return
	}
	p, res, ok := s.generate(w, r)
	if !ok {
		return
	}

	rep := report.New(p, res, s.opts.now())
	buf := &bytes.Buffer{}
	if err := report.Write(buf, rep); err != nil {
		s.log.WithError(err).Error("failed to render report")
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": report.FileName(rep.GeneratedAt),
	}))
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.WithError(err).Warn("failed to send report")
	}
}

// handlePresets 列出预设参数
func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	names := lcg.PresetNames()
	presets := make([]PresetData, 0, len(names))
	for _, name := range names {
		p, _ := lcg.Preset(name)
		presets = append(presets, PresetData{Name: name, Params: p.Raw()})
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: presets})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: StatsData{
			ValuesTotal:  s.opts.throughput.Value(),
			ValuesPerSec: s.opts.throughput.RatePerSec(),
		},
	})
}
