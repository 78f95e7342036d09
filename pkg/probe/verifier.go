// verifier.go
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dj-ai/djfix/pkg/core"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is where the backend is expected to listen
	DefaultBaseURL = "http://localhost:8000"
	// DefaultSettleDelay gives an externally started server time to come up
	DefaultSettleDelay = 2 * time.Second
	// DefaultTimeout bounds each probe request
	DefaultTimeout = 5 * time.Second

	HealthPath  = "/health"
	FormatsPath = "/supported-formats"

	// UnknownFormats is logged when the formats field is absent
	UnknownFormats = "Unknown format"

	// StepName identifies the verifier in run reports
	StepName = "endpoints"
)

var (
	// ErrUnexpectedStatus is returned for any non-200 probe response
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrInvalidBaseURL is returned when the base URL cannot be probed
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// Probe is the outcome of one GET request
type Probe struct {
	Path       string
	StatusCode int    // 0 when the request never completed
	Formats    string // Only set for the formats probe
	Err        error
}

// OK reports whether the probe returned 200 and decoded cleanly
func (p Probe) OK() bool {
	return p.Err == nil && p.StatusCode == http.StatusOK
}

// Verifier probes the backend's read-only endpoints
type Verifier struct {
	BaseURL     string
	SettleDelay time.Duration

	client *Client
	logger *zap.Logger
}

// NewVerifier creates a verifier against DefaultBaseURL
func NewVerifier(logger *zap.Logger) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{
		BaseURL:     DefaultBaseURL,
		SettleDelay: DefaultSettleDelay,
		client:      NewClient(),
		logger:      logger.With(zap.String("step", StepName)),
	}
}

// Name returns the step name
func (v *Verifier) Name() string {
	return StepName
}

// Health probes the health endpoint
func (v *Verifier) Health(ctx context.Context) Probe {
	p := Probe{Path: HealthPath}

	resp, err := v.client.Get(ctx, v.BaseURL+HealthPath)
	if err != nil {
		p.Err = err
		return p
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	p.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		p.Err = fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return p
}

// SupportedFormats probes the formats endpoint and extracts its formats field
func (v *Verifier) SupportedFormats(ctx context.Context) Probe {
	p := Probe{Path: FormatsPath}

	resp, err := v.client.Get(ctx, v.BaseURL+FormatsPath)
	if err != nil {
		p.Err = err
		return p
	}

	p.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		p.Err = fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		return p
	}

	var body interface{}
	if err := DecodeJSON(resp, &body); err != nil {
		p.Err = err
		return p
	}
	p.Formats = extractFormats(body)
	return p
}

// Run implements core.Step. Both probes are always attempted.
func (v *Verifier) Run(ctx context.Context, out io.Writer) core.Result {
	if err := v.validateBaseURL(); err != nil {
		v.logger.Error("endpoint verification unavailable", zap.Error(err))
		fmt.Fprintf(out, "⚠️ HTTP client not available for endpoint verification: %v\n", err)
		return core.Skipped(StepName, err.Error())
	}

	fmt.Fprintln(out, "🔍 Verifying API endpoints...")
	defer v.client.CloseIdleConnections()

	if err := sleep(ctx, v.SettleDelay); err != nil {
		fmt.Fprintf(out, "❌ Error verifying endpoints: %v\n", err)
		return core.Failed(StepName, err)
	}

	health := v.Health(ctx)
	v.logProbe(health)
	switch {
	case health.OK():
		fmt.Fprintln(out, "✅ Health endpoint working")
	case health.StatusCode != 0:
		fmt.Fprintf(out, "⚠️ Health endpoint returned %d\n", health.StatusCode)
	default:
		fmt.Fprintf(out, "❌ Health endpoint failed: %v\n", health.Err)
	}

	formats := v.SupportedFormats(ctx)
	v.logProbe(formats)
	switch {
	case formats.OK():
		fmt.Fprintf(out, "✅ Supported formats: %s\n", formats.Formats)
	case formats.StatusCode != 0 && formats.StatusCode != http.StatusOK:
		fmt.Fprintf(out, "⚠️ Supported formats endpoint returned %d\n", formats.StatusCode)
	default:
		fmt.Fprintf(out, "❌ Supported formats endpoint failed: %v\n", formats.Err)
	}

	var failed []string
	for _, p := range []Probe{health, formats} {
		if !p.OK() {
			failed = append(failed, fmt.Sprintf("%s: %v", p.Path, p.Err))
		}
	}
	if len(failed) > 0 {
		return core.Failed(StepName, errors.New(strings.Join(failed, "; ")))
	}
	return core.Success(StepName, "formats: "+formats.Formats)
}

func (v *Verifier) validateBaseURL() error {
	u, err := url.Parse(v.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, v.BaseURL)
	}
	return nil
}

func (v *Verifier) logProbe(p Probe) {
	v.logger.Debug("probe finished",
		zap.String("path", p.Path),
		zap.Int("status", p.StatusCode),
		zap.Error(p.Err),
	)
}

// extractFormats renders the formats field of an object body, or the body
// itself when the endpoint returns a bare list.
func extractFormats(body interface{}) string {
	switch b := body.(type) {
	case map[string]interface{}:
		f, ok := b["formats"]
		if !ok {
			return UnknownFormats
		}
		return render(f)
	case []interface{}:
		return render(b)
	default:
		return UnknownFormats
	}
}

func render(v interface{}) string {
	list, ok := v.([]interface{})
	if !ok {
		return fmt.Sprint(v)
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, fmt.Sprint(item))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
