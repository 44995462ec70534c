// Package uberdirect - клиент Uber Direct (DaaS) API.
//
// Клиент не хранит состояния между вызовами: токен и customer id передаются
// в каждый вызов через Credentials, ретраев и кеша нет. Один *Client можно
// безопасно использовать из нескольких горутин.
package uberdirect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"
	"uberdirect/pkg/logger"
	"uberdirect/pkg/uberdirect/models"
	"uberdirect/pkg/uberdirect/uberr"
)

const (
	DefaultAPIURL  = "https://api.uber.com"
	DefaultAuthURL = "https://login.uber.com"

	serviceName = "uber-direct"

	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	// ответы Uber укладываются в сотни килобайт, POD с картинкой - в единицы мегабайт
	maxResponseSize = 16 << 20
)

// Credentials - токен из Authenticate и идентификатор клиента Uber Direct.
type Credentials struct {
	AccessToken string
	CustomerID  string
}

type Client struct {
	http    httpDoer
	log     clientLogger
	apiURL  string
	authURL string
}

type Option func(*Client)

func WithLogger(log clientLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithAPIURL меняет хост api.uber.com, например на sandbox.
func WithAPIURL(rawURL string) Option {
	return func(c *Client) {
		c.apiURL = strings.TrimRight(rawURL, "/")
	}
}

// WithAuthURL меняет хост login.uber.com.
func WithAuthURL(rawURL string) Option {
	return func(c *Client) {
		c.authURL = strings.TrimRight(rawURL, "/")
	}
}

// New создает клиент. httpClient должен быть один на процесс, чтобы переиспользовать соединения.
func New(httpClient httpDoer, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		http:    httpClient,
		log:     logger.Nop(),
		apiURL:  DefaultAPIURL,
		authURL: DefaultAuthURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.NewField("component", serviceName))

	return c
}

type request struct {
	operation string
	method    string
	url       string
	// пустой token - запрос без Authorization (только Authenticate)
	token string
	// input проверяется тегами validate, body уходит JSON, form - формой
	input any
	body  any
	form  url.Values
	out   any
}

func (c *Client) execute(ctx context.Context, r request) error {
	start := time.Now()

	status, err := c.roundTrip(ctx, r)
	c.observe(r, status, err, time.Since(start))

	return err
}

func (c *Client) roundTrip(ctx context.Context, r request) (int, error) {
	if r.input != nil {
		if err := models.Validate(r.input); err != nil {
			return 0, err
		}
	}

	var (
		payload     []byte
		contentType = contentTypeJSON
	)
	switch {
	case r.form != nil:
		payload = []byte(r.form.Encode())
		contentType = contentTypeForm
	case r.body != nil:
		b, err := json.Marshal(r.body)
		if err != nil {
			return 0, uberr.Wrap(uberr.KindJSON, "encode "+r.operation+" request", err)
		}
		payload = b
	}

	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, body)
	if err != nil {
		return 0, uberr.Wrap(uberr.KindOther, "build "+r.operation+" request", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentTypeJSON)

	if r.form == nil {
		authorization := "Bearer " + r.token
		if r.token == "" || !httpguts.ValidHeaderFieldValue(authorization) {
			return 0, uberr.New(uberr.KindHeader, "invalid access token for authorization header")
		}
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, uberr.Wrap(uberr.KindTimeout, r.method+" "+req.URL.Path, err)
		}
		return 0, uberr.Wrap(uberr.KindTransport, r.method+" "+req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if isTimeout(err) {
			return resp.StatusCode, uberr.Wrap(uberr.KindTimeout, "read "+r.operation+" response", err)
		}
		return resp.StatusCode, uberr.Wrap(uberr.KindTransport, "read "+r.operation+" response", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, uberr.FromResponse(resp.StatusCode, data)
	}

	if r.out == nil || len(bytes.TrimSpace(data)) == 0 {
		return resp.StatusCode, nil
	}

	if err := json.Unmarshal(data, r.out); err != nil {
		// ошибки разбора времени уже типизированы
		var uerr *uberr.Error
		if errors.As(err, &uerr) {
			uerr.Status = resp.StatusCode
			return resp.StatusCode, uerr
		}
		return resp.StatusCode, uberr.Wrap(uberr.KindJSON, "decode "+r.operation+" response", err)
	}

	return resp.StatusCode, nil
}

func (c *Client) observe(r request, status int, err error, duration time.Duration) {
	statusLabel := "none"
	if status != 0 {
		statusLabel = strconv.Itoa(status)
	}
	// Метрики Prometheus
	ClientRequestDuration.WithLabelValues(serviceName, r.operation, statusLabel).Observe(duration.Seconds())

	log := c.log.With(
		logger.NewField("operation", r.operation),
		logger.NewField("method", r.method),
		logger.NewField("status", status),
		logger.NewField("duration", duration.String()),
	)

	if err != nil {
		kind := uberr.KindOf(err)
		ClientErrorsTotal.WithLabelValues(serviceName, r.operation, kind.String()).Inc()
		log.Warn("uber direct call failed",
			logger.NewField("kind", kind.String()),
			logger.NewField("error", err),
		)
		return
	}

	log.Debug("uber direct call")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// customerURL собирает /v1/customers/{customer_id}/... с экранированием сегментов.
func (c *Client) customerURL(creds Credentials, segments ...string) (string, error) {
	if strings.TrimSpace(creds.CustomerID) == "" {
		return "", uberr.New(uberr.KindBadInput, "customer id is required")
	}

	var b strings.Builder
	b.WriteString(c.apiURL)
	b.WriteString("/v1/customers/")
	b.WriteString(url.PathEscape(creds.CustomerID))
	for _, s := range segments {
		if strings.TrimSpace(s) == "" {
			return "", uberr.New(uberr.KindBadInput, "empty path segment")
		}
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String(), nil
}
