package graphclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"prioritize/domain/core/entities"
	pkgerrors "prioritize/pkg/errors"
	"prioritize/pkg/observability"
	"prioritize/pkg/utils"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultContentType is sent with every request body
	DefaultContentType = "application/json; charset=UTF-8"

	maxErrorBody = 4 << 10
)

// Options is the network configuration of a Client
type Options struct {
	BaseURL     string        `validate:"required,url"`
	ContentType string        `validate:"required"`
	Timeout     time.Duration `validate:"gt=0"`
	Breaker     BreakerConfig
	HTTPClient  *http.Client
}

// Client talks to the remote graph service over its JSON contract. Every
// call is bounded by the configured timeout and passes a circuit breaker;
// non-2xx answers become REMOTE_REJECTED, everything else that goes wrong
// on the way is NETWORK.
type Client struct {
	baseURL     string
	contentType string
	timeout     time.Duration
	http        *http.Client
	breaker     *gobreaker.CircuitBreaker
	propagator  propagation.TextMapPropagator
	tracer      trace.Tracer
	metrics     *observability.Collector
	logger      *zap.Logger
}

// NewClient creates a graph service client
func NewClient(opts Options, metrics *observability.Collector, logger *zap.Logger) (*Client, error) {
	if err := utils.ValidateStruct(opts); err != nil {
		return nil, pkgerrors.NewValidationError(fmt.Sprintf("invalid graph client options: %v", err))
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		contentType: opts.ContentType,
		timeout:     opts.Timeout,
		http:        httpClient,
		breaker:     newBreaker("graph-service", opts.Breaker, logger),
		propagator:  otel.GetTextMapPropagator(),
		tracer:      otel.Tracer("prioritize/graphclient"),
		metrics:     metrics,
		logger:      logger,
	}, nil
}

type nameBody struct {
	Name string
}

type edgeBody struct {
	From string
	To   string
}

type renameBody struct {
	Old string
	New string
}

// Snapshot fetches the whole graph
func (c *Client) Snapshot(ctx context.Context) (*entities.DataSet, error) {
	var ds entities.DataSet
	if err := c.do(ctx, http.MethodGet, "/item/vis", nil, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// AppName fetches the application name
func (c *Client) AppName(ctx context.Context) (string, error) {
	var body nameBody
	if err := c.do(ctx, http.MethodGet, "/app/name", nil, &body); err != nil {
		return "", err
	}
	return body.Name, nil
}

// PutItem creates a node
func (c *Client) PutItem(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPut, "/item/put", nameBody{Name: name}, nil)
}

// PutEdge creates the edge from -> to
func (c *Client) PutEdge(ctx context.Context, from, to string) error {
	return c.do(ctx, http.MethodPut, "/item/put-edge", edgeBody{From: from, To: to}, nil)
}

// RenameItem moves a node to a new label
func (c *Client) RenameItem(ctx context.Context, oldName, newName string) error {
	return c.do(ctx, http.MethodPatch, "/item/rename", renameBody{Old: oldName, New: newName}, nil)
}

// RemoveItem deletes a node and its edges
func (c *Client) RemoveItem(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/item/remove", nameBody{Name: name}, nil)
}

// RemoveEdge deletes the edge from -> to
func (c *Client) RemoveEdge(ctx context.Context, from, to string) error {
	return c.do(ctx, http.MethodDelete, "/item/remove-edge", edgeBody{From: from, To: to}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	endpoint := method + " " + path

	ctx, span := c.tracer.Start(ctx, "graphclient."+endpoint, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.roundTrip(ctx, method, path, in, out)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = pkgerrors.NewNetworkError("graph service unavailable", err)
	}

	result := "ok"
	if err != nil {
		result = string(pkgerrors.Kind(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("Graph service call failed",
			zap.String("endpoint", endpoint),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
	} else {
		c.logger.Debug("Graph service call",
			zap.String("endpoint", endpoint),
			zap.Duration("duration", time.Since(start)),
		)
	}
	c.metrics.RecordRemoteCall(endpoint, result, time.Since(start))

	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, in, out interface{}) error {
	endpoint := method + " " + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return pkgerrors.NewInternalError("failed to encode request").WithCause(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return pkgerrors.NewInternalError("failed to build request").WithCause(err)
	}
	req.Header.Set("Accept", c.contentType)
	if in != nil {
		req.Header.Set("Content-Type", c.contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.NewNetworkError(fmt.Sprintf("%s failed", endpoint), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return pkgerrors.NewRemoteRejectedError(endpoint, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.NewNetworkError(fmt.Sprintf("%s returned an unreadable body", endpoint), err)
	}
	return nil
}
