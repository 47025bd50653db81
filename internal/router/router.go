// Package router ties redirect resolution and head synchronization to navigation
// events: resolve once, replace the history entry on a hit, leave the previous page
// and enter the next.
package router

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"tsgfulfillment.com/web/internal/pages"
	"tsgfulfillment.com/web/internal/redirects"
	"tsgfulfillment.com/web/internal/seo"
)

// DescriptorSource supplies the head state for a route. lang is the raw `lang` query
// value, empty when the URL does not name a language.
type DescriptorSource interface {
	Descriptor(path string, page int, lang string) (seo.Descriptor, error)
}

// Observer records navigation outcomes.
type Observer interface {
	ObserveRedirect(from string)
	ObserveHeadSyncFailure(reason string)
}

// Result describes where a navigation ended up.
type Result struct {
	// Path is the route that was rendered, after any redirect.
	Path string
	// Page is the listing page number from the query, 1 when absent.
	Page int
	// RedirectedFrom is the declared legacy path when a redirect rule matched.
	RedirectedFrom string
	NotFound       bool
	// SyncErr is set when the head could not be synchronized. The navigation still
	// completes.
	SyncErr error
}

// Navigator handles navigation events for one document.
type Navigator struct {
	redirects *redirects.Table
	source    DescriptorSource
	head      *seo.Synchronizer
	history   History
	logger    *zap.Logger
	observer  Observer
	tracer    trace.Tracer

	mu      sync.Mutex
	current *seo.Handle
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger used for sync failures.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Navigator) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithObserver records redirects and sync failures.
func WithObserver(obs Observer) Option {
	return func(n *Navigator) { n.observer = obs }
}

// WithTracer sets the tracer for navigation spans. The global provider is used otherwise.
func WithTracer(tracer trace.Tracer) Option {
	return func(n *Navigator) {
		if tracer != nil {
			n.tracer = tracer
		}
	}
}

// New returns a navigator. table may be nil, in which case nothing redirects.
func New(table *redirects.Table, source DescriptorSource, head *seo.Synchronizer, history History, opts ...Option) *Navigator {
	n := &Navigator{
		redirects: table,
		source:    source,
		head:      head,
		history:   history,
		logger:    zap.NewNop(),
		tracer:    otel.Tracer("tsgfulfillment.com/web/internal/router"),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Go follows a link: it pushes target onto the history and navigates to it.
func (n *Navigator) Go(ctx context.Context, target string) (Result, error) {
	n.history.Push(target)
	return n.Navigate(ctx, target)
}

// Navigate reacts to the history now pointing at target. A matching redirect rule
// replaces the current entry with its destination and points the canonical link at
// it; the destination is rendered without being resolved again. Head synchronization
// failures are logged and reported in the result but never fail the navigation.
func (n *Navigator) Navigate(ctx context.Context, target string) (res Result, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ctx, span := n.tracer.Start(ctx, "router.Navigate", trace.WithAttributes(attribute.String("url.full", target)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	u, err := url.Parse(target)
	if err != nil {
		return Result{}, err
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	query := u.Query()
	res = Result{Path: path, Page: pageParam(query)}

	if rule, ok := n.redirects.Match(path); ok && rule.To != path {
		dest := rule.To
		if u.RawQuery != "" {
			dest += "?" + u.RawQuery
		}
		n.history.Replace(dest)
		if n.observer != nil {
			n.observer.ObserveRedirect(rule.From)
		}
		n.logger.Debug("legacy redirect", zap.String("from", path), zap.String("to", rule.To))
		span.SetAttributes(
			attribute.String("tsg.redirect.from", rule.From),
			attribute.String("tsg.redirect.to", rule.To),
		)
		res.Path = rule.To
		res.RedirectedFrom = rule.From
		if err := redirects.ApplyCanonical(n.head, n.head.Site().BaseURL(), rule.To); err != nil {
			n.syncFailed(ctx, &res, err)
		}
	}
	span.SetAttributes(attribute.String("url.path", res.Path), attribute.Int("tsg.page", res.Page))

	d, err := n.source.Descriptor(res.Path, res.Page, query.Get("lang"))
	if errors.Is(err, pages.ErrNotFound) {
		res.NotFound = true
		span.SetAttributes(attribute.Bool("tsg.not_found", true))
		d = notFoundDescriptor(res.Path)
	} else if err != nil {
		return res, err
	}

	if err := n.head.Leave(n.current); err != nil {
		n.syncFailed(ctx, &res, err)
	}
	n.current = nil
	h, err := n.head.Enter(d)
	if err != nil {
		n.syncFailed(ctx, &res, err)
		return res, nil
	}
	n.current = h
	return res, nil
}

// Leave tears down the current page's navigation-scoped head elements.
func (n *Navigator) Leave() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	err := n.head.Leave(n.current)
	n.current = nil
	return err
}

func (n *Navigator) syncFailed(ctx context.Context, res *Result, err error) {
	if res.SyncErr == nil {
		res.SyncErr = err
	}
	reason := FailureReason(err)
	span := trace.SpanFromContext(ctx)
	span.RecordError(err, trace.WithAttributes(attribute.String("tsg.head_sync.reason", reason)))
	span.SetStatus(codes.Error, "head sync failed: "+reason)
	n.logger.Warn("head sync failed",
		zap.String("path", res.Path),
		zap.String("reason", reason),
		zap.Error(err),
	)
	if n.observer != nil {
		n.observer.ObserveHeadSyncFailure(reason)
	}
}

// FailureReason maps a synchronizer error to a metric label.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, seo.ErrStructuredData):
		return "structured_data"
	case errors.Is(err, seo.ErrInvalidAlternate):
		return "alternate"
	case errors.Is(err, seo.ErrMissingHead):
		return "missing_head"
	default:
		return "store"
	}
}

func notFoundDescriptor(path string) seo.Descriptor {
	return seo.Descriptor{
		Title:         "Page Not Found",
		Description:   "The page you are looking for does not exist.",
		CanonicalPath: path,
		NoIndex:       true,
	}
}

func pageParam(q url.Values) int {
	n, err := strconv.Atoi(q.Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
