package anubis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/fantasy-draft/internal/domain/user"
	"github.com/riskibarqy/fantasy-draft/internal/platform/cache"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

const (
	defaultTimeout  = 5 * time.Second
	defaultCacheTTL = 30 * time.Second
	maxResponseBody = 1 << 20
)

var errAnubisTransient = crerr.New("anubis transient failure")

type Config struct {
	BaseURL        string
	IntrospectPath string
	AdminKey       string
	Timeout        time.Duration
	CacheTTL       time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client resolves bearer tokens to principals through the Anubis
// introspection endpoint. Active principals are cached by token hash.
type Client struct {
	http          *fasthttp.Client
	introspectURL string
	adminKey      string
	timeout       time.Duration
	principals    *cache.Store
	breaker       *resilience.CircuitBreaker
	logger        *logging.Logger
}

func NewClient(cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                     "fantasy-draft",
			MaxResponseBodySize:      maxResponseBody,
			NoDefaultUserAgentHeader: true,
		},
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectPath),
		adminKey:      strings.TrimSpace(cfg.AdminKey),
		timeout:       timeout,
		principals:    cache.NewStore(ttl),
		breaker:       resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		logger:        logger.Named("anubis"),
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	v, err := c.principals.GetOrLoad(ctx, hashToken(token), func(ctx context.Context) (any, error) {
		var principal user.Principal
		err := c.breaker.Execute(func() error {
			var callErr error
			principal, callErr = c.introspect(ctx, token)
			return callErr
		}, isCircuitFailure)
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "anubis circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: anubis circuit open", usecase.ErrDependencyUnavailable)
		}
		if err != nil {
			return nil, err
		}
		return principal, nil
	})
	if err != nil {
		return user.Principal{}, err
	}

	principal, _ := v.(user.Principal)
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	body, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, crerr.Wrap(err, "marshal introspect request")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.introspectURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}
	req.SetBody(body)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return user.Principal{}, fmt.Errorf("%w: %w: request introspection: %v", usecase.ErrDependencyUnavailable, errAnubisTransient, err)
	}

	status := resp.StatusCode()
	switch {
	case status == fasthttp.StatusUnauthorized:
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	case status == fasthttp.StatusForbidden:
		// A 403 means our admin key was rejected, not the caller's token.
		c.logger.ErrorContext(ctx, "anubis rejected admin key", "status_code", status)
		return user.Principal{}, fmt.Errorf("%w: anubis rejected admin key", usecase.ErrDependencyUnavailable)
	case isRetryableStatus(status):
		c.logger.WarnContext(ctx, "anubis introspection unavailable", "status_code", status)
		return user.Principal{}, fmt.Errorf("%w: %w: introspection status %d", usecase.ErrDependencyUnavailable, errAnubisTransient, status)
	case status != fasthttp.StatusOK:
		c.logger.WarnContext(ctx, "anubis introspection non-200", "status_code", status)
		return user.Principal{}, fmt.Errorf("%w: introspection status %d", usecase.ErrDependencyUnavailable, status)
	}

	var decoded introspectResponse
	if err := sonic.Unmarshal(resp.Body(), &decoded); err != nil {
		return user.Principal{}, crerr.Wrap(err, "unmarshal introspect response")
	}
	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, crerr.New("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusRequestTimeout ||
		status == fasthttp.StatusTooManyRequests ||
		status >= fasthttp.StatusInternalServerError
}
