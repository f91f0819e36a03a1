package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"followsync/internal/config"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// apiUser представляет пользователя в ответе GitHub API
type apiUser struct {
	Login string `json:"login"`
}

// apiError представляет тело ошибки GitHub API
type apiError struct {
	Message string `json:"message"`
}

// Client представляет клиент GitHub REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	username   string
	pageSize   int
	pageDelay  time.Duration
	retry      config.RetryConfig
	logger     *zap.Logger
}

// NewClient создает новый клиент GitHub API
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:          cfg.HTTPClientConfig.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.HTTPClientConfig.MaxIdleConnsPerHost,
		IdleConnTimeout:       cfg.HTTPClientConfig.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.HTTPClientConfig.TLSHandshakeTimeout,
		ResponseHeaderTimeout: cfg.HTTPClientConfig.ResponseHeaderTimeout,
		DisableKeepAlives:     cfg.HTTPClientConfig.DisableKeepAlives,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.HTTPClientConfig.Timeout,
		},
		baseURL:   cfg.APIBaseURL,
		token:     cfg.GithubToken,
		username:  cfg.GithubUsername,
		pageSize:  cfg.PageSize,
		pageDelay: cfg.PageDelay,
		retry:     cfg.RetryConfig,
		logger:    logger,
	}
}

// ListFollowers получает список подписчиков пользователя
func (c *Client) ListFollowers(ctx context.Context) ([]string, error) {
	users, err := c.listUsers(ctx, fmt.Sprintf("/users/%s/followers", url.PathEscape(c.username)))
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return users, nil
}

// ListFollowing получает список подписок пользователя
func (c *Client) ListFollowing(ctx context.Context) ([]string, error) {
	users, err := c.listUsers(ctx, fmt.Sprintf("/users/%s/following", url.PathEscape(c.username)))
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return users, nil
}

// Follow подписывается на пользователя
func (c *Client) Follow(ctx context.Context, username string) error {
	_, err := c.doRequest(ctx, http.MethodPut, "/user/following/"+url.PathEscape(username), nil, username)
	if err != nil {
		return fmt.Errorf("failed to follow %s: %w", username, err)
	}
	return nil
}

// Unfollow отписывается от пользователя
func (c *Client) Unfollow(ctx context.Context, username string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/user/following/"+url.PathEscape(username), nil, username)
	if err != nil {
		return fmt.Errorf("failed to unfollow %s: %w", username, err)
	}
	return nil
}

// listUsers обходит постраничный эндпоинт до первой неполной страницы
func (c *Client) listUsers(ctx context.Context, path string) ([]string, error) {
	var users []string

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(c.pageSize))

		body, err := c.doRequest(ctx, http.MethodGet, path, query, "")
		if err != nil {
			return nil, err
		}

		var pageUsers []apiUser
		if err := json.Unmarshal(body, &pageUsers); err != nil {
			return nil, fmt.Errorf("failed to decode user list: %w", err)
		}

		for _, user := range pageUsers {
			users = append(users, user.Login)
		}

		if len(pageUsers) < c.pageSize {
			break
		}

		// Небольшая пауза между страницами
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pageDelay):
		}
	}

	c.logger.Debug("Fetched user list", zap.String("path", path), zap.Int("count", len(users)))
	return users, nil
}

// doRequest выполняет запрос с retry для временных сетевых ошибок.
// Ошибки аутентификации, лимита запросов и отсутствия пользователя
// помечаются как permanent и не ретраятся.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, target string) ([]byte, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		req.Header.Set("Authorization", "token "+c.token)
		req.Header.Set("Accept", "application/vnd.github.v3+json")
		req.Header.Set("User-Agent", "followsync")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Debug("Request failed, will retry", zap.String("url", requestURL), zap.Error(err))
			return fmt.Errorf("failed to make request: %w", err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		if err := c.checkStatus(resp, data, target); err != nil {
			return err
		}

		body = data
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retry.InitialDelay
	bo.MaxInterval = c.retry.MaxDelay

	if err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.WithContext(bo, ctx), uint64(c.retry.MaxRetries))); err != nil {
		return nil, err
	}

	return body, nil
}

// checkStatus превращает HTTP статус в ошибку из таксономии клиента
func (c *Client) checkStatus(resp *http.Response, data []byte, target string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return backoff.Permanent(&AuthError{StatusCode: resp.StatusCode, Message: apiMessage(data)})

	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusTooManyRequests:
		if resp.StatusCode == http.StatusTooManyRequests || resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return backoff.Permanent(&RateLimitError{ResetAt: rateLimitReset(resp), Message: apiMessage(data)})
		}
		return backoff.Permanent(&AuthError{StatusCode: resp.StatusCode, Message: apiMessage(data)})

	case resp.StatusCode == http.StatusNotFound:
		return backoff.Permanent(&NotFoundError{Username: target})

	case resp.StatusCode >= 500:
		return fmt.Errorf("server error: status %d", resp.StatusCode)

	default:
		return backoff.Permanent(fmt.Errorf("unexpected status code: %d: %s", resp.StatusCode, apiMessage(data)))
	}
}

// apiMessage извлекает сообщение об ошибке из тела ответа
func apiMessage(data []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return string(data)
}

// rateLimitReset извлекает время сброса лимита из заголовка X-RateLimit-Reset
func rateLimitReset(resp *http.Response) time.Time {
	if value := resp.Header.Get("X-RateLimit-Reset"); value != "" {
		if epoch, err := strconv.ParseInt(value, 10, 64); err == nil {
			return time.Unix(epoch, 0).UTC()
		}
	}
	return time.Time{}
}

var _ GraphAPI = (*Client)(nil)
