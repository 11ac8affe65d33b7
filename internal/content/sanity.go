package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// GROQ queries for each document type.
const (
	QueryProjects = `*[_type == "project"] | order(year desc){_id, title, category, "image": image.asset->url, year, location, description, featured}`
	QueryServices = `*[_type == "service"] | order(order asc){_id, title, description, price}`
	QueryAbout    = `*[_type == "about"][0]{headline, bio, "portrait": portrait.asset->url, stats}`
)

// DefaultAPIVersion is the dated API version requested when none is set.
const DefaultAPIVersion = "2024-01-01"

// SanityConfig holds the connection settings for a Sanity-style query API.
type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	// BaseURL overrides the host derived from ProjectID, e.g. a local
	// content server.
	BaseURL string
	Timeout time.Duration
}

// SanityClient is a lightweight HTTP client for the query endpoint.
type SanityClient struct {
	baseURL    string
	dataset    string
	apiVersion string
	token      string
	httpClient *http.Client
}

// NewSanityClient returns ErrNotConfigured when neither a project ID nor a
// base URL is set, or the dataset is missing.
func NewSanityClient(cfg SanityConfig) (*SanityClient, error) {
	if cfg.Dataset == "" || (cfg.ProjectID == "" && cfg.BaseURL == "") {
		return nil, ErrNotConfigured
	}
	base := cfg.BaseURL
	if base == "" {
		host := "api.sanity.io"
		if cfg.UseCDN {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	version := strings.TrimPrefix(cfg.APIVersion, "v")
	if version == "" {
		version = DefaultAPIVersion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SanityClient{
		baseURL:    base,
		dataset:    cfg.Dataset,
		apiVersion: version,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// queryResponse is the envelope around every query result.
type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Query runs a GROQ query and decodes its result into dst.
func (c *SanityClient) Query(ctx context.Context, query string, dst interface{}) error {
	u := fmt.Sprintf("%s/v%s/data/query/%s?query=%s",
		c.baseURL, c.apiVersion, url.PathEscape(c.dataset), url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Result, dst); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

// Fetch runs the three catalog queries concurrently.
func (c *SanityClient) Fetch(ctx context.Context) (*Catalog, error) {
	var cat Catalog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := c.Query(gctx, QueryProjects, &cat.Projects); err != nil {
			return fmt.Errorf("projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := c.Query(gctx, QueryServices, &cat.Services); err != nil {
			return fmt.Errorf("services: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := c.Query(gctx, QueryAbout, &cat.About); err != nil {
			return fmt.Errorf("about: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &cat, nil
}
