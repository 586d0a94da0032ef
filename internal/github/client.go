package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"go.uber.org/zap"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const (
	DefaultAPIURL = "https://api.github.com"
	userAgent     = "rust-release"
)

type Client struct {
	log    *zap.Logger
	http   *http.Client
	apiURL string
	token  string
}

// NewClient returns GitHub client with its own connection pool. Callers that
// need a clean connection state construct a new client instead of reusing an
// existing one. Empty apiURL falls back to the github.com API.
func NewClient(log *zap.Logger, token, apiURL string) Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return Client{
		log:    log,
		http:   &http.Client{Transport: transport},
		apiURL: apiURL,
		token:  token,
	}
}

// FindOrCreateRelease returns the repository release with the supplied name,
// creating it as a draft (with tag and name set to the same value) if the
// repository does not have one. Only the first page of releases is consulted.
func (c Client) FindOrCreateRelease(ctx context.Context, repo, name string) (Release, error) {
	releases, err := c.ListReleases(ctx, repo)
	if err != nil {
		return Release{}, err
	}
	for _, release := range releases {
		if release.Name == name {
			c.log.Info(fmt.Sprintf("found release %s with id %d", name, release.ID))
			return release, nil
		}
	}

	release, err := c.CreateRelease(ctx, repo, CreateRelease{TagName: name, Name: name, Draft: true})
	if err != nil {
		return Release{}, err
	}
	c.log.Info(fmt.Sprintf("created draft release %s with id %d", name, release.ID))
	return release, nil
}

func (c Client) ListReleases(ctx context.Context, repo string) ([]Release, error) {
	var releases []Release
	u := fmt.Sprintf("%s/repos/%s/releases", c.apiURL, repo)
	if err := c.doJSON(ctx, http.MethodGet, u, nil, &releases); err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	return releases, nil
}

func (c Client) CreateRelease(ctx context.Context, repo string, in CreateRelease) (Release, error) {
	var release Release
	u := fmt.Sprintf("%s/repos/%s/releases", c.apiURL, repo)
	if err := c.doJSON(ctx, http.MethodPost, u, in, &release); err != nil {
		return Release{}, fmt.Errorf("create release %s: %w", in.Name, err)
	}
	return release, nil
}

func (c Client) UpdateRelease(ctx context.Context, repo string, id int64, in UpdateRelease) (Release, error) {
	var release Release
	u := fmt.Sprintf("%s/repos/%s/releases/%d", c.apiURL, repo, id)
	if err := c.doJSON(ctx, http.MethodPatch, u, in, &release); err != nil {
		return Release{}, fmt.Errorf("update release %d: %w", id, err)
	}
	return release, nil
}

// ListAssets lists assets of a release by its assets url. The url comes from
// the release record, so it is absolute already.
func (c Client) ListAssets(ctx context.Context, assetsURL string) ([]Asset, error) {
	var assets []Asset
	if err := c.doJSON(ctx, http.MethodGet, assetsURL, nil, &assets); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return assets, nil
}

func (c Client) DeleteAsset(ctx context.Context, repo string, id int64) error {
	u := fmt.Sprintf("%s/repos/%s/releases/assets/%d", c.apiURL, repo, id)
	if err := c.doJSON(ctx, http.MethodDelete, u, nil, nil); err != nil {
		return fmt.Errorf("delete asset %d: %w", id, err)
	}
	return nil
}

// UploadAsset streams the file at path to the release upload endpoint under
// the supplied asset name and returns the created asset.
func (c Client) UploadAsset(ctx context.Context, uploadURL, name, path string) (Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Asset{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Asset{}, fmt.Errorf("stat %s: %w", path, err)
	}

	u := fmt.Sprintf("%s?name=%s", stripURITemplate(uploadURL), url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, f)
	if err != nil {
		return Asset{}, fmt.Errorf("upload %s request: %w", name, err)
	}
	c.setHeaders(req)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/octet-stream")
	req.ContentLength = info.Size()

	response, err := c.http.Do(req)
	if err != nil {
		return Asset{}, fmt.Errorf("upload %s: %w", name, err)
	}
	defer response.Body.Close()

	if err := checkStatus(response); err != nil {
		return Asset{}, fmt.Errorf("upload %s: %w", name, err)
	}
	var asset Asset
	if err := json.NewDecoder(response.Body).Decode(&asset); err != nil {
		return Asset{}, fmt.Errorf("decode upload %s response: %w", name, err)
	}
	return asset, nil
}

// doJSON sends a request with the fixed auth and accept headers, fails on any
// status outside [200, 300) and decodes the response body into out. Both in
// and out can be nil for calls without a request or response body.
func (c Client) doJSON(ctx context.Context, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Accept", "application/vnd.github+json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	response, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if err := checkStatus(response); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("token %s", c.token))
	req.Header.Set("User-Agent", userAgent)
}

func checkStatus(response *http.Response) error {
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}
	b, _ := io.ReadAll(response.Body)
	return fmt.Errorf("%s %s returned %s: %s",
		response.Request.Method, response.Request.URL, response.Status, strings.TrimSpace(string(b)))
}

func stripURITemplate(uploadURL string) string {
	if i := strings.Index(uploadURL, "{"); i >= 0 {
		return uploadURL[:i]
	}
	return uploadURL
}
