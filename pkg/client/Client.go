// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package client

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/spatialcurrent/go-sync-logger/pkg/gsl"

	"github.com/spatialcurrent/analyst/pkg/models"
	"github.com/spatialcurrent/analyst/pkg/query"
	"github.com/spatialcurrent/analyst/pkg/request"
	"github.com/spatialcurrent/analyst/pkg/result"

	rerrors "github.com/spatialcurrent/analyst/pkg/errors"
)

type Client struct {
	BaseUrl       string
	HttpClient    *http.Client
	Cache         *gocache.Cache
	Logger        *gsl.Logger
	Authorization string // sent as a bearer token if set
	Cookie        string // forwarded session cookie if set
}

// New returns a new client for the server at baseUrl.
// If httpClient is nil, then http.DefaultClient is used.
func New(baseUrl string, httpClient *http.Client, logger *gsl.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HttpClient: httpClient,
		Cache:      gocache.New(DefaultCacheExpiration, DefaultCacheCleanup),
		Logger:     logger,
	}
}

// WithCredentials returns a shallow copy of the client that sends the given credentials.
// The result cache is shared, but entries are keyed by credentials.
func (c *Client) WithCredentials(authorization string, cookie string) *Client {
	copied := *c
	copied.Authorization = authorization
	copied.Cookie = cookie
	return &copied
}

// cacheKey returns the cache key for the url as fetched with the client's credentials.
func (c *Client) cacheKey(u string) string {
	h := sha256.Sum256([]byte(c.Authorization + "\x00" + c.Cookie))
	return hex.EncodeToString(h[:]) + " " + u
}

func (c *Client) debug(r request.Request) {
	if c.Logger != nil {
		c.Logger.Debug(r.Map())
	}
}

func (c *Client) debugF(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.DebugF(format, args...)
	}
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating request for %q", u)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	if len(c.Authorization) > 0 {
		req.Header.Set("Authorization", "bearer "+c.Authorization)
	}
	if len(c.Cookie) > 0 {
		req.Header.Set("Cookie", c.Cookie)
	}

	c.debugF("Url: %q", u)

	start := time.Now()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "error requesting %q", u)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading response from %q", u)
	}

	c.debugF("Response Code: %d (%s)", resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &ErrUnauthorized{Url: u}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &ErrUnexpectedStatus{Url: u, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	return body, nil
}

func (c *Client) getObject(ctx context.Context, u string, objectType string, id string, obj interface{}) error {
	body, err := c.get(ctx, u)
	if err != nil {
		if e, ok := err.(*ErrUnexpectedStatus); ok && e.StatusCode == http.StatusNotFound {
			return &rerrors.ErrMissingObject{Type: objectType, Id: id}
		}
		return err
	}
	err = json.Unmarshal(body, obj)
	if err != nil {
		return errors.Wrapf(err, "error decoding %s from %q", objectType, u)
	}
	return nil
}

func (c *Client) projectUrl(path string, projectId string) string {
	return c.BaseUrl + path + "?" + url.Values{ParameterProjectId: []string{projectId}}.Encode()
}

// Projects returns the projects visible to the user, sorted by name.
func (c *Client) Projects(ctx context.Context) (models.Projects, error) {
	projects := models.Projects{}
	err := c.getObject(ctx, c.BaseUrl+PathProject, "projects", "", &projects)
	if err != nil {
		return nil, err
	}
	projects.Sort()
	return projects, nil
}

func (c *Client) Project(ctx context.Context, id string) (*models.Project, error) {
	project := &models.Project{}
	err := c.getObject(ctx, c.BaseUrl+PathProject+"/"+url.PathEscape(id), "project", id, project)
	if err != nil {
		return nil, err
	}
	return project, nil
}

// ExemplarDay returns the representative service day of the project's transit feeds.
func (c *Client) ExemplarDay(ctx context.Context, projectId string) (time.Time, error) {
	u := c.BaseUrl + PathProject + "/" + url.PathEscape(projectId) + "/exemplarDay"
	body, err := c.get(ctx, u)
	if err != nil {
		if e, ok := err.(*ErrUnexpectedStatus); ok && e.StatusCode == http.StatusNotFound {
			return time.Time{}, &rerrors.ErrMissingObject{Type: "project", Id: projectId}
		}
		return time.Time{}, err
	}
	str := strings.Trim(strings.TrimSpace(string(body)), "\"")
	d, err := time.Parse(query.DateFormat, str)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "error parsing exemplar day %q", str)
	}
	return d, nil
}

// Shapefiles returns the shapefiles of the project, sorted by name.
func (c *Client) Shapefiles(ctx context.Context, projectId string) (models.Shapefiles, error) {
	shapefiles := models.Shapefiles{}
	err := c.getObject(ctx, c.projectUrl(PathShapefile, projectId), "shapefiles", projectId, &shapefiles)
	if err != nil {
		return nil, err
	}
	shapefiles.Sort()
	return shapefiles, nil
}

func (c *Client) Scenarios(ctx context.Context, projectId string) (models.Scenarios, error) {
	scenarios := models.Scenarios{}
	err := c.getObject(ctx, c.projectUrl(PathScenario, projectId), "scenarios", projectId, &scenarios)
	if err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (c *Client) Bundles(ctx context.Context, projectId string) (models.Bundles, error) {
	bundles := models.Bundles{}
	err := c.getObject(ctx, c.projectUrl(PathBundle, projectId), "bundles", projectId, &bundles)
	if err != nil {
		return nil, err
	}
	return bundles, nil
}

// Queries returns the batch queries of the project, sorted by name.
func (c *Client) Queries(ctx context.Context, projectId string) (models.Queries, error) {
	queries := models.Queries{}
	err := c.getObject(ctx, c.projectUrl(PathQuery, projectId), "queries", projectId, &queries)
	if err != nil {
		return nil, err
	}
	queries.Sort()
	return queries, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	user := &models.User{}
	err := c.getObject(ctx, c.BaseUrl+PathUser+"/self", "user", "self", user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *Client) Ledger(ctx context.Context, userId string) (models.Ledger, error) {
	u := c.BaseUrl + PathLedger + "?" + url.Values{"userId": []string{userId}}.Encode()
	ledger := models.Ledger{}
	err := c.getObject(ctx, u, "ledger", userId, &ledger)
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// Result returns the single-point result for the query.
// Results are cached by credentials and url.
func (c *Client) Result(ctx context.Context, q query.SinglePointQuery) (*result.Result, error) {
	err := q.Validate()
	if err != nil {
		return nil, errors.Wrap(err, "invalid query")
	}
	u := q.ResultURL(c.BaseUrl)
	key := c.cacheKey(u)
	if c.Cache != nil {
		obj, found := c.Cache.Get(key)
		c.debug(request.CacheRequest{Key: u, Hit: found})
		if found {
			return obj.(*result.Result), nil
		}
	}
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	r, err := result.Parse(body)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing result from %q", u)
	}
	if c.Cache != nil {
		c.Cache.Set(key, r, gocache.DefaultExpiration)
	}
	return r, nil
}
