package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/pkg/errors"

	"github.com/lingoclip/lingoclip/internal/domain"
	"github.com/lingoclip/lingoclip/internal/search"
)

// Client implements the search backend port over Elasticsearch. One
// client is constructed at startup and shared across all entity types;
// pooling and retries are its responsibility, not the mapper's.
type Client struct {
	es *elasticsearch.Client
}

func New(addresses []string, username, password string) (*Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:     addresses,
		Username:      username,
		Password:      password,
		MaxRetries:    10,
		RetryOnStatus: []int{429, 502, 503, 504},
	})
	if err != nil {
		return nil, errors.Wrap(err, "elasticsearch client")
	}
	return &Client{es: es}, nil
}

func (c *Client) Get(ctx context.Context, index, id string) (map[string]any, error) {
	res, err := c.es.Get(index, id, c.es.Get.WithContext(ctx))
	if err != nil {
		return nil, domain.BackendError{Op: fmt.Sprintf("get %s/%s", index, id), Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, domain.NotFoundError{Resource: fmt.Sprintf("%s %s", index, id)}
	}
	if res.IsError() {
		return nil, domain.BackendError{Op: fmt.Sprintf("get %s/%s", index, id), Err: fmt.Errorf("%s", res.Status())}
	}

	var envelope struct {
		ID     string         `json:"_id"`
		Source map[string]any `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, domain.BackendError{Op: fmt.Sprintf("get %s/%s", index, id), Err: err}
	}
	return envelope.Source, nil
}

func (c *Client) Index(ctx context.Context, index, id string, body map[string]any) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", errors.Wrap(err, "encode document body")
	}

	opts := []func(*esapi.IndexRequest){c.es.Index.WithContext(ctx)}
	if id != "" {
		opts = append(opts, c.es.Index.WithDocumentID(id))
	}

	res, err := c.es.Index(index, bytes.NewReader(payload), opts...)
	if err != nil {
		return "", domain.BackendError{Op: fmt.Sprintf("index %s", index), Err: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		return "", domain.BackendError{Op: fmt.Sprintf("index %s", index), Err: fmt.Errorf("%s", res.Status())}
	}

	var envelope struct {
		ID string `json:"_id"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return "", domain.BackendError{Op: fmt.Sprintf("index %s", index), Err: err}
	}
	return envelope.ID, nil
}

func (c *Client) Search(ctx context.Context, index string, body map[string]any) (*search.Result, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "encode search body")
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, domain.BackendError{Op: fmt.Sprintf("search %s", index), Err: err}
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, domain.BackendError{Op: fmt.Sprintf("search %s", index), Err: fmt.Errorf("%s", res.Status())}
	}

	var envelope struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID     string         `json:"_id"`
				Score  *float64       `json:"_score"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
		Aggregations map[string]any `json:"aggregations"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return nil, domain.BackendError{Op: fmt.Sprintf("search %s", index), Err: err}
	}

	result := &search.Result{
		Total:        envelope.Hits.Total.Value,
		Aggregations: envelope.Aggregations,
	}
	for _, hit := range envelope.Hits.Hits {
		score := 0.0
		if hit.Score != nil {
			score = *hit.Score
		}
		result.Hits = append(result.Hits, search.Hit{ID: hit.ID, Score: score, Source: hit.Source})
	}
	return result, nil
}
