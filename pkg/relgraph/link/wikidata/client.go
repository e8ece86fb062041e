// Package wikidata is a thin client for the public Wikidata
// entity search and fetch API. Unauthenticated; callers handle rate
// limiting through caching and per-call fault tolerance.
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cognitext/relgraph/pkg/relgraph/internalerr"
)

// Candidate is one search result.
type Candidate struct {
	ID          string
	IRI         string
	Label       string
	Description string
}

// Entity is a fetched entity with its instance-of type claims.
type Entity struct {
	ID          string
	Label       string
	Description string
	TypeIDs     []string
}

// instanceOf is the property holding an entity's type claims.
const instanceOf = "P31"

// Client calls a Wikidata-compatible API endpoint.
type Client struct {
	BaseURL string

	HTTPClient *http.Client
}

// Search looks up candidates for a term.
func (c *Client) Search(ctx context.Context, term string, limit int) ([]Candidate, error) {
	q := url.Values{}
	q.Set("action", "wbsearchentities")
	q.Set("search", term)
	q.Set("language", "en")
	q.Set("format", "json")
	q.Set("limit", fmt.Sprintf("%d", limit))

	var payload struct {
		Search []struct {
			ID          string `json:"id"`
			ConceptURI  string `json:"concepturi"`
			Label       string `json:"label"`
			Description string `json:"description"`
		} `json:"search"`
		Error *apiError `json:"error"`
	}
	if err := c.get(ctx, q, &payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("%w: search %q: %s", internalerr.ErrLookupFailed, term, payload.Error.Info)
	}

	out := make([]Candidate, 0, len(payload.Search))
	for _, s := range payload.Search {
		out = append(out, Candidate{
			ID:          s.ID,
			IRI:         s.ConceptURI,
			Label:       s.Label,
			Description: s.Description,
		})
	}
	return out, nil
}

// Fetch retrieves entities by ID, including labels, descriptions and
// instance-of type claims.
func (c *Client) Fetch(ctx context.Context, ids []string) (map[string]Entity, error) {
	if len(ids) == 0 {
		return map[string]Entity{}, nil
	}

	q := url.Values{}
	q.Set("action", "wbgetentities")
	q.Set("ids", strings.Join(ids, "|"))
	q.Set("props", "labels|descriptions|claims")
	q.Set("languages", "en")
	q.Set("format", "json")

	var payload struct {
		Entities map[string]struct {
			Labels struct {
				En struct {
					Value string `json:"value"`
				} `json:"en"`
			} `json:"labels"`
			Descriptions struct {
				En struct {
					Value string `json:"value"`
				} `json:"en"`
			} `json:"descriptions"`
			Claims map[string][]struct {
				Mainsnak struct {
					Datavalue struct {
						Value struct {
							ID string `json:"id"`
						} `json:"value"`
					} `json:"datavalue"`
				} `json:"mainsnak"`
			} `json:"claims"`
		} `json:"entities"`
		Error *apiError `json:"error"`
	}
	if err := c.get(ctx, q, &payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("%w: fetch: %s", internalerr.ErrLookupFailed, payload.Error.Info)
	}

	out := make(map[string]Entity, len(payload.Entities))
	for id, e := range payload.Entities {
		ent := Entity{
			ID:          id,
			Label:       e.Labels.En.Value,
			Description: e.Descriptions.En.Value,
		}
		for _, claim := range e.Claims[instanceOf] {
			if tid := claim.Mainsnak.Datavalue.Value.ID; tid != "" {
				ent.TypeIDs = append(ent.TypeIDs, tid)
			}
		}
		out[id] = ent
	}
	return out, nil
}

// TypeLabels fetches the labels of the given type entity IDs.
func (c *Client) TypeLabels(ctx context.Context, ids []string) ([]string, error) {
	entities, err := c.Fetch(ctx, ids)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(entities))
	for _, e := range entities {
		if e.Label != "" {
			labels = append(labels, e.Label)
		}
	}
	return labels, nil
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (c *Client) get(ctx context.Context, q url.Values, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", internalerr.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", internalerr.ErrLookupFailed, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("%w: %v", internalerr.ErrLookupFailed, err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}
