package randompet

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pet-adoption-agency/internal/platform/httpclient"
	"pet-adoption-agency/internal/ports/lookup"

	"github.com/patrickmn/go-cache"
)

const (
	DefaultBaseURL  = "https://api.petfinder.com/v2"
	DefaultTimeout  = 5 * time.Second
	DefaultCacheTTL = 10 * time.Minute

	batchSize = 100
	batchKey  = "animals"
)

var ErrNotConfigured = errors.New("random pet lookup: api key not configured")

type Config struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	CacheTTL time.Duration

	// Transport opcional (tests).
	Transport http.RoundTripper
}

// Client pide un lote de animales al servicio externo, lo cachea y elige uno al azar.
type Client struct {
	http  *httpclient.Client
	cache *cache.Cache
	ttl   time.Duration
	pick  func(n int) int
}

var _ lookup.RandomPetLookup = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, ErrNotConfigured
	}

	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   base,
		Timeout:   timeout,
		Transport: cfg.Transport,
		Headers:   map[string]string{"Authorization": "Bearer " + key},
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		http:  hc,
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
		pick:  rand.IntN,
	}, nil
}

// animalsResponse refleja solo lo que leemos del JSON externo.
type animalsResponse struct {
	Animals []animal `json:"animals"`
}

type animal struct {
	Name   string  `json:"name"`
	Age    string  `json:"age"`
	Photos []photo `json:"photos"`
}

type photo struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
	Full   string `json:"full"`
}

func (p photo) best() string {
	for _, u := range []string{p.Medium, p.Large, p.Full, p.Small} {
		if strings.TrimSpace(u) != "" {
			return u
		}
	}
	return ""
}

func (c *Client) RandomPet(ctx context.Context) (lookup.Featured, error) {
	batch, err := c.batch(ctx)
	if err != nil {
		return lookup.Featured{}, err
	}

	a := batch[c.pick(len(batch))]
	out := lookup.Featured{
		Name: strings.TrimSpace(a.Name),
		Age:  strings.TrimSpace(a.Age),
	}
	if len(a.Photos) > 0 {
		out.PhotoURL = a.Photos[0].best()
	}
	return out, nil
}

// batch devuelve el lote cacheado o lo pide de nuevo. Solo se cachean lotes útiles.
func (c *Client) batch(ctx context.Context) ([]animal, error) {
	if v, ok := c.cache.Get(batchKey); ok {
		if b, ok := v.([]animal); ok && len(b) > 0 {
			return b, nil
		}
	}

	var resp animalsResponse
	q := url.Values{"limit": {strconv.Itoa(batchSize)}}
	if err := c.http.GetJSON(ctx, "/animals", q, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", lookup.ErrExternalService, err)
	}

	usable := make([]animal, 0, len(resp.Animals))
	for _, a := range resp.Animals {
		if strings.TrimSpace(a.Name) == "" {
			continue
		}
		usable = append(usable, a)
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("%w: empty response", lookup.ErrExternalService)
	}

	c.cache.Set(batchKey, usable, c.ttl)
	return usable, nil
}
