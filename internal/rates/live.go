package rates

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoRateInResponse = errors.New("no numeric rate in response")
	ErrMissingAPIKey    = errors.New("rates api key not configured")
)

// Source is one citation attached to a live quote.
type Source struct {
	URI   string
	Title string
}

// Quote is a live exchange rate for one currency pair.
type Quote struct {
	From      string
	To        string
	Rate      decimal.Decimal
	Sources   []Source
	FetchedAt time.Time
}

// Client is the live-rate capability. Implementations must honor
// context cancellation so a superseded lookup can be abandoned.
type Client interface {
	Fetch(ctx context.Context, from, to string) (*Quote, error)
}

// LiveClient asks a generateContent-style text API for the current
// mid-market rate and parses the first numeric token out of the reply.
type LiveClient struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewLiveClient(endpoint, model, apiKey string) *LiveClient {
	return &LiveClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Tools    []tool    `json:"tools,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleSearch struct{} `json:"google_search"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		GroundingMetadata struct {
			GroundingChunks []struct {
				Web struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Fetch asks for the rate of one from-unit in to-units. Identical codes
// short-circuit to a rate of exactly 1 without a network call.
func (c *LiveClient) Fetch(ctx context.Context, from, to string) (*Quote, error) {
	if strings.EqualFold(from, to) {
		return &Quote{
			From:      from,
			To:        to,
			Rate:      decimal.NewFromInt(1),
			FetchedAt: time.Now(),
		}, nil
	}

	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	prompt := fmt.Sprintf(
		"What is the current mid-market exchange rate for 1 %s to %s right now? Return only the numerical value.",
		from, to,
	)

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("encode rate request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build rate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read rate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate request returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode rate response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("rate api error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 {
		return nil, ErrNoRateInResponse
	}

	var text strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	rate, err := ParseRate(text.String())
	if err != nil {
		return nil, err
	}

	var sources []Source
	for _, chunk := range parsed.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web.URI == "" {
			continue
		}
		sources = append(sources, Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}

	return &Quote{
		From:      from,
		To:        to,
		Rate:      rate,
		Sources:   sources,
		FetchedAt: time.Now(),
	}, nil
}

var rateToken = regexp.MustCompile(`(\d+[,.]\d+)|(\d+)`)

// ParseRate extracts the first decimal-or-integer token from free text.
// Thousands separators inside the token are dropped.
func ParseRate(text string) (decimal.Decimal, error) {
	match := rateToken.FindString(text)
	if match == "" {
		return decimal.Zero, ErrNoRateInResponse
	}

	match = strings.ReplaceAll(match, ",", "")
	rate, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero, ErrNoRateInResponse
	}
	return rate, nil
}
