// Package tour wraps the two Korea Tourism API backends: KorService2 keyword
// search and TarRlteTarService1 related-attraction search.
package tour

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"mannam/pkg/area"
)

const mobileApp = "TravelHashtag"

type Config struct {
	APIKey        string
	KorServiceURL string
	TarRlteURL    string
	BaseYM        string
	Timeout       time.Duration
	// RelatedRequired makes a related-backend failure fail Combined instead
	// of degrading to keyword-only results.
	RelatedRequired bool
}

type Client struct {
	cfg   Config
	httpc *http.Client
	log   zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:   cfg,
		httpc: &http.Client{Timeout: cfg.Timeout},
		log:   log.With().Str("component", "tour").Logger(),
	}
}

// SearchKeyword runs a KorService2 keyword search. Area and sigungu are
// KorService2 codes; empty values are simply omitted from the request.
func (c *Client) SearchKeyword(ctx context.Context, keyword, areaCode, sigunguCode, contentTypeID string) ([]KeywordItem, error) {
	q := c.baseParams()
	q.Set("keyword", keyword)
	if areaCode != "" {
		q.Set("areaCode", areaCode)
		if sigunguCode != "" {
			q.Set("sigunguCode", sigunguCode)
		}
	}
	if contentTypeID != "" {
		q.Set("contentTypeId", contentTypeID)
	}

	var out apiResponse[KeywordItem]
	if err := c.get(ctx, c.cfg.KorServiceURL+"/searchKeyword2", q, &out); err != nil {
		return nil, errors.Wrap(err, "keyword search")
	}
	if out.Response.Header.ResultCode != "0000" {
		c.log.Warn().Str("result_code", out.Response.Header.ResultCode).
			Str("result_msg", out.Response.Header.ResultMsg).Msg("keyword search non-ok result")
		return nil, nil
	}
	return out.Response.Body.Items.Items, nil
}

// SearchRelated runs a TarRlteTarService1 search. It takes KorService2 codes
// and translates them; untranslatable codes are omitted, not an error.
func (c *Client) SearchRelated(ctx context.Context, keyword, areaCode, sigunguCode string) ([]RelatedItem, error) {
	q := c.baseParams()
	q.Set("keyword", keyword)
	q.Set("baseYm", c.cfg.BaseYM)
	if areaCd, signguCd := area.TarCodes(areaCode, sigunguCode); areaCd != "" {
		q.Set("areaCd", areaCd)
		if signguCd != "" {
			q.Set("signguCd", signguCd)
		}
	}

	var out apiResponse[RelatedItem]
	if err := c.get(ctx, c.cfg.TarRlteURL+"/searchKeyword1", q, &out); err != nil {
		return nil, errors.Wrap(err, "related search")
	}
	if out.Response.Header.ResultCode != "0000" {
		c.log.Warn().Str("result_code", out.Response.Header.ResultCode).
			Str("result_msg", out.Response.Header.ResultMsg).Msg("related search non-ok result")
		return nil, nil
	}
	return out.Response.Body.Items.Items, nil
}

// Combined queries both backends concurrently. The related backend is
// best-effort unless RelatedRequired is set.
func (c *Client) Combined(ctx context.Context, keyword, areaCode, sigunguCode string) (*Combined, error) {
	var res Combined
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := c.SearchKeyword(gctx, keyword, areaCode, sigunguCode, "")
		if err != nil {
			return err
		}
		res.Keyword = items
		return nil
	})
	g.Go(func() error {
		items, err := c.SearchRelated(gctx, keyword, areaCode, sigunguCode)
		if err != nil {
			if c.cfg.RelatedRequired {
				return err
			}
			c.log.Warn().Err(err).Str("keyword", keyword).Msg("related search failed, continuing without")
			return nil
		}
		res.Related = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) baseParams() url.Values {
	q := url.Values{}
	q.Set("serviceKey", c.cfg.APIKey)
	q.Set("MobileOS", "ETC")
	q.Set("MobileApp", mobileApp)
	q.Set("_type", "json")
	q.Set("numOfRows", "50")
	return q
}

func (c *Client) get(ctx context.Context, rawURL string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tour api status %d", resp.StatusCode)
	}
	// The gateway answers some auth errors with an XML body regardless of
	// _type=json; make that a readable error instead of a decode failure.
	ct := resp.Header.Get("Content-Type")
	if strings.Contains(ct, "xml") {
		return fmt.Errorf("tour api returned %s (check serviceKey)", ct)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
