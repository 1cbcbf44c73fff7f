package scanner

import (
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/scamlens/backend/internal/models"
	"github.com/sirupsen/logrus"
)

// Scanner fetches a product listing page and extracts the fields the
// analysis pipeline needs. Extraction is best-effort: it reads Open
// Graph tags first, then falls back to schema.org microdata and common
// storefront selectors. Fields it cannot find stay empty.
type Scanner struct {
	userAgent string
	logger    *logrus.Logger
}

func New(userAgent string, logger *logrus.Logger) *Scanner {
	return &Scanner{
		userAgent: userAgent,
		logger:    logger,
	}
}

func (s *Scanner) FetchProduct(pageURL string) (models.ProductRecord, error) {
	product := models.ProductRecord{URL: pageURL}
	var fetchErr error

	c := colly.NewCollector(
		colly.UserAgent(s.userAgent),
	)
	c.SetRequestTimeout(20 * time.Second)

	c.OnHTML("head", func(e *colly.HTMLElement) {
		if v, ok := e.DOM.Find(`meta[property="og:title"]`).Attr("content"); ok {
			product.Title = strings.TrimSpace(v)
		}
		if product.Title == "" {
			product.Title = strings.TrimSpace(e.DOM.Find("title").Text())
		}

		if v, ok := e.DOM.Find(`meta[property="og:description"]`).Attr("content"); ok {
			product.Description = strings.TrimSpace(v)
		}
		if product.Description == "" {
			if v, ok := e.DOM.Find(`meta[name="description"]`).Attr("content"); ok {
				product.Description = strings.TrimSpace(v)
			}
		}

		if v, ok := e.DOM.Find(`meta[property="product:price:amount"]`).Attr("content"); ok {
			product.Price = strings.TrimSpace(v)
		}
		if v, ok := e.DOM.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
			product.Seller = strings.TrimSpace(v)
		}
	})

	c.OnHTML("body", func(e *colly.HTMLElement) {
		if product.Price == "" {
			product.Price = firstText(e, `[itemprop="price"], .price, #price`)
		}
		if product.Seller == "" {
			product.Seller = firstText(e, `[itemprop="seller"], .seller, #seller`)
		}
		if product.Rating == "" {
			product.Rating = firstText(e, `[itemprop="ratingValue"], .rating, #rating`)
		}
		if product.ReviewsCount == "" {
			product.ReviewsCount = firstText(e, `[itemprop="reviewCount"], .reviews-count, #reviews`)
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	s.logger.WithField("url", pageURL).Debug("Scanning product page")

	if err := c.Visit(pageURL); err != nil {
		return product, fmt.Errorf("failed to visit page: %w", err)
	}

	if fetchErr != nil {
		return product, fmt.Errorf("failed to fetch page: %w", fetchErr)
	}

	if product.Title == "" {
		return product, fmt.Errorf("no product title found at %s", pageURL)
	}

	s.logger.WithFields(logrus.Fields{
		"url":   pageURL,
		"title": product.Title,
	}).Debug("Product page scanned")

	return product, nil
}

func firstText(e *colly.HTMLElement, selector string) string {
	return strings.TrimSpace(e.DOM.Find(selector).First().Text())
}
