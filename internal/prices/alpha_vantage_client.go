package prices

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var _ PriceSource = AlphaVantageClient{}

// AlphaVantageClient fetches end-of-day quotes from the Alpha Vantage
// GLOBAL_QUOTE endpoint. The free tier is rate limited to a handful of
// calls per minute, so a limited request sleeps and retries once.
type AlphaVantageClient struct {
	HttpClient *http.Client
	ApiKey     string
}

type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol           string `json:"symbol"`
		Price            string `json:"price"`
		LatestTradingDay string `json:"latest trading day"`
	} `json:"Global Quote"`
	Note string `json:"Note"`
}

func (c AlphaVantageClient) GetLatestPrice(symbol string) (*Quote, error) {
	quote, err := c.fetchQuote(symbol)
	if err != nil {
		return nil, err
	}
	if strings.Contains(quote.Note, "API call frequency") {
		time.Sleep(time.Minute)
		quote, err = c.fetchQuote(symbol)
		if err != nil {
			return nil, err
		}
		if quote.Note != "" {
			return nil, fmt.Errorf("alpha vantage still rate limited for %s", symbol)
		}
	}

	price, err := decimal.NewFromString(quote.GlobalQuote.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price %q for %s: %w", quote.GlobalQuote.Price, symbol, err)
	}
	asOf, err := time.Parse("2006-01-02", quote.GlobalQuote.LatestTradingDay)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latest trading day for %s: %w", symbol, err)
	}

	return &Quote{
		Symbol: quote.GlobalQuote.Symbol,
		Price:  price,
		AsOf:   asOf,
	}, nil
}

func (c AlphaVantageClient) fetchQuote(symbol string) (*globalQuoteResponse, error) {
	url := fmt.Sprintf("https://www.alphavantage.co/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s", symbol, c.ApiKey)
	response, err := c.HttpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alpha vantage returned status %d for %s", response.StatusCode, symbol)
	}
	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	var out globalQuoteResponse
	err = json.Unmarshal(cleanResponseBody(responseBytes), &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// the quote payload prefixes every key with an index ("05. price"),
// which this strips before decoding.
func cleanResponseBody(bytes []byte) []byte {
	r := regexp.MustCompile("\"[0-9]+\\. ")
	return r.ReplaceAll(bytes, []byte("\""))
}
