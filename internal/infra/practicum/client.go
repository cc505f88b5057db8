// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"
)

// DefaultEndpoint is the Practicum homework status API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

const unreachableMessage = "Не удается связаться с конечной точкой."

// Response is the decoded top level JSON object of the status API.
type Response map[string]json.RawMessage

// Client fetches homework statuses for one account.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(endpoint, token string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch requests statuses updated since fromDate (unix seconds).
// A zero fromDate means "now".
func (c *Client) Fetch(ctx context.Context, fromDate int64) (Response, error) {
	if fromDate == 0 {
		fromDate = c.now().Unix()
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, homework.Wrap(err, homework.KindServiceUnavailable, unreachableMessage)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, homework.Wrap(err, homework.KindServiceUnavailable, unreachableMessage)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, homework.Wrap(err, homework.KindServiceUnavailable, unreachableMessage)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, homework.Newf(homework.KindServiceUnavailable,
			"Конечная точка %s недоступна, http status: %d", c.endpoint, resp.StatusCode)
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, homework.Wrap(err, homework.KindMalformedResponse,
			fmt.Sprintf("Ответ API не является JSON-объектом: %v", err))
	}
	return body, nil
}
