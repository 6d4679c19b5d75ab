// Package anki talks to a local AnkiConnect endpoint over HTTP. Every call
// is a JSON envelope {action, version, params} answered by {result, error}.
// Failures here are never fatal to the host: callers surface them as a
// notice and abort the current operation.
package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const connectVersion = 6

// DefaultURL is where AnkiConnect listens out of the box.
const DefaultURL = "http://127.0.0.1:8765"

// ErrBackend marks transport and RPC-level failures: unreachable endpoint,
// malformed response, or a non-empty error field in the envelope.
var ErrBackend = errors.New("scheduling backend error")

// Client is a thin request/response wrapper around one AnkiConnect endpoint.
type Client struct {
	url    string
	hc     *http.Client
	logger *log.Logger
}

func NewClient(url string, logger *log.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:    url,
		hc:     &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type envelope struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// invoke posts one envelope and decodes the result field into out (skipped
// when out is nil).
func (c *Client) invoke(ctx context.Context, action string, params, out any) error {
	body, err := json.Marshal(envelope{Action: action, Version: connectVersion, Params: params})
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrBackend, action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackend, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s unreachable: %v", ErrBackend, c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrBackend, action, resp.StatusCode)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return fmt.Errorf("%w: malformed response to %s: %v", ErrBackend, action, err)
	}
	if r.Error != nil && *r.Error != "" {
		return fmt.Errorf("%w: %s: %s", ErrBackend, action, *r.Error)
	}

	if out != nil {
		if err := json.Unmarshal(r.Result, out); err != nil {
			return fmt.Errorf("%w: malformed result for %s: %v", ErrBackend, action, err)
		}
	}

	c.logger.Debug("rpc ok", "action", action)
	return nil
}

// DeckNames lists every deck known to the backend.
func (c *Client) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invoke(ctx, "deckNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// FindDueCards returns the ids of cards due for review in the named deck.
func (c *Client) FindDueCards(ctx context.Context, deck string) ([]int64, error) {
	params := map[string]string{
		"query": fmt.Sprintf("deck:%q is:due", deck),
	}
	var ids []int64
	if err := c.invoke(ctx, "findCards", params, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// CardsInfo fetches per-field HTML content for the given card ids.
func (c *Client) CardsInfo(ctx context.Context, ids []int64) ([]CardInfo, error) {
	params := map[string][]int64{"cards": ids}
	var infos []CardInfo
	if err := c.invoke(ctx, "cardsInfo", params, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// AnswerCard submits one review rating. Ease runs 1 (again) to 4 (easy).
func (c *Client) AnswerCard(ctx context.Context, cardID int64, ease int) error {
	params := map[string]any{
		"answers": []map[string]any{
			{"cardId": cardID, "ease": ease},
		},
	}
	return c.invoke(ctx, "answerCards", params, nil)
}

// MediaDirPath asks the backend where it stores referenced media files.
// Older backends do not implement the action; callers fall back to the
// OS-conventional candidates in MediaDir.
func (c *Client) MediaDirPath(ctx context.Context) (string, error) {
	var path string
	if err := c.invoke(ctx, "getMediaDirPath", nil, &path); err != nil {
		return "", err
	}
	return path, nil
}
