package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"romancalc/internal/domain"
)

// HTTP talks to a calcd server at Base.
type HTTP struct {
	Base    string
	Timeout time.Duration

	mu      sync.Mutex
	clients map[domain.SessionID]*http.Client
}

// NewHTTP returns a client for the server at base, e.g. http://localhost:8080.
func NewHTTP(base string) *HTTP {
	return &HTTP{
		Base:    strings.TrimRight(base, "/"),
		Timeout: 10 * time.Second,
		clients: make(map[domain.SessionID]*http.Client),
	}
}

var _ domain.CalculatorService = (*HTTP)(nil)

type stateResponse struct {
	Display string       `json:"display"`
	State   domain.State `json:"state"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *HTTP) Press(ctx context.Context, id domain.SessionID, action domain.Action) (domain.Session, error) {
	var out stateResponse
	in := struct {
		Action string `json:"action"`
	}{Action: action.String()}
	if err := c.do(ctx, id, http.MethodPost, "/v1/press", in, &out); err != nil {
		return domain.Session{}, err
	}
	return session(id, out), nil
}

func (c *HTTP) PressAll(ctx context.Context, id domain.SessionID, actions []domain.Action) (domain.Session, error) {
	if len(actions) == 0 {
		return c.Get(ctx, id)
	}
	var sess domain.Session
	for _, a := range actions {
		var err error
		if sess, err = c.Press(ctx, id, a); err != nil {
			return domain.Session{}, err
		}
	}
	return sess, nil
}

func (c *HTTP) Get(ctx context.Context, id domain.SessionID) (domain.Session, error) {
	var out stateResponse
	if err := c.do(ctx, id, http.MethodGet, "/v1/state", nil, &out); err != nil {
		return domain.Session{}, err
	}
	return session(id, out), nil
}

func (c *HTTP) Reset(ctx context.Context, id domain.SessionID) (domain.Session, error) {
	return c.Press(ctx, id, domain.Clear)
}

// Delete drops the server-side session and forgets its cookie.
func (c *HTTP) Delete(ctx context.Context, id domain.SessionID) error {
	if err := c.do(ctx, id, http.MethodDelete, "/v1/session", nil, nil); err != nil {
		return err
	}
	c.mu.Lock()
	delete(c.clients, id)
	c.mu.Unlock()
	return nil
}

// ToRoman asks the server for the canonical numeral of n.
func (c *HTTP) ToRoman(ctx context.Context, n int) (string, error) {
	var out struct {
		Numeral string `json:"numeral"`
	}
	in := struct {
		Value int `json:"value"`
	}{Value: n}
	if err := c.do(ctx, domain.DefaultSessionID, http.MethodPost, "/v1/convert/to-roman", in, &out); err != nil {
		return "", err
	}
	return out.Numeral, nil
}

// ToInt asks the server for the value of numeral.
func (c *HTTP) ToInt(ctx context.Context, numeral string) (int, error) {
	var out struct {
		Value int `json:"value"`
	}
	in := struct {
		Numeral string `json:"numeral"`
	}{Numeral: numeral}
	if err := c.do(ctx, domain.DefaultSessionID, http.MethodPost, "/v1/convert/to-int", in, &out); err != nil {
		return 0, err
	}
	return out.Value, nil
}

func session(id domain.SessionID, r stateResponse) domain.Session {
	return domain.Session{ID: id, State: r.State, UpdatedUTC: time.Now().UTC().Unix()}
}

func (c *HTTP) client(id domain.SessionID) *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hc, ok := c.clients[id]; ok {
		return hc
	}
	// cookiejar.New only fails on a bad PublicSuffixList, and we pass none.
	jar, _ := cookiejar.New(nil)
	hc := &http.Client{Jar: jar, Timeout: c.Timeout}
	c.clients[id] = hc
	return hc
}

func (c *HTTP) do(ctx context.Context, id domain.SessionID, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return errors.Wrap(err, "encode request")
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return errors.Wrapf(err, "build %s %s", method, path)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client(id).Do(req)
	if err != nil {
		return errors.Wrapf(err, "calcd %s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var e apiError
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("calcd %s %s: %s: %s", method, path, resp.Status, e.Error)
		}
		return fmt.Errorf("calcd %s %s: %s", method, path, resp.Status)
	}
	if out == nil {
		return nil
	}
	return errors.Wrapf(json.NewDecoder(resp.Body).Decode(out), "decode %s response", path)
}
