// Package client talks to the match service over HTTP and implements
// match.Service for the remote controller.
package client

import (
	"bytes"
	"context"
	"ctchen222/three-in-a-row/internal/api/response"
	"ctchen222/three-in-a-row/internal/game"
	"ctchen222/three-in-a-row/internal/match"
	"ctchen222/three-in-a-row/internal/validator"
	"ctchen222/three-in-a-row/pkg/proto"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// StatusError is a non-2xx answer from the service.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("match service answered %d", e.Status)
	}
	return fmt.Sprintf("match service answered %d: %s", e.Status, e.Message)
}

// Client is a match.Service backed by the HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ match.Service = (*Client)(nil)

// New returns a client for the service at baseURL. Every request is bounded
// by timeout and traced through otelhttp.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) Register(ctx context.Context) (string, error) {
	var out proto.DeviceResponse
	if _, err := c.do(ctx, http.MethodPost, "/devices", nil, &out); err != nil {
		return "", classify(err, nil)
	}
	return out.DeviceID, nil
}

func (c *Client) Stats(ctx context.Context, participantID string) (match.Tally, error) {
	var out proto.DeviceInfoResponse
	path := "/devices/" + url.PathEscape(participantID) + "/info"
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return match.Tally{}, classify(err, nil)
	}
	return match.Tally{Wins: out.Wins, Losses: out.Losses}, nil
}

func (c *Client) Join(ctx context.Context, participantID string, size int) (match.JoinResult, error) {
	var raw json.RawMessage
	req := proto.JoinMatchRequest{DeviceID: participantID, Size: size}
	status, err := c.do(ctx, http.MethodPost, "/matches", req, &raw)
	if err != nil {
		return match.JoinResult{}, classify(err, nil)
	}

	if status == http.StatusAccepted {
		var queued proto.QueuedResponse
		if err := decode(raw, &queued); err != nil {
			return match.JoinResult{}, err
		}
		return match.JoinResult{Queued: true}, nil
	}

	var out proto.MatchResponse
	if err := decode(raw, &out); err != nil {
		return match.JoinResult{}, err
	}
	st, err := matchState(out)
	if err != nil {
		return match.JoinResult{}, err
	}
	return match.JoinResult{State: st}, nil
}

func (c *Client) WaitingStatus(ctx context.Context, participantID string) (match.WaitingStatus, error) {
	var out proto.WaitingStatusResponse
	path := "/matches/waiting-status?device_id=" + url.QueryEscape(participantID)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return match.WaitingStatus{}, classify(err, nil)
	}
	return match.WaitingStatus{
		Matched: out.Status == proto.StatusMatched,
		MatchID: out.MatchID,
		Players: out.Players,
	}, nil
}

func (c *Client) Match(ctx context.Context, matchID string) (match.MatchState, error) {
	var out proto.MatchResponse
	if _, err := c.do(ctx, http.MethodGet, "/matches/"+url.PathEscape(matchID), nil, &out); err != nil {
		return match.MatchState{}, classify(err, nil)
	}
	return matchState(out)
}

func (c *Client) Move(ctx context.Context, matchID, participantID string, row, col int) (match.MatchState, error) {
	var out proto.MoveResponse
	req := proto.MoveRequest{DeviceID: participantID, X: &row, Y: &col}
	path := "/matches/" + url.PathEscape(matchID) + "/moves"
	if _, err := c.do(ctx, http.MethodPost, path, req, &out); err != nil {
		return match.MatchState{}, classify(err, map[int]error{
			http.StatusForbidden:  match.ErrNotYourTurn,
			http.StatusBadRequest: match.ErrIllegalMove,
		})
	}

	board, err := game.BoardFromRows(out.Board)
	if err != nil {
		return match.MatchState{}, fmt.Errorf("%w: %v", match.ErrMalformed, err)
	}
	winner, err := game.ParseResult(string(out.Winner))
	if err != nil {
		return match.MatchState{}, fmt.Errorf("%w: %v", match.ErrMalformed, err)
	}
	if out.NextTurn == "" && !winner.IsFinal() {
		return match.MatchState{}, fmt.Errorf("%w: no next turn in an unfinished match", match.ErrMalformed)
	}
	return match.MatchState{Board: board, Turn: out.NextTurn, Winner: winner}, nil
}

// do sends one request and decodes the envelope's extras into out. out may
// be a *json.RawMessage when the shape depends on the status.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %w", match.ErrTransient, method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: failed to read response: %w", match.ErrTransient, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure response.Error
		_ = json.Unmarshal(payload, &failure)
		return resp.StatusCode, &StatusError{Status: resp.StatusCode, Message: failure.Extras.Message}
	}

	var envelope response.Response[json.RawMessage]
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", match.ErrMalformed, err)
	}
	if !envelope.Success || len(envelope.Extras) == 0 {
		return resp.StatusCode, fmt.Errorf("%w: empty or unsuccessful envelope", match.ErrMalformed)
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = envelope.Extras
		return resp.StatusCode, nil
	}
	return resp.StatusCode, decode(envelope.Extras, out)
}

func decode(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", match.ErrMalformed, err)
	}
	if err := validator.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", match.ErrMalformed, err)
	}
	return nil
}

func matchState(out proto.MatchResponse) (match.MatchState, error) {
	board, err := game.BoardFromRows(out.Board)
	if err != nil {
		return match.MatchState{}, fmt.Errorf("%w: %v", match.ErrMalformed, err)
	}
	if board.Size() != out.Size {
		return match.MatchState{}, fmt.Errorf("%w: board is %dx%d but size is %d", match.ErrMalformed, board.Size(), board.Size(), out.Size)
	}
	winner, err := game.ParseResult(string(out.Winner))
	if err != nil {
		return match.MatchState{}, fmt.Errorf("%w: %v", match.ErrMalformed, err)
	}
	return match.MatchState{
		MatchID: out.MatchID,
		Board:   board,
		Turn:    out.Turn,
		Winner:  winner,
		Players: out.Players,
	}, nil
}

// classify maps a StatusError onto the match package's error classes.
// rejections lists statuses with a meaning specific to the call.
func classify(err error, rejections map[int]error) error {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return err
	}
	if sentinel, ok := rejections[statusErr.Status]; ok {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	if statusErr.Status == http.StatusNotFound {
		return fmt.Errorf("%w: %w", match.ErrNotFound, err)
	}
	return fmt.Errorf("%w: %w", match.ErrTransient, err)
}
