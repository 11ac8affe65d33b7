// Package contact validates and submits the contact form.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrEmailInvalid = errors.New("a valid email address is required")
	ErrBodyRequired = errors.New("message is required")
	ErrBodyTooLong  = errors.New("message is too long")
)

// MaxBodyLength bounds the message body in runes.
const MaxBodyLength = 4000

// Message is a contact form submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// Normalize trims surrounding whitespace from every field.
func (m Message) Normalize() Message {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Body = strings.TrimSpace(m.Body)
	return m
}

// Validate returns every field error joined, or nil.
func (m Message) Validate() error {
	m = m.Normalize()
	var errs []error
	if m.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email {
		errs = append(errs, ErrEmailInvalid)
	}
	switch {
	case m.Body == "":
		errs = append(errs, ErrBodyRequired)
	case len([]rune(m.Body)) > MaxBodyLength:
		errs = append(errs, ErrBodyTooLong)
	}
	return errors.Join(errs...)
}

// Submitter delivers a validated message.
type Submitter interface {
	Submit(ctx context.Context, m Message) error
}

// Simulated pretends to send the message after Delay. It is the default
// when no contact endpoint is configured.
type Simulated struct {
	Delay time.Duration
}

func (s Simulated) Submit(ctx context.Context, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// HTTPSubmitter posts the message as JSON to a content server.
type HTTPSubmitter struct {
	URL        string
	HTTPClient *http.Client
}

func NewHTTPSubmitter(url string) *HTTPSubmitter {
	return &HTTPSubmitter{
		URL:        url,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, m Message) error {
	m = m.Normalize()
	if err := m.Validate(); err != nil {
		return err
	}
	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("contact API error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return nil
}
