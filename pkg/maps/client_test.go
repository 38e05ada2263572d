package maps

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	pkgerrors "github.com/freemanindumentaria/storefront-backend/pkg/errors"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{},
	}
}

func TestClientGeocodeRequest(t *testing.T) {
	respBody := `{"status":"OK","results":[{"formatted_address":"San Alberto 1336, Córdoba","geometry":{"location":{"lat":-31.43,"lng":-64.17}}}]}`

	var capturedURL string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		return jsonResponse(http.StatusOK, respBody), nil
	})

	client, err := NewClient("test-key", WithBaseURL("http://maps.test/api"), WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	candidates, err := client.Geocode(context.Background(), "San Alberto 1336")
	if err != nil {
		t.Fatalf("geocode: %v", err)
	}

	if !strings.HasPrefix(capturedURL, "http://maps.test/api/geocode/json?") {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	if !strings.Contains(capturedURL, "key=test-key") || !strings.Contains(capturedURL, "address=San+Alberto+1336") {
		t.Fatalf("query params missing from %q", capturedURL)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected one candidate, got %d", len(candidates))
	}
	if got := candidates[0].Location; got.Lat() != -31.43 || got.Lon() != -64.17 {
		t.Fatalf("unexpected location %v", got)
	}
}

func TestClientGeocodeZeroResults(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"status":"ZERO_RESULTS","results":[]}`), nil
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	candidates, err := client.Geocode(context.Background(), "nowhere at all")
	if err != nil {
		t.Fatalf("zero results must not error: %v", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("expected empty candidates, got %d", len(candidates))
	}
}

func TestClientGeocodeRejectedStatus(t *testing.T) {
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"status":"REQUEST_DENIED","error_message":"bad key","results":[]}`), nil
	})

	client, err := NewClient("test-key", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Geocode(context.Background(), "San Alberto 1336")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestClientGeocodeBlankAddress(t *testing.T) {
	client, err := NewClient("test-key")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Geocode(context.Background(), "   ")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatal("expected missing key to error")
	}
}
