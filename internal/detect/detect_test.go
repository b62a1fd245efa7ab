package detect

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fakeService(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestDetect(t *testing.T) {
	client := fakeService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/detect" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if _, _, err := r.FormFile("image"); err != nil {
			t.Errorf("expected image form file: %v", err)
		}

		json.NewEncoder(w).Encode(Response{
			Success:      true,
			TotalObjects: 2,
			Detections: []Object{
				{ClassName: "apple", Confidence: 0.91},
				{ClassName: "apple", Confidence: 0.85},
			},
			Summary: []Summary{{ClassName: "apple", Count: 2, AvgConfidence: 0.88}},
		})
	})

	result, err := client.Detect(context.Background(), []byte("fake image"), "photo.jpg")
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if result.TotalObjects != 2 {
		t.Errorf("expected 2 objects, got %d", result.TotalObjects)
	}
	if len(result.Summary) != 1 || result.Summary[0].ClassName != "apple" {
		t.Errorf("unexpected summary: %+v", result.Summary)
	}
}

func TestDetectServiceUnavailable(t *testing.T) {
	client := fakeService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Detect(context.Background(), []byte("fake image"), "photo.jpg")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestDetectUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.Detect(context.Background(), []byte("fake image"), "photo.jpg")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestDetectReportedFailure(t *testing.T) {
	client := fakeService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Success: false, Error: "could not decode image"})
	})

	_, err := client.Detect(context.Background(), []byte("fake image"), "photo.jpg")
	if err == nil {
		t.Error("expected error for unsuccessful detection")
	}
}
