// Package detect is the HTTP client boundary for the external AI
// photo-detection service. The service itself (model loading, inference)
// is a separate deployment; this package only forwards prepared images
// and decodes the typed response.
package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrUnavailable is returned when the detection service cannot be
// reached or reports itself unhealthy.
var ErrUnavailable = errors.New("detection service unavailable")

// BoundingBox locates a detection within the image.
type BoundingBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Object is a single detected item.
type Object struct {
	ClassName   string       `json:"class_name"`
	ClassID     int          `json:"class_id"`
	Confidence  float64      `json:"confidence"`
	BBox        *BoundingBox `json:"bbox,omitempty"`
	Description string       `json:"description,omitempty"`
}

// Summary groups detections sharing a class name.
type Summary struct {
	ClassName     string  `json:"class_name"`
	Count         int     `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// Response is the detection service's answer for one image.
type Response struct {
	Success          bool      `json:"success"`
	Detections       []Object  `json:"detections"`
	Summary          []Summary `json:"summary"`
	TotalObjects     int       `json:"total_objects"`
	ProcessingTimeMs float64   `json:"processing_time_ms"`
	ImageWidth       int       `json:"image_width"`
	ImageHeight      int       `json:"image_height"`
	Error            string    `json:"error,omitempty"`
}

// Client talks to one detection service instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a detection client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Detect uploads an image and returns the detected objects.
func (c *Client) Detect(ctx context.Context, imageData []byte, filename string) (*Response, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("writing image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/detect", &body)
	if err != nil {
		return nil, fmt.Errorf("building detect request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return nil, ErrUnavailable
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detection service returned %d", resp.StatusCode)
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding detection response: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("detection failed: %s", result.Error)
	}

	return &result, nil
}
