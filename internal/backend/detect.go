package backend

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"packsight/internal/models"
)

// DetectDamage submits one image for damage analysis. One file per call; the
// wizard iterates over its captured set sequentially.
func (c *Client) DetectDamage(ctx context.Context, filename string, r io.Reader) (models.DetectionResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return models.DetectionResult{}, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return models.DetectionResult{}, err
	}
	if err := mw.Close(); err != nil {
		return models.DetectionResult{}, err
	}
	var res models.DetectionResult
	err = c.do(ctx, http.MethodPost, "/api/v1/ml/detect-damage", &body, mw.FormDataContentType(), &res)
	return res, err
}
