package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
)

// Attachment is a file sent in a multipart form field.
type Attachment struct {
	Field string
	File  models.FileInfo
	Body  io.Reader
}

// Register posts the registration form with its files to /cadastro. The
// server redirects to /motorista/<id> on success and back to /cadastro when
// it refuses the data (invalid or duplicate CPF).
func (c *Client) Register(ctx context.Context, form models.RegistrationForm, files []Attachment) (string, error) {
	requestID := uuid.NewString()

	req, err := c.multipartRequest(ctx, c.endpoint("/cadastro"), form.Values(), files)
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return "", fmt.Errorf("register: unexpected status %d", resp.StatusCode)
	}

	loc, err := resp.Location()
	if err != nil {
		return "", fmt.Errorf("register: redirect without location: %w", err)
	}

	dir, id := path.Split(loc.Path)
	if strings.HasSuffix(dir, "/motorista/") && id != "" {
		c.log.Info("driver registered", logger.String("driver_id", id), logger.String("request_id", requestID))
		return id, nil
	}

	c.log.Warning("registration bounced", logger.String("location", loc.Path), logger.String("request_id", requestID))
	return "", ErrRejected
}

// UploadPayslip sends one payslip (holerite) for year/month.
func (c *Client) UploadPayslip(ctx context.Context, id, year, month string, file Attachment) (string, error) {
	file.Field = "holerite"
	fields := map[string]string{"ano": year, "mes": month}

	req, err := c.multipartRequest(ctx, c.endpoint("/upload_holerite/"+url.PathEscape(id)), fields, []Attachment{file})
	if err != nil {
		return "", err
	}
	return c.doAction(req)
}

// multipartRequest streams the body through a pipe so large files are never
// buffered whole.
func (c *Client) multipartRequest(ctx context.Context, endpoint string, fields map[string]string, files []Attachment) (*http.Request, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeMultipart(mw, fields, files))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req, nil
}

func writeMultipart(mw *multipart.Writer, fields map[string]string, files []Attachment) error {
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return err
		}
	}

	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.File.Name))
		if f.File.MIME != "" {
			h.Set("Content-Type", f.File.MIME)
		}
		part, err := mw.CreatePart(h)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f.Body); err != nil {
			return fmt.Errorf("copy %s: %w", f.Field, err)
		}
	}

	return mw.Close()
}
