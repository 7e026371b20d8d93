package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/dmitrijs2005/gownshop/internal/common"
)

// FormField is one plain value of a multipart form.
type FormField struct {
	Name  string
	Value string
}

// FormFile is one file part of a multipart form.
type FormFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     io.Reader
}

// MultipartForm is the body of an Upload call, written in field order.
type MultipartForm struct {
	Fields []FormField
	Files  []FormFile
}

// Upload sends form as multipart/form-data. Authorization, pass-through
// headers and error translation are the same as for Request.
func (c *HTTPClient) Upload(ctx context.Context, method, path string, form *MultipartForm) (json.RawMessage, error) {
	if c.baseURL == "" {
		return nil, ErrBaseURLNotSet
	}

	body, contentType, err := encodeMultipart(form)
	if err != nil {
		return nil, err
	}

	headers := c.BuildHeaders(ctx, nil)
	headers[common.HeaderContentType] = contentType

	return c.do(ctx, strings.ToUpper(method), path, body, headers)
}

func encodeMultipart(form *MultipartForm) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if form != nil {
		for _, f := range form.Fields {
			if err := w.WriteField(f.Name, f.Value); err != nil {
				return nil, "", fmt.Errorf("write form field %q: %w", f.Name, err)
			}
		}
		for _, f := range form.Files {
			part, err := createFilePart(w, f)
			if err != nil {
				return nil, "", err
			}
			if f.Content == nil {
				continue
			}
			if _, err := io.Copy(part, f.Content); err != nil {
				return nil, "", fmt.Errorf("write form file %q: %w", f.FileName, err)
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func createFilePart(w *multipart.Writer, f FormFile) (io.Writer, error) {
	if f.ContentType == "" {
		part, err := w.CreateFormFile(f.FieldName, f.FileName)
		if err != nil {
			return nil, fmt.Errorf("create form file %q: %w", f.FileName, err)
		}
		return part, nil
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(f.FieldName), quoteEscaper.Replace(f.FileName)))
	h.Set(common.HeaderContentType, f.ContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create form file %q: %w", f.FileName, err)
	}
	return part, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")
