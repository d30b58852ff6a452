package documents

import (
	"encoding/base64"
	"errors"
	"strings"

	"beneficios_inss/internal/domain/entities"
)

var ErrNotDataURL = errors.New("location is not a data url")

// EncodeDataURL embeds an upload as a self-contained data URL.
func EncodeDataURL(u entities.DocumentUpload) string {
	ct := NormalizeType(u.ContentType)
	if ct == "" {
		ct = "application/octet-stream"
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(u.Content)
}

// EncodedDataURLLen is len(EncodeDataURL(u)) without encoding the payload.
func EncodedDataURLLen(u entities.DocumentUpload) int64 {
	ct := NormalizeType(u.ContentType)
	if ct == "" {
		ct = "application/octet-stream"
	}
	return int64(len("data:"+ct+";base64,") + base64.StdEncoding.EncodedLen(len(u.Content)))
}

// DecodeDataURL returns the content type and payload of an embedded document.
func DecodeDataURL(location string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(location, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	ct, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, ErrNotDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	if ct == "" {
		ct = "text/plain"
	}
	return ct, raw, nil
}
