package sharedstore

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"

	"lp-publisher/internal/core/domain"
)

const gzipSuffix = ".gz"

// codec turns values into stored documents and back. With gzip enabled
// documents are compressed and stored under "<key>.gz".
type codec struct {
	gzip bool
}

func (c codec) objectKey(key string) string {
	if c.gzip {
		return key + gzipSuffix
	}
	return key
}

func (c codec) contentType() string {
	if c.gzip {
		return "application/gzip"
	}
	return "application/json"
}

func (c codec) encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	if !c.gzip {
		return data, nil
	}
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err = zw.Write(data); err != nil {
		return nil, fmt.Errorf("compress document: %w", err)
	}
	if err = zw.Close(); err != nil {
		return nil, fmt.Errorf("compress document: %w", err)
	}
	return buf.Bytes(), nil
}

// decode reports undecodable content as a malformed report since the
// only documents this service reads are partner delivery reports.
func (c codec) decode(data []byte, dst any) error {
	if c.gzip {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrMalformedReport, err)
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrMalformedReport, err)
		}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedReport, err)
	}
	return nil
}
