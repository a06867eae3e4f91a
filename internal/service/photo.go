package service

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/noah-isme/student-control/pkg/config"
	appErrors "github.com/noah-isme/student-control/pkg/errors"
	"github.com/noah-isme/student-control/pkg/storage"
)

// Photo upload outcomes reported to metrics.
const (
	photoStored   = "stored"
	photoRejected = "rejected"
	photoFailed   = "failed"
)

type photoStore interface {
	SaveStream(filename string, r io.Reader) (string, error)
	Delete(filename string) error
}

type photoMetrics interface {
	RecordPhotoUpload(outcome string)
}

// PhotoUpload is an optional image submitted alongside student fields.
type PhotoUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// photoPolicy validates and stores student photos.
type photoPolicy struct {
	store        photoStore
	metrics      photoMetrics
	maxBytes     int64
	allowedMIMEs map[string]struct{}
	now          func() time.Time
}

func newPhotoPolicy(store photoStore, metrics photoMetrics, cfg config.UploadsConfig) *photoPolicy {
	allowed := make(map[string]struct{}, len(cfg.AllowedMIMEs))
	for _, mime := range cfg.AllowedMIMEs {
		allowed[strings.ToLower(mime)] = struct{}{}
	}
	return &photoPolicy{
		store:        store,
		metrics:      metrics,
		maxBytes:     cfg.MaxFileSizeBytes,
		allowedMIMEs: allowed,
		now:          time.Now,
	}
}

// save checks the upload and writes it under a timestamp-prefixed name.
func (p *photoPolicy) save(upload *PhotoUpload) (string, error) {
	if p.store == nil {
		return "", appErrors.Clone(appErrors.ErrInternal, "photo storage not configured")
	}
	if upload.Content == nil {
		p.record(photoRejected)
		return "", appErrors.Clone(appErrors.ErrValidation, "photo is empty")
	}
	if p.maxBytes > 0 && upload.Size > p.maxBytes {
		p.record(photoRejected)
		return "", appErrors.Clone(appErrors.ErrPayloadTooLarge, "photo exceeds the maximum upload size")
	}

	header := make([]byte, 512)
	n, err := io.ReadFull(upload.Content, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		p.record(photoFailed)
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read photo")
	}
	if n == 0 {
		p.record(photoRejected)
		return "", appErrors.Clone(appErrors.ErrValidation, "photo is empty")
	}
	mime := http.DetectContentType(header[:n])
	if !p.allowed(mime) {
		p.record(photoRejected)
		return "", appErrors.Clone(appErrors.ErrUnsupportedMedia, "photo must be an image, got "+mime)
	}

	name := storage.UniqueName(upload.Filename, p.now())
	content := io.MultiReader(bytes.NewReader(header[:n]), upload.Content)
	if _, err := p.store.SaveStream(name, content); err != nil {
		p.record(photoFailed)
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store photo")
	}
	p.record(photoStored)
	return name, nil
}

func (p *photoPolicy) allowed(mime string) bool {
	mime = strings.ToLower(strings.TrimSpace(strings.SplitN(mime, ";", 2)[0]))
	if len(p.allowedMIMEs) == 0 {
		return strings.HasPrefix(mime, "image/")
	}
	_, ok := p.allowedMIMEs[mime]
	return ok
}

func (p *photoPolicy) remove(name string) error {
	if p.store == nil || name == "" {
		return nil
	}
	return p.store.Delete(name)
}

func (p *photoPolicy) record(outcome string) {
	if p.metrics != nil {
		p.metrics.RecordPhotoUpload(outcome)
	}
}
