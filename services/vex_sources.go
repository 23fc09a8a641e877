// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/l3montree-dev/cryptoguard/common"
	"github.com/l3montree-dev/cryptoguard/dtos"
	"github.com/l3montree-dev/cryptoguard/normalize"
	"github.com/l3montree-dev/cryptoguard/shared"
	"github.com/l3montree-dev/cryptoguard/utils"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

func newCollection(cbomID string, docs []dtos.VexDocument) dtos.VexCollection {
	collection := dtos.VexCollection{
		CBOMID:    cbomID,
		Documents: docs,
	}
	for _, d := range docs {
		if d.UpdatedAt.After(collection.LastUpdated) {
			collection.LastUpdated = d.UpdatedAt
		}
	}
	return collection
}

// RepositoryVexSource serves the documents uploaded through the api.
type RepositoryVexSource struct {
	vexDocumentRepository shared.VexDocumentRepository
}

func NewRepositoryVexSource(vexDocumentRepository shared.VexDocumentRepository) *RepositoryVexSource {
	return &RepositoryVexSource{vexDocumentRepository: vexDocumentRepository}
}

func (s *RepositoryVexSource) FetchVexDocuments(ctx context.Context, cbomID string) (dtos.VexCollection, error) {
	docs, err := s.vexDocumentRepository.FindByCBOMID(cbomID)
	if err != nil {
		return dtos.VexCollection{}, err
	}
	return newCollection(cbomID, docs), nil
}

// FileVexSource reads <dir>/<inventory id>.json. A missing file means there is no vex data.
type FileVexSource struct {
	dir string
}

func NewFileVexSource(dir string) *FileVexSource {
	return &FileVexSource{dir: dir}
}

func (s *FileVexSource) FetchVexDocuments(ctx context.Context, cbomID string) (dtos.VexCollection, error) {
	if cbomID == "" || filepath.Base(cbomID) != cbomID || strings.HasPrefix(cbomID, ".") {
		return dtos.VexCollection{}, errors.Errorf("invalid inventory id %q", cbomID)
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, cbomID+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return newCollection(cbomID, []dtos.VexDocument{}), nil
		}
		return dtos.VexCollection{}, errors.Wrap(err, "could not read vex file")
	}

	docs, err := normalize.ParseVexDocuments(raw, cbomID)
	if err != nil {
		return dtos.VexCollection{}, err
	}
	return newCollection(cbomID, docs), nil
}

// HTTPVexSource fetches the vex collection of an inventory from a remote feed.
// The feed is expected to answer GET {baseURL}/api/v1/inventories/{id}/vex/, which is what
// another cryptoguard instance serves. Any vex format understood by normalize is accepted.
type HTTPVexSource struct {
	baseURL    string
	token      string
	client     *http.Client
	limiter    *rate.Limiter
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

func NewHTTPVexSource(baseURL string, requestsPerSecond float64) *HTTPVexSource {
	client := &http.Client{Timeout: 30 * time.Second}
	common.WrapHTTPClient(client,
		common.NewDeduplicationTransport().Handler(),
		common.NewCacheTransport(100, 5*time.Minute).Handler(),
	)

	burst := int(requestsPerSecond)
	if burst < 1 {
		burst = 1
	}

	return &HTTPVexSource{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		client:     client,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		maxRetries: 3,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// WithToken sends the token as bearer authorization with every request.
func (s *HTTPVexSource) WithToken(token string) *HTTPVexSource {
	s.token = token
	return s
}

func (s *HTTPVexSource) FetchVexDocuments(ctx context.Context, cbomID string) (dtos.VexCollection, error) {
	endpoint := fmt.Sprintf("%s/api/v1/inventories/%s/vex/", s.baseURL, url.PathEscape(cbomID))

	var docs []dtos.VexDocument
	operation := func() error {
		if err := s.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		if s.token != "" {
			req.Header.Set("Authorization", "Bearer "+s.token)
		}

		res, err := s.client.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		switch {
		case res.StatusCode == http.StatusNotFound:
			docs = []dtos.VexDocument{}
			return nil
		case res.StatusCode >= 500 || res.StatusCode == http.StatusTooManyRequests:
			return errors.Errorf("vex feed answered with %s", res.Status)
		case res.StatusCode != http.StatusOK:
			return backoff.Permanent(errors.Errorf("vex feed answered with %s", res.Status))
		}

		raw, err := io.ReadAll(io.LimitReader(res.Body, shared.MaxVexDocumentSize+1))
		if err != nil {
			return err
		}
		if len(raw) > shared.MaxVexDocumentSize {
			return backoff.Permanent(errors.Errorf("vex feed response exceeds %d bytes", shared.MaxVexDocumentSize))
		}
		parsed, err := normalize.ParseVexDocuments(raw, cbomID)
		if err != nil {
			return backoff.Permanent(err)
		}
		docs = parsed
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(s.newBackOff(), s.maxRetries), ctx)
	err := backoff.RetryNotify(operation, b, func(err error, next time.Duration) {
		slog.Debug("retrying vex fetch", "url", endpoint, "err", err, "next", next)
	})
	if err != nil {
		return dtos.VexCollection{}, errors.Wrap(err, "could not fetch vex documents")
	}
	return newCollection(cbomID, docs), nil
}

// MultiVexSource asks all sources concurrently. The documents are concatenated in source
// order, so the first source wins on conflicting judgements. Failing sources are skipped
// as long as at least one source answered.
type MultiVexSource struct {
	sources []shared.VexSource
}

func NewMultiVexSource(sources ...shared.VexSource) *MultiVexSource {
	return &MultiVexSource{sources: sources}
}

func (s *MultiVexSource) FetchVexDocuments(ctx context.Context, cbomID string) (dtos.VexCollection, error) {
	results := make([][]dtos.VexDocument, len(s.sources))
	errs := make([]error, len(s.sources))

	// every goroutine owns its index, failures are collected instead of returned
	var g errgroup.Group
	for i, source := range s.sources {
		i, source := i, source
		g.Go(func() error {
			collection, err := source.FetchVexDocuments(ctx, cbomID)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = collection.Documents
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return dtos.VexCollection{}, err
	}

	failed := utils.Filter(errs, func(err error) bool { return err != nil })
	if len(s.sources) > 0 && len(failed) == len(s.sources) {
		return dtos.VexCollection{}, failed[0]
	}
	for i, err := range errs {
		if err != nil {
			slog.Warn("vex source failed, continuing with the remaining sources", "source", i, "err", err)
		}
	}

	docs := utils.DeduplicateSlice(utils.Flat(results), func(d dtos.VexDocument) string {
		return d.ID
	})
	return newCollection(cbomID, docs), nil
}

// NewVexSource combines the uploaded documents with the configured file and http feeds.
func NewVexSource(config shared.ServerConfig, vexDocumentRepository shared.VexDocumentRepository) shared.VexSource {
	sources := []shared.VexSource{NewRepositoryVexSource(vexDocumentRepository)}
	if config.VexSourceDir != "" {
		sources = append(sources, NewFileVexSource(config.VexSourceDir))
	}
	if config.VexSourceURL != "" {
		sources = append(sources, NewHTTPVexSource(config.VexSourceURL, config.VexRateLimit).WithToken(config.VexSourceToken))
	}
	if len(sources) == 1 {
		return sources[0]
	}
	return NewMultiVexSource(sources...)
}
