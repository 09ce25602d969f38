package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

var (
	ErrRemoteRejected  = errors.New("record store rejected the request")
	errMissingEndpoint = errors.New("record store base url is required")
)

// envelope is the response body of every remote call.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Total   int             `json:"total"`
	Results []Result        `json:"results"`
}

type fetchRequest struct {
	Fields  []string        `json:"fields,omitempty"`
	Where   dto.FilterGroup `json:"where"`
	Page    int             `json:"page,omitempty"`
	Limit   int             `json:"limit,omitempty"`
	SortBy  string          `json:"sort_by,omitempty"`
	SortDir string          `json:"sort_dir,omitempty"`
}

type countRequest struct {
	Where dto.FilterGroup `json:"where"`
}

type writeRequest struct {
	Records []Record `json:"records"`
}

type deleteRequest struct {
	IDs []int64 `json:"ids"`
}

// Remote talks to the hosted record store over its JSON API. The project id
// and API key are sent with every request.
type Remote struct {
	baseURL   string
	projectID string
	apiKey    string
	client    *http.Client
	otel      otel.Otel
}

func NewRemote(cfg *config.Config, ot otel.Otel) (*Remote, error) {
	remote := cfg.RecordStore.Remote
	if remote.BaseURL == constant.Empty {
		return nil, errMissingEndpoint
	}

	timeout := time.Duration(remote.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Remote{
		baseURL:   strings.TrimRight(remote.BaseURL, "/"),
		projectID: remote.ProjectID,
		apiKey:    remote.APIKey,
		client:    &http.Client{Timeout: timeout},
		otel:      ot,
	}, nil
}

func (r *Remote) Fetch(ctx context.Context, table string, query Query) (records []Record, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelStoreScopeName+".remote.Fetch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTableAttributeKey, table)

	if err = validateQuery(table, query); err != nil {
		return nil, err
	}

	body := fetchRequest{
		Fields:  query.Fields,
		Where:   query.Where,
		Page:    query.Params.Page,
		Limit:   query.Params.Limit,
		SortBy:  query.Params.SortBy,
		SortDir: query.Params.SortDir,
	}

	env, err := r.do(ctx, http.MethodPost, r.tableURL(table, "records", "query"), body)
	if err != nil {
		return []Record{}, fmt.Errorf("failed to fetch %s: %w", table, err)
	}

	records = []Record{}
	if err = decodeData(env.Data, &records); err != nil {
		return []Record{}, fmt.Errorf("failed to decode %s: %w", table, err)
	}

	return records, nil
}

func (r *Remote) Count(ctx context.Context, table string, where dto.FilterGroup) (count int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelStoreScopeName+".remote.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateQuery(table, Query{Where: where}); err != nil {
		return 0, err
	}

	env, err := r.do(ctx, http.MethodPost, r.tableURL(table, "records", "count"), countRequest{Where: where})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	return env.Total, nil
}

func (r *Remote) Get(ctx context.Context, table string, id int64, fields ...string) (record Record, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelStoreScopeName+".remote.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateIdentifiers(append([]string{table}, fields...)...); err != nil {
		return nil, err
	}

	endpoint := r.tableURL(table, "records", strconv.FormatInt(id, 10))
	if len(fields) > 0 {
		endpoint += "?" + url.Values{"fields": {strings.Join(fields, constant.Comma)}}.Encode()
	}

	env, err := r.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", table, id, err)
	}

	if err = decodeData(env.Data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode %s %d: %w", table, id, err)
	}

	if record == nil {
		return nil, fmt.Errorf("%s %d: %w", table, id, ErrNotFound)
	}

	return record, nil
}

func (r *Remote) Create(ctx context.Context, table string, records ...Record) (results []Result, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelStoreScopeName+".remote.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.write(ctx, http.MethodPost, table, writeRequest{Records: records}, len(records))
}

func (r *Remote) Update(ctx context.Context, table string, records ...Record) (results []Result, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelStoreScopeName+".remote.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for _, record := range records {
		if _, ok := record.ID(); !ok {
			return nil, ErrMissingID
		}
	}

	return r.write(ctx, http.MethodPatch, table, writeRequest{Records: records}, len(records))
}

func (r *Remote) Delete(ctx context.Context, table string, ids ...int64) (results []Result, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelStoreScopeName+".remote.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.write(ctx, http.MethodDelete, table, deleteRequest{IDs: ids}, len(ids))
}

func (r *Remote) Close() error {
	r.client.CloseIdleConnections()

	return nil
}

func (r *Remote) write(ctx context.Context, method, table string, body any, expected int) ([]Result, error) {
	if err := validateIdentifiers(table); err != nil {
		return nil, err
	}

	env, err := r.do(ctx, method, r.tableURL(table, "records"), body)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", table, err)
	}

	if len(env.Results) != expected {
		return nil, fmt.Errorf("%w: expected %d results, got %d", ErrRemoteRejected, expected, len(env.Results))
	}

	return env.Results, nil
}

func (r *Remote) tableURL(table string, parts ...string) string {
	segments := append([]string{r.baseURL, "tables", url.PathEscape(table)}, parts...)

	return strings.Join(segments, "/")
}

func (r *Remote) do(ctx context.Context, method, endpoint string, body any) (*envelope, error) {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderProjectID, r.projectID)
	req.Header.Set(constant.RequestHeaderAPIKey, r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", endpoint).Msg("record store request failed")

		return nil, fmt.Errorf("record store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	env := &envelope{}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	if err := decoder.Decode(env); err != nil {
		return nil, fmt.Errorf("failed to decode record store response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		return nil, fmt.Errorf("%w: %s", ErrRemoteRejected, env.Message)
	}

	return env, nil
}

func decodeData(raw json.RawMessage, target any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	return decoder.Decode(target) //nolint:wrapcheck
}
