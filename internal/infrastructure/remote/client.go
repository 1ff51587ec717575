// Package remote implementa repository.Repository sobre la API REST de BlackWoods.
//
// Cada operación del contrato es como mucho una petición HTTP: altas y ediciones se
// preparan y validan igual que en el backend local y, si no son válidas, no se envían.
// Las respuestas llegan
// envueltas en {success, message, data}; cualquier fallo (transporte, timeout, estado
// no 2xx, cuerpo ilegible o success=false) se registra y se devuelve como error de dominio
// junto al valor vacío del contrato (lista vacía, nil o false).
package remote

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
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/blackwoods-compta/internal/application/dto"
	"github.com/jhoicas/blackwoods-compta/internal/domain"
	"github.com/jhoicas/blackwoods-compta/internal/domain/entity"
	"github.com/jhoicas/blackwoods-compta/internal/domain/repository"
	"github.com/jhoicas/blackwoods-compta/pkg/logger"
)

var _ repository.Repository = (*Client)(nil)

// maxBody límite de lectura de una respuesta.
const maxBody = 16 << 20

// Client backend remoto. El token de sesión vive solo en memoria.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger

	mu    sync.RWMutex
	token string
}

// New construye el cliente. timeout acota cada petición además del contexto del llamador.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.Component("remote"),
	}
}

// Info describe la conexión.
func (c *Client) Info() string {
	return "API: " + c.baseURL
}

// Close libera las conexiones ociosas.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Logout descarta el token de sesión.
func (c *Client) Logout() {
	c.setToken("")
}

func (c *Client) setToken(tok string) {
	c.mu.Lock()
	c.token = tok
	c.mu.Unlock()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errMissing el servidor respondió 404 a un update/delete/deliver (resultado false, sin error).
var errMissing = errors.New("recurso inexistente en el servidor")

// codeErrors traduce el código de ErrorResponse al error de dominio.
var codeErrors = map[string]error{
	dto.CodeValidation:        domain.ErrValidation,
	dto.CodeNotFound:          domain.ErrNotFound,
	dto.CodeConflict:          domain.ErrConflict,
	dto.CodeInsufficientStock: domain.ErrInsufficientStock,
	dto.CodeUnauthorized:      domain.ErrUnauthorized,
	dto.CodeForbidden:         domain.ErrUnauthorized,
	"MISSING_TOKEN":           domain.ErrUnauthorized,
	"INVALID_TOKEN":           domain.ErrUnauthorized,
}

// request describe una llamada a la API.
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// send ejecuta la petición y devuelve el estado y el cuerpo crudo.
func (c *Client) send(ctx context.Context, r request) (int, []byte, string, error) {
	reqID := uuid.NewString()
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return 0, nil, reqID, fmt.Errorf("codificar cuerpo: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return 0, nil, reqID, fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, reqID, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return resp.StatusCode, nil, reqID, fmt.Errorf("leer respuesta: %w", err)
	}
	return resp.StatusCode, raw, reqID, nil
}

// call ejecuta r y decodifica data en out (si no es nil).
// Con allowMissing, un 404 devuelve errMissing sin registrarse como fallo.
func (c *Client) call(ctx context.Context, r request, out any, allowMissing bool) error {
	status, raw, reqID, err := c.send(ctx, r)
	if err == nil {
		err = decodeResponse(status, raw, out)
	}
	if err == nil {
		return nil
	}
	if allowMissing && status == http.StatusNotFound {
		return errMissing
	}
	return c.fail(r, status, reqID, err)
}

// decodeResponse interpreta el estado HTTP y el envoltorio {success, message, data}.
func decodeResponse(status int, raw []byte, out any) error {
	if status < 200 || status > 299 {
		var e dto.ErrorResponse
		if json.Unmarshal(raw, &e) == nil && e.Code != "" {
			if derr, ok := codeErrors[e.Code]; ok {
				return fmt.Errorf("HTTP %d %s: %w", status, e.Message, derr)
			}
			return fmt.Errorf("HTTP %d %s: %s", status, e.Code, e.Message)
		}
		return fmt.Errorf("HTTP %d", status)
	}
	var env dto.Envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("respuesta ilegible: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("success=false: %s", env.Message)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("data ilegible: %w", err)
	}
	return nil
}

// rejected errores de dominio que el servidor devuelve como rechazo de la operación.
var rejected = []error{domain.ErrValidation, domain.ErrNotFound, domain.ErrConflict,
	domain.ErrInsufficientStock, domain.ErrUnauthorized}

// fail registra el fallo y lo traduce a error de dominio. Lo que no es
// un error de dominio conocido (transporte, timeout, 5xx) es ErrUnavailable.
func (c *Client) fail(r request, status int, reqID string, err error) error {
	for _, known := range rejected {
		if errors.Is(err, known) {
			c.log.Warn().Err(err).Str("op", r.op).Str("method", r.method).Str("path", r.path).
				Int("status", status).Str("request_id", reqID).Msg("operación rechazada por el servidor")
			return fmt.Errorf("%s: %w", r.op, known)
		}
	}
	c.log.Error().Err(err).Str("op", r.op).Str("method", r.method).Str("path", r.path).
		Int("status", status).Str("request_id", reqID).Msg("fallo de la API remota")
	return fmt.Errorf("%s: %w", r.op, domain.ErrUnavailable)
}

// ── Helpers genéricos por forma de operación ──────────────────────────────────

func list[T any](ctx context.Context, c *Client, op, path string, q url.Values) ([]*T, error) {
	var out []*T
	if err := c.call(ctx, request{op: op, method: http.MethodGet, path: path, query: q}, &out, false); err != nil {
		return []*T{}, err
	}
	if out == nil {
		out = []*T{}
	}
	return out, nil
}

// create prepara una copia de v (defaults, totales, validación) y la envía; una
// entidad inválida se rechaza sin llegar al servidor.
func create[T any](ctx context.Context, c *Client, op, path string, v *T) (*T, error) {
	r := request{op: op, method: http.MethodPost, path: path}
	body := entity.Copy(v)
	if err := entity.Prepare(body); err != nil {
		return nil, c.fail(r, 0, "", err)
	}
	r.body = body
	out := new(T)
	if err := c.call(ctx, r, out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// update prepara y envía una copia de v y, si el servidor la acepta, reemplaza v
// con la entidad devuelta.
func update[T any](ctx context.Context, c *Client, op, path string, v *T) (bool, error) {
	r := request{op: op, method: http.MethodPut, path: path}
	body := entity.Copy(v)
	if err := entity.Prepare(body); err != nil {
		return false, c.fail(r, 0, "", err)
	}
	r.body = body
	out := new(T)
	err := c.call(ctx, r, out, true)
	if errors.Is(err, errMissing) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	*v = *out
	return true, nil
}

func (c *Client) remove(ctx context.Context, op, path string) (bool, error) {
	err := c.call(ctx, request{op: op, method: http.MethodDelete, path: path}, nil, true)
	if errors.Is(err, errMissing) {
		return false, nil
	}
	return err == nil, err
}

func idPath(base string, id int64) string {
	return base + "/" + strconv.FormatInt(id, 10)
}

// values construye una query omitiendo los valores vacíos.
func values(kv ...string) url.Values {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	return q
}

func formatInt64(p *int64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(*p, 10)
}

func formatBool(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}

func formatFlag(b bool) string {
	if !b {
		return ""
	}
	return "true"
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(dto.DateLayout)
}
