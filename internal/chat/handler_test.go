package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaflink/internal/model"
)

// stubSource implementa catalog.Source para los tests.
type stubSource struct {
	products []model.Product
	err      error
	calls    int
}

func (s *stubSource) Load(ctx context.Context) ([]model.Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func postChat(t *testing.T, h http.HandlerFunc, body string) (*httptest.ResponseRecorder, ChatResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	w := httptest.NewRecorder()
	h(w, req)

	var resp ChatResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return w, resp
}

func TestChatEndToEnd(t *testing.T) {
	source := &stubSource{products: []model.Product{
		{Tipo: "planta", Nombre: "Monstera", Atributo1: "Monstera deliciosa", Descripcion: "Planta de interior", PrecioMXN: 350, Stock: 5},
	}}
	client := &stubCompletion{answer: "Sí, tenemos Monstera.\n"}
	h := Handler(source, &Generator{Client: client})

	w, resp := postChat(t, h, `{"message":"¿tienen plantas de interior?"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sí, tenemos Monstera.", resp.Response)

	// El contexto que llego a la IA trae el producto filtrado y su precio
	require.Equal(t, 1, client.calls)
	assert.Contains(t, client.gotReq.Messages[1].Content, "Monstera")
	assert.Contains(t, client.gotReq.Messages[1].Content, "350")
}

func TestChatEmptyMessage(t *testing.T) {
	source := &stubSource{}
	client := &stubCompletion{answer: "no debería llamarse"}
	h := Handler(source, &Generator{Client: client})

	w, resp := postChat(t, h, `{"message":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Por favor, escribe un mensaje.", resp.Response)
	assert.Zero(t, source.calls)
	assert.Zero(t, client.calls)
}

func TestChatMalformedBody(t *testing.T) {
	source := &stubSource{}
	client := &stubCompletion{}
	h := Handler(source, &Generator{Client: client})

	w, resp := postChat(t, h, `{{{`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Por favor, escribe un mensaje.", resp.Response)
	assert.Zero(t, client.calls)
}

func TestChatCatalogUnavailable(t *testing.T) {
	source := &stubSource{err: errors.New("open leaflink_catalogo.csv: no such file or directory")}
	client := &stubCompletion{}
	h := Handler(source, &Generator{Client: client})

	w, resp := postChat(t, h, `{"message":"¿tienen plantas?"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Lo siento, no puedo acceder al catálogo en este momento.", resp.Response)
	assert.Zero(t, client.calls)
}

func TestChatProviderFailureIsStillOK(t *testing.T) {
	source := &stubSource{products: testCatalog()}
	client := &stubCompletion{err: errors.New("quota exceeded")}
	h := Handler(source, &Generator{Client: client})

	w, resp := postChat(t, h, `{"message":"¿tienen plantas?"}`)

	// Las fallas del proveedor son parte de la conversacion, no errores HTTP
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, quotaFallback, resp.Response)
}

// panickingCompletion simula una falla no controlada dentro del pipeline.
type panickingCompletion struct{}

func (panickingCompletion) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	panic("conexion perdida con el proveedor")
}

func TestChatUnexpectedErrorReturnsFixedMessage(t *testing.T) {
	source := &stubSource{products: testCatalog()}
	h := Handler(source, &Generator{Client: panickingCompletion{}})

	w, resp := postChat(t, h, `{"message":"¿tienen plantas?"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Lo siento, hubo un error al procesar tu mensaje.", resp.Response)
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	HealthHandler()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "LeafLink Bot está funcionando correctamente", body["message"])
}
