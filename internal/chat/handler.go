package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"leaflink/internal/catalog"
	"leaflink/internal/observability"
)

const (
	emptyMessagePrompt = "Por favor, escribe un mensaje."

	catalogUnavailableMessage = "Lo siento, no puedo acceder al catálogo en este momento."

	unexpectedErrorMessage = "Lo siento, hubo un error al procesar tu mensaje."
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Handler procesa POST /chat: carga el catalogo, filtra los productos
// relevantes y genera la respuesta con la IA. Los detalles de error se
// loguean para operaciones; al cliente solo le llegan mensajes fijos.
func Handler(source catalog.Source, generator *Generator) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()

		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[Chat] %s | Error inesperado: %v", reqID, rec)
				writeJSON(w, http.StatusInternalServerError, ChatResponse{Response: unexpectedErrorMessage})
			}
		}()

		observability.ChatRequestsTotal.Inc()

		var req ChatRequest
		json.NewDecoder(r.Body).Decode(&req)

		if req.Message == "" {
			writeJSON(w, http.StatusBadRequest, ChatResponse{Response: emptyMessagePrompt})
			return
		}

		log.Printf("[Chat] %s | Mensaje recibido: %s", reqID, req.Message)

		products, err := source.Load(r.Context())
		if err != nil {
			observability.CatalogLoadFailures.Inc()
			log.Printf("[Chat] %s | Error al cargar el catalogo: %v", reqID, err)
			writeJSON(w, http.StatusInternalServerError, ChatResponse{Response: catalogUnavailableMessage})
			return
		}

		relevant := FilterRelevantProducts(products, req.Message)

		answer := generator.Generate(r.Context(), req.Message, relevant)

		log.Printf("[Chat] %s | Respuesta generada: %s", reqID, answer)

		writeJSON(w, http.StatusOK, ChatResponse{Response: answer})
	}
}

// HealthHandler responde el estado fijo del servicio, sin efectos.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "LeafLink Bot está funcionando correctamente",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
