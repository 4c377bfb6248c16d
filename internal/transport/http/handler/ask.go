package handler

import (
	"encoding/json"
	stdhttp "net/http"

	"github.com/fatih/color"

	DTO_http "ask_relay/internal/DTO/http"
	DTO_llm "ask_relay/internal/DTO/llm"
	"ask_relay/internal/service/ask"
)

// NewAskHandler serves POST /ask. A body that is missing, malformed or
// lacks "question" is not rejected: the question is forwarded as absent.
func NewAskHandler(svc ask.Ask) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		var req DTO_http.Request
		// numbers stay json.Number so the prompt carries them verbatim
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			color.Yellow("ask: request body not decoded, question is absent: %v", err)
			req = DTO_http.Request{}
		}

		switch out := svc.Ask(r.Context(), req.Question).(type) {
		case DTO_llm.Succeeded:
			color.Green("%s", out.Answer)
			writeJSON(w, stdhttp.StatusOK, DTO_http.AnswerResponse{Answer: out.Answer})
		case DTO_llm.Failed:
			color.Red("%s", out.Message)
			writeJSON(w, stdhttp.StatusInternalServerError, DTO_http.ErrorResponse{Error: out.Message})
		default:
			color.Red("ask: unexpected outcome %T", out)
			writeJSON(w, stdhttp.StatusInternalServerError, DTO_http.ErrorResponse{Error: "unexpected outcome"})
		}
	}
}

func writeJSON(w stdhttp.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
