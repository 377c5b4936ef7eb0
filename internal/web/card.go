package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kapu/namevibes-bot/internal/domain"
	"go.uber.org/zap"
)

//go:embed templates/card.html
var cardFS embed.FS

var cardTemplate = template.Must(
	template.New("card.html").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(cardFS, "templates/card.html"),
)

type cardData struct {
	Title       string
	Description string
	Reading     *domain.Reading
}

// handleCard renders a shareable HTML page for one name.
func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rd, err := s.readings.Get(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, newCardData(rd)); err != nil {
		s.logger.Error("Failed to render card", zap.String("name", rd.Name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(buf.Bytes())
}

func newCardData(rd *domain.Reading) cardData {
	symbols := rd.Symbols()
	desc := "원소로 만들 수 없는 이름"
	if len(symbols) > 0 {
		desc = strings.Join(symbols, " · ")
	}
	desc = fmt.Sprintf("%s | 수비학 %d", desc, rd.Pythagorean.Reduced)
	if rd.Nakshatra != nil {
		desc += " | " + rd.Nakshatra.Name
	}

	return cardData{
		Title:       rd.Name + "의 이름 바이브",
		Description: desc,
		Reading:     rd,
	}
}
