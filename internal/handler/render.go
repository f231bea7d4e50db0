package handler

import (
	"embed"
	"html/template"

	"bibliomate/internal/agent/sanitize"
	"bibliomate/internal/presenter"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded page templates into r
func LoadTemplates(r *gin.Engine) error {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)
	return nil
}

type pageView struct {
	State          presenter.State
	MaxTitleLength int
}

func newPageView(state presenter.State) pageView {
	return pageView{
		State:          state,
		MaxTitleLength: sanitize.MaxTitleLength,
	}
}
