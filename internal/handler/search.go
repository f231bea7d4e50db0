package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"bibliomate/internal/agent"
	"bibliomate/internal/agent/deps"
	"bibliomate/internal/config"
	"bibliomate/internal/logger"
	"bibliomate/internal/model"
	"bibliomate/internal/presenter"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultAnalyzeTimeout bounds a single search when Configure was not called
	DefaultAnalyzeTimeout = 60 * time.Second
	// DefaultSessionTTL is how long an idle page is kept
	DefaultSessionTTL = 30 * time.Minute
)

type SearchRequest struct {
	Title string `json:"title" binding:"max=200"`
}

// StateDTO is the JSON view of a page
type StateDTO struct {
	Input  string              `json:"input"`
	Busy   bool                `json:"busy"`
	Error  string              `json:"error,omitempty"`
	Result *model.BookResponse `json:"result,omitempty"`
}

var (
	bookAnalyzer presenter.Analyzer
	agentMu      sync.RWMutex

	pages          = presenter.NewStore(analyzerProxy{}, DefaultSessionTTL)
	analyzeTimeout = DefaultAnalyzeTimeout
	pagesMu        sync.RWMutex
)

// InitAnalyzer creates the Gemini-backed book analyzer from cfg
func InitAnalyzer(ctx context.Context, cfg *config.Config) error {
	client, err := agent.NewGenaiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.BaseURL)
	if err != nil {
		return err
	}

	llm := agent.NewGeminiLLMClient(client, cfg.Gemini.Model)
	analyzer := agent.NewBookAnalyzer(llm, deps.GenerationConfig{
		Temperature:     cfg.Gemini.Temperature,
		TopP:            cfg.Gemini.TopP,
		TopK:            cfg.Gemini.TopK,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
	})
	SetAnalyzer(analyzer)

	logger.For(ctx).WithField("model", cfg.Gemini.Model).Info("[INIT] Book analyzer initialized")
	return nil
}

// SetAnalyzer replaces the analyzer used by all pages. nil marks the service unavailable.
func SetAnalyzer(a presenter.Analyzer) {
	agentMu.Lock()
	defer agentMu.Unlock()
	bookAnalyzer = a
}

func currentAnalyzer() presenter.Analyzer {
	agentMu.RLock()
	defer agentMu.RUnlock()
	return bookAnalyzer
}

// Configure sets the search timeout and the idle session lifetime.
// It drops existing sessions, so call it before serving.
func Configure(timeout, ttl time.Duration) {
	pagesMu.Lock()
	defer pagesMu.Unlock()
	if timeout > 0 {
		analyzeTimeout = timeout
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	pages = presenter.NewStore(analyzerProxy{}, ttl)
}

func sessionStore() (*presenter.Store, time.Duration) {
	pagesMu.RLock()
	defer pagesMu.RUnlock()
	return pages, analyzeTimeout
}

// analyzerProxy lets pages outlive analyzer (re)initialization
type analyzerProxy struct{}

func (analyzerProxy) Analyze(ctx context.Context, title string) (*model.BookRecord, error) {
	a := currentAnalyzer()
	if a == nil {
		return nil, agent.NewAnalysisFailedError(agent.ErrUnavailable)
	}
	return a.Analyze(ctx, title)
}

// HandleIndex renders the search page for the caller's session
func HandleIndex(c *gin.Context) {
	page := sessionPage(c)
	c.HTML(http.StatusOK, "index.html", newPageView(page.Snapshot()))
}

// HandleSearch runs a search from the HTML form and redirects back to the page
func HandleSearch(c *gin.Context) {
	page := sessionPage(c)
	runSearch(c, page, norm.NFC.String(c.PostForm("title")))
	c.Redirect(http.StatusSeeOther, "/")
}

// HandleReset clears the caller's page
func HandleReset(c *gin.Context) {
	sessionPage(c).Reset()
	c.Redirect(http.StatusSeeOther, "/")
}

func HandleAPISearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if strings.Contains(err.Error(), "max") {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Title is too long (max 200 characters)",
				"code":  "TITLE_TOO_LONG",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request",
			"code":  "INVALID_REQUEST",
		})
		return
	}

	if currentAnalyzer() == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "AI service is not available",
			"code":  "SERVICE_UNAVAILABLE",
		})
		return
	}

	page := sessionPage(c)
	if err := runSearch(c, page, norm.NFC.String(req.Title)); errors.Is(err, presenter.ErrBusy) {
		respondBusy(c)
		return
	}

	c.JSON(http.StatusOK, toStateDTO(page.Snapshot()))
}

func HandleAPIState(c *gin.Context) {
	c.JSON(http.StatusOK, toStateDTO(sessionPage(c).Snapshot()))
}

func HandleAPIReset(c *gin.Context) {
	page := sessionPage(c)
	page.Reset()
	c.JSON(http.StatusOK, toStateDTO(page.Snapshot()))
}

// runSearch detaches the search from the request so a client that goes away
// does not turn into a failed search.
// Reset on the page cancels it instead.
func runSearch(c *gin.Context, page *presenter.Page, title string) error {
	_, timeout := sessionStore()
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), timeout)
	defer cancel()

	err := page.Submit(ctx, title)
	if errors.Is(err, presenter.ErrBusy) {
		logger.For(ctx).Info("[SEARCH] Ignored, search already in progress")
	}
	return err
}

func respondBusy(c *gin.Context) {
	c.JSON(http.StatusConflict, gin.H{
		"error": "A search is already in progress",
		"code":  "BUSY",
	})
}

func toStateDTO(s presenter.State) StateDTO {
	dto := StateDTO{
		Input: s.Input,
		Busy:  s.Busy,
		Error: s.Error,
	}
	if s.HasResult() {
		resp := s.Result.ToResponse()
		dto.Result = &resp
	}
	return dto
}
