package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VisheshVarshney/MUJConnect/internal/chat"
	"github.com/VisheshVarshney/MUJConnect/internal/menu"
	"github.com/VisheshVarshney/MUJConnect/internal/outlet"
)

const (
	emptyMessageError  = "Your input is empty! Please type something. 🍽️"
	internalErrorReply = "Something went wrong! Please try again. 💻⚡"

	storeTimeout = 5 * time.Second
)

// Classifier defines the interface for the LLM classification backend.
type Classifier interface {
	Classify(ctx context.Context, message string) (string, error)
}

// Handler handles HTTP requests.
type Handler struct {
	Classifier Classifier
	Menus      menu.Store
	Albums     outlet.Albums
	LLMTimeout time.Duration
	Log        *zap.Logger
}

// NewHandler creates a new Handler.
func NewHandler(classifier Classifier, menus menu.Store, albums outlet.Albums, llmTimeout time.Duration, log *zap.Logger) *Handler {
	return &Handler{
		Classifier: classifier,
		Menus:      menus,
		Albums:     albums,
		LLMTimeout: llmTimeout,
		Log:        log,
	}
}

// Chat handles a user message: classify with the LLM, then answer from the
// menu store and album directory. Classifier failures never surface as
// errors; they come back as the fallback reply with status 200.
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": emptyMessageError})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		h.Log.Debug("empty chat message")
		c.JSON(http.StatusBadRequest, gin.H{"error": emptyMessageError})
		return
	}

	// The LLM round trip is the only long suspension point; bound it so a
	// slow upstream can't hold the request slot indefinitely.
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.LLMTimeout)
	defer cancel()

	query := chat.Classify(ctx, h.Classifier, message, h.Log)
	h.Log.Debug("classified message",
		zap.String("intent", string(query.Intent)),
		zap.String("outlet", query.Details.OutletName))

	reply, err := chat.Respond(ctx, query, h.Menus, h.Albums)
	if err != nil {
		h.Log.Error("failed to build reply", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorReply})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Outlets returns the outlet album directory.
func (h *Handler) Outlets(c *gin.Context) {
	c.JSON(http.StatusOK, h.Albums)
}

// Menu returns one outlet's parsed menu.
func (h *Handler) Menu(c *gin.Context) {
	key := outlet.Normalize(c.Param("outlet"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()

	m, err := h.Menus.Outlet(ctx, key)
	if err != nil {
		h.Log.Error("failed to load menu", zap.String("outlet", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorReply})
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}

	c.JSON(http.StatusOK, m)
}
